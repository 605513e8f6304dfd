// Package tsplib - TSPLIB problem text parsing.
//
// ParseProblem reads the specification part ("KEY : value" lines) followed
// by one data section, then materializes a full distance matrix on demand.
//
// Supported subset (the one the embedded solver consumes):
//   - TYPE            : TSP | ATSP
//   - DIMENSION       : n ≥ 3
//   - EDGE_WEIGHT_TYPE: EXPLICIT (+ EDGE_WEIGHT_FORMAT: FULL_MATRIX) | EUC_2D
//   - EDGE_WEIGHT_SECTION — n·n numeric fields, free line layout
//   - NODE_COORD_SECTION  — n lines of "index x y", any node order
//
// Design:
//   - All input flows through lineio.LineSource; numeric fields are
//     tokenized per line with lineio.Source's strict scanner, so a
//     malformed field becomes a *ParseError, never a silent zero.
//   - Section fields may be split across lines arbitrarily: the scanner
//     pulls lines lazily and never requires a fixed row layout.
//   - Deterministic, no logging, no panics on user input.
package tsplib

import (
	"math"
	"strconv"
	"strings"

	"github.com/elka-go/elka/lineio"
)

// ProblemType discriminates symmetric and asymmetric instances.
type ProblemType int

const (
	// TypeTSP — symmetric travelling salesman instance.
	TypeTSP ProblemType = iota
	// TypeATSP — asymmetric instance; matrix need not be symmetric.
	TypeATSP
)

// EdgeWeightType tells how distances are specified.
type EdgeWeightType int

const (
	// WeightExplicit — distances listed in EDGE_WEIGHT_SECTION.
	WeightExplicit EdgeWeightType = iota
	// WeightEuc2D — distances derived from 2-D coordinates, rounded to the
	// nearest integer (TSPLIB convention).
	WeightEuc2D
)

// Problem is a parsed TSPLIB instance.
type Problem struct {
	Name       string
	Type       ProblemType
	Dimension  int
	WeightType EdgeWeightType

	// Weights is the explicit n×n matrix (WeightExplicit only).
	Weights [][]float64
	// Coords holds node coordinates by 0-based index (WeightEuc2D only).
	Coords [][2]float64
}

// ParseProblem reads one problem from src.
//
// Contract:
//   - The specification part must declare DIMENSION (≥3) and
//     EDGE_WEIGHT_TYPE before its data section starts.
//   - EXPLICIT instances must declare EDGE_WEIGHT_FORMAT : FULL_MATRIX.
//   - Trailing "EOF" and blank lines after the data section are tolerated;
//     any other trailing content is rejected.
//
// Errors: *ParseError wrapping the sentinels in errors.go.
//
// Complexity: O(total input length + n²).
func ParseProblem(src lineio.LineSource) (*Problem, error) {
	var (
		p          = &Problem{}
		haveDim    bool
		haveWeight bool
		haveFormat bool
		lineNo     int
		line       string
		err        error
		key, value string
	)

	// Stage 1: specification lines until a section keyword.
	for {
		line, err = src.NextLine()
		if err == lineio.ErrEndOfInput {
			return nil, parseErrorf(lineNo, "", ErrMissingSection)
		}
		if err != nil {
			return nil, err
		}
		lineNo++

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value = splitSpec(line, "=")

		switch key {
		case "NAME":
			p.Name = value
		case "COMMENT":
			// Free-form; carried in the text for humans, not for us.
		case "TYPE":
			switch strings.ToUpper(value) {
			case "TSP":
				p.Type = TypeTSP
			case "ATSP":
				p.Type = TypeATSP
			default:
				return nil, parseErrorf(lineNo, value, ErrUnsupportedType)
			}
		case "DIMENSION":
			var n int
			if n, err = strconv.Atoi(value); err != nil || n < 3 {
				return nil, parseErrorf(lineNo, value, ErrBadDimension)
			}
			p.Dimension = n
			haveDim = true
		case "EDGE_WEIGHT_TYPE":
			switch strings.ToUpper(value) {
			case "EXPLICIT":
				p.WeightType = WeightExplicit
			case "EUC_2D":
				p.WeightType = WeightEuc2D
			default:
				return nil, parseErrorf(lineNo, value, ErrUnsupportedWeight)
			}
			haveWeight = true
		case "EDGE_WEIGHT_FORMAT":
			if strings.ToUpper(value) != "FULL_MATRIX" {
				return nil, parseErrorf(lineNo, value, ErrUnsupportedFormat)
			}
			haveFormat = true
		case "EDGE_WEIGHT_SECTION":
			if !haveDim {
				return nil, parseErrorf(lineNo, line, ErrBadDimension)
			}
			if !haveWeight || p.WeightType != WeightExplicit || !haveFormat {
				return nil, parseErrorf(lineNo, line, ErrUnsupportedFormat)
			}
			if err = readWeightSection(src, p, &lineNo); err != nil {
				return nil, err
			}
			if err = drainTrailer(src, &lineNo); err != nil {
				return nil, err
			}
			return p, nil
		case "NODE_COORD_SECTION":
			if !haveDim {
				return nil, parseErrorf(lineNo, line, ErrBadDimension)
			}
			if !haveWeight || p.WeightType != WeightEuc2D {
				return nil, parseErrorf(lineNo, line, ErrUnsupportedWeight)
			}
			if err = readCoordSection(src, p, &lineNo); err != nil {
				return nil, err
			}
			if err = drainTrailer(src, &lineNo); err != nil {
				return nil, err
			}
			return p, nil
		case "EOF":
			return nil, parseErrorf(lineNo, line, ErrMissingSection)
		default:
			return nil, parseErrorf(lineNo, key, ErrUnknownKeyword)
		}
	}
}

// Matrix materializes the full n×n distance matrix.
//
// For WeightExplicit the stored rows are deep-copied so callers may mutate
// the result freely. For WeightEuc2D each entry is
// round(hypot(xi−xj, yi−yj)) with a zero diagonal.
//
// Complexity: O(n²) time and space.
func (p *Problem) Matrix() [][]float64 {
	n := p.Dimension
	out := make([][]float64, n)

	var i, j int
	switch p.WeightType {
	case WeightEuc2D:
		for i = 0; i < n; i++ {
			out[i] = make([]float64, n)
			for j = 0; j < n; j++ {
				if i == j {
					continue
				}
				out[i][j] = math.Round(math.Hypot(
					p.Coords[i][0]-p.Coords[j][0],
					p.Coords[i][1]-p.Coords[j][1]))
			}
		}
	default:
		for i = 0; i < n; i++ {
			out[i] = make([]float64, n)
			copy(out[i], p.Weights[i])
		}
	}
	return out
}

// fieldScanner pulls whitespace-separated numeric fields from consecutive
// lines of a LineSource, using lineio.Source's strict scanner per line.
// It distinguishes "line exhausted" (advance to the next line) from
// "malformed token" (report with position).
type fieldScanner struct {
	src    lineio.LineSource
	cur    *lineio.Source // tokenizer over the current line; nil when drained
	lineNo *int           // shared 1-based line counter for diagnostics
}

// next returns the next numeric field.
// Errors: *ParseError (ErrMalformedField) or lineio.ErrEndOfInput.
func (fs *fieldScanner) next() (float64, error) {
	var (
		v    float64
		rest string
		line string
		err  error
	)
	for {
		if fs.cur != nil {
			v, err = fs.cur.NextNumberStrict()
			if err == nil {
				return v, nil
			}
			// No numeric prefix: a blank tail means the line is spent,
			// anything else is a malformed field.
			rest, err = fs.cur.NextLine()
			if err == nil && strings.TrimSpace(rest) != "" {
				return 0, parseErrorf(*fs.lineNo, strings.TrimSpace(rest), ErrMalformedField)
			}
			fs.cur = nil
		}
		line, err = fs.src.NextLine()
		if err != nil {
			return 0, err
		}
		*fs.lineNo++
		fs.cur = lineio.NewSource(line)
	}
}

// readWeightSection consumes n·n fields into p.Weights.
func readWeightSection(src lineio.LineSource, p *Problem, lineNo *int) error {
	var (
		n    = p.Dimension
		fs   = fieldScanner{src: src, lineNo: lineNo}
		v    float64
		err  error
		i, j int
	)
	p.Weights = make([][]float64, n)
	for i = 0; i < n; i++ {
		p.Weights[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			v, err = fs.next()
			if err == lineio.ErrEndOfInput {
				return parseErrorf(*lineNo, "", ErrTruncatedSection)
			}
			if err != nil {
				return err
			}
			p.Weights[i][j] = v
		}
	}
	return nil
}

// readCoordSection consumes n "index x y" triples into p.Coords.
// Node indices are 1-based in the text and may appear in any order; each
// must appear exactly once.
func readCoordSection(src lineio.LineSource, p *Problem, lineNo *int) error {
	var (
		n    = p.Dimension
		fs   = fieldScanner{src: src, lineNo: lineNo}
		seen = make([]bool, n)
		idx  float64
		x, y float64
		err  error
		i    int
		node int
	)
	p.Coords = make([][2]float64, n)
	for i = 0; i < n; i++ {
		if idx, err = fs.next(); err != nil {
			if err == lineio.ErrEndOfInput {
				return parseErrorf(*lineNo, "", ErrTruncatedSection)
			}
			return err
		}
		node = int(idx)
		if float64(node) != idx || node < 1 || node > n {
			return parseErrorf(*lineNo, strconv.FormatFloat(idx, 'g', -1, 64), ErrNodeIndex)
		}
		if seen[node-1] {
			return parseErrorf(*lineNo, strconv.Itoa(node), ErrNodeIndex)
		}
		seen[node-1] = true

		if x, err = fs.next(); err != nil {
			return coordFieldErr(err, lineNo)
		}
		if y, err = fs.next(); err != nil {
			return coordFieldErr(err, lineNo)
		}
		p.Coords[node-1] = [2]float64{x, y}
	}
	return nil
}

// coordFieldErr maps a scanner error inside a coordinate triple onto the
// truncation sentinel when the input simply ran out.
func coordFieldErr(err error, lineNo *int) error {
	if err == lineio.ErrEndOfInput {
		return parseErrorf(*lineNo, "", ErrTruncatedSection)
	}
	return err
}

// drainTrailer accepts only blank lines and the "EOF" keyword after a data
// section; any other content is unknown trailing data.
func drainTrailer(src lineio.LineSource, lineNo *int) error {
	var (
		line string
		err  error
	)
	for {
		line, err = src.NextLine()
		if err == lineio.ErrEndOfInput {
			return nil
		}
		if err != nil {
			return err
		}
		*lineNo++
		line = strings.TrimSpace(line)
		if line == "" || strings.EqualFold(line, "EOF") {
			continue
		}
		return parseErrorf(*lineNo, line, ErrUnknownKeyword)
	}
}
