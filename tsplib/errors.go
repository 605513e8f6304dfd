// Package tsplib: sentinel error set.
// This file defines ONLY package-level sentinel errors plus the *ParseError
// wrapper that attaches line context. All parsers MUST surface these
// sentinels and tests MUST check them via errors.Is. No parser panics on
// user input.
package tsplib

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownKeyword is returned for a specification keyword the parser
	// does not recognize (parameter or problem header alike).
	ErrUnknownKeyword = errors.New("tsplib: unknown keyword")

	// ErrBadValue indicates a keyword whose value failed to parse or lies
	// outside its documented range (e.g. RUNS < 1, negative TIME_LIMIT).
	ErrBadValue = errors.New("tsplib: invalid keyword value")

	// ErrBadDimension indicates DIMENSION < 3 or a missing DIMENSION line.
	ErrBadDimension = errors.New("tsplib: DIMENSION < 3 or not specified")

	// ErrUnsupportedType — TYPE other than TSP or ATSP.
	ErrUnsupportedType = errors.New("tsplib: unsupported TYPE")

	// ErrUnsupportedWeight — EDGE_WEIGHT_TYPE other than EXPLICIT or EUC_2D.
	ErrUnsupportedWeight = errors.New("tsplib: unsupported EDGE_WEIGHT_TYPE")

	// ErrUnsupportedFormat — EDGE_WEIGHT_FORMAT other than FULL_MATRIX.
	ErrUnsupportedFormat = errors.New("tsplib: unsupported EDGE_WEIGHT_FORMAT")

	// ErrMissingSection indicates that the data section matching the
	// declared EDGE_WEIGHT_TYPE never appeared.
	ErrMissingSection = errors.New("tsplib: data section missing")

	// ErrMalformedField indicates a non-numeric token inside a data section.
	ErrMalformedField = errors.New("tsplib: malformed numeric field")

	// ErrTruncatedSection indicates a data section ended before providing
	// the number of fields implied by DIMENSION.
	ErrTruncatedSection = errors.New("tsplib: data section truncated")

	// ErrNodeIndex — a NODE_COORD_SECTION index outside [1..DIMENSION] or
	// listed twice.
	ErrNodeIndex = errors.New("tsplib: node index out of range or duplicated")
)

// ParseError decorates a sentinel with the 1-based input line on which the
// condition was detected and the offending text. Match the underlying
// condition with errors.Is; format the whole value for diagnostics.
type ParseError struct {
	Line int    // 1-based line number within the parsed text
	Text string // offending line or token, possibly trimmed
	Err  error  // underlying sentinel from this package or lineio
}

// Error renders "tsplib: line N: <sentinel text> (got %q)".
func (e *ParseError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("%v (line %d)", e.Err, e.Line)
	}
	return fmt.Sprintf("%v (line %d: %q)", e.Err, e.Line, e.Text)
}

// Unwrap exposes the sentinel for errors.Is / errors.As chains.
func (e *ParseError) Unwrap() error { return e.Err }

// parseErrorf builds a *ParseError; kept as the single construction point
// so every parser site records the same context shape.
func parseErrorf(line int, text string, sentinel error) error {
	return &ParseError{Line: line, Text: text, Err: sentinel}
}
