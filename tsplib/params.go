// Package tsplib - solver parameter text parsing.
//
// Parameter text is a sequence of "KEY = value" lines. The accepted keys
// mirror the historical solver configuration surface that this module
// exposes: run count, RNG seed, trace verbosity, wall-clock budget, and the
// problem-file selector (with StdinProblemFile denoting the in-memory
// problem text supplied by the host).
//
// Design:
//   - Input arrives only through lineio.LineSource: the same parser serves
//     a parameter file on disk and an in-memory parameter string.
//   - Strict surface: unknown keys are rejected (a typo must not silently
//     fall back to a default), values are range-checked on sight.
//   - Deterministic, side-effect free; sentinel errors with line context.
package tsplib

import (
	"strconv"
	"strings"
	"time"

	"github.com/elka-go/elka/lineio"
)

// StdinProblemFile is the PROBLEM_FILE value selecting the in-memory
// problem text handed to the solve boundary instead of a file on disk.
const StdinProblemFile = ":stdin:"

// Default parameter values applied before any line is read.
const (
	// DefaultRuns is the number of independent solver restarts.
	DefaultRuns = 10
	// DefaultSeed feeds the deterministic RNG stream when SEED is absent.
	DefaultSeed int64 = 1
)

// Parameters holds the parsed solver configuration.
type Parameters struct {
	// Runs is the number of independent restarts; best tour wins. ≥ 1.
	Runs int
	// Seed routes all randomness; identical seeds reproduce identical runs.
	Seed int64
	// TraceLevel ≥ 1 enables per-run progress logging on the solve options'
	// logger; 0 keeps the solve silent.
	TraceLevel int
	// TimeLimit bounds the local-search wall clock. 0 means unlimited.
	TimeLimit time.Duration
	// ProblemFile names the problem input; StdinProblemFile selects the
	// in-memory problem text.
	ProblemFile string
}

// DefaultParameters returns the configuration used when a key is absent.
func DefaultParameters() Parameters {
	return Parameters{
		Runs:        DefaultRuns,
		Seed:        DefaultSeed,
		ProblemFile: StdinProblemFile,
	}
}

// ParseParameters reads "KEY = value" lines from src until end of input.
// Blank lines and lines starting with '#' are skipped. Every recognized key
// overwrites its default; later occurrences overwrite earlier ones.
//
// Errors: *ParseError wrapping ErrUnknownKeyword or ErrBadValue; transport
// errors from src are forwarded as-is.
//
// Complexity: O(total input length).
func ParseParameters(src lineio.LineSource) (Parameters, error) {
	params := DefaultParameters()

	var (
		line    string // current raw line
		lineNo  int    // 1-based position for diagnostics
		err     error
		key     string // normalized keyword
		value   string // raw value text
	)
	for {
		line, err = src.NextLine()
		if err == lineio.ErrEndOfInput {
			return params, nil
		}
		if err != nil {
			return Parameters{}, err
		}
		lineNo++

		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value = splitSpec(line, "=")
		if key == "" {
			return Parameters{}, parseErrorf(lineNo, line, ErrUnknownKeyword)
		}

		switch key {
		case "RUNS":
			if params.Runs, err = parsePositiveInt(value); err != nil {
				return Parameters{}, parseErrorf(lineNo, value, ErrBadValue)
			}
		case "SEED":
			if params.Seed, err = strconv.ParseInt(value, 10, 64); err != nil {
				return Parameters{}, parseErrorf(lineNo, value, ErrBadValue)
			}
		case "TRACE_LEVEL":
			var tl int
			if tl, err = strconv.Atoi(value); err != nil || tl < 0 {
				return Parameters{}, parseErrorf(lineNo, value, ErrBadValue)
			}
			params.TraceLevel = tl
		case "TIME_LIMIT":
			var secs float64
			if secs, err = strconv.ParseFloat(value, 64); err != nil || secs < 0 {
				return Parameters{}, parseErrorf(lineNo, value, ErrBadValue)
			}
			params.TimeLimit = time.Duration(secs * float64(time.Second))
		case "PROBLEM_FILE":
			if value == "" {
				return Parameters{}, parseErrorf(lineNo, line, ErrBadValue)
			}
			params.ProblemFile = value
		default:
			return Parameters{}, parseErrorf(lineNo, key, ErrUnknownKeyword)
		}
	}
}

// splitSpec splits "KEY sep value" at the first sep (also accepting ':'
// for TSPLIB-style headers), trimming both parts and upper-casing the key.
// A missing separator yields the whole trimmed line as key and "" as value,
// which suits bare section keywords.
func splitSpec(line, sep string) (string, string) {
	idx := strings.IndexAny(line, sep+":")
	if idx < 0 {
		return strings.ToUpper(strings.TrimSpace(line)), ""
	}
	key := strings.ToUpper(strings.TrimSpace(line[:idx]))
	value := strings.TrimSpace(line[idx+1:])
	return key, value
}

// parsePositiveInt parses a base-10 integer and requires it to be ≥ 1.
func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, ErrBadValue
	}
	return n, nil
}
