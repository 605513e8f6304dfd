// Package lineio - shared interface and sentinel error set.
//
// This file defines ONLY the LineSource abstraction and the package-level
// sentinel errors. All readers MUST return these sentinels and tests MUST
// check them via errors.Is. No reader panics on user input.
package lineio

import "errors"

var (
	// ErrEndOfInput signals that no further lines exist in the input.
	// It is distinct from a legitimate empty line, which is returned as a
	// zero-length string with a nil error.
	ErrEndOfInput = errors.New("lineio: end of input")

	// ErrNoNumber is returned by Source.NextNumberStrict when no valid
	// numeric prefix exists at the current cursor position. The cursor is
	// left unchanged so the caller can report the offending context.
	ErrNoNumber = errors.New("lineio: no numeric token at cursor")
)

// LineSource produces the next input line on each call.
//
// Contract:
//   - A returned line never contains its terminator.
//   - (line, nil) with line == "" is a legitimate empty line.
//   - ("", ErrEndOfInput) means the input is exhausted; subsequent calls
//     keep returning ErrEndOfInput.
//
// Both *LineReader (streaming) and *Source (in-memory) satisfy LineSource,
// so consumers stay agnostic of where their text originates.
type LineSource interface {
	NextLine() (string, error)
}
