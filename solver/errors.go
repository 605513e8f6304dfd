// Package solver: sentinel error set + the fatal-message carrier.
// Sentinels classify the condition for errors.Is; *Error carries the
// human-readable message the boundary hands to the host. No function in
// this package panics on user input.
package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput — the parameter or problem text is empty.
	ErrEmptyInput = errors.New("solver: empty input text")

	// ErrDimension — instance shape is invalid (non-square matrix, n < 3,
	// or a tour of the wrong length).
	ErrDimension = errors.New("solver: invalid dimension")

	// ErrNegativeWeight — a negative distance was supplied.
	ErrNegativeWeight = errors.New("solver: negative edge weight")

	// ErrBadWeight — a NaN distance or a non-zero diagonal entry.
	ErrBadWeight = errors.New("solver: invalid edge weight")

	// ErrIncomplete — an infinite distance; the instance admits no tour
	// through that edge and this solver requires complete matrices.
	ErrIncomplete = errors.New("solver: incomplete distance matrix")

	// ErrOptions — an Options field lies outside its documented range
	// (Runs < 1, negative Eps/TimeLimit/TwoOptMaxIters).
	ErrOptions = errors.New("solver: invalid options")

	// ErrTour — an internal tour violated the Hamiltonian-cycle invariants.
	// Reaching it indicates a solver bug, reported rather than trusted.
	ErrTour = errors.New("solver: invalid tour produced")

	// ErrProblemFile — the PROBLEM_FILE named in the parameters could not
	// be opened for streaming.
	ErrProblemFile = errors.New("solver: cannot open problem file")
)

// Error is the recoverable form of the historical fatal-error exit: the
// formatted message that would have been printed before process
// termination, now returned to the host. It wraps the classifying sentinel
// (or parse error) so errors.Is/errors.As keep working through the
// boundary.
type Error struct {
	// Message is the human-readable failure text.
	Message string

	cause error
}

// Error returns the formatted failure message.
func (e *Error) Error() string { return e.Message }

// Unwrap exposes the underlying condition for errors.Is chains.
func (e *Error) Unwrap() error { return e.cause }

// fatalf is the single construction point for boundary failures — the
// recoverable analogue of the historical "format, then never return" error
// hook. Every failure path in a call funnels through it so the host always
// sees one error shape.
func fatalf(cause error, format string, args ...any) error {
	return &Error{Message: fmt.Sprintf(format, args...), cause: cause}
}
