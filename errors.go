// Package elka: sentinel error set for the high-level API.
// Input-shape violations are reported with these sentinels before any
// problem text is built; solve-time failures come back from the solver
// package as *solver.Error.
package elka

import "errors"

var (
	// ErrNotSquare — the distance matrix rows do not form an n×n shape.
	ErrNotSquare = errors.New("elka: distances must be a square matrix")

	// ErrTooFewCities — fewer than three cities; no meaningful tour exists.
	ErrTooFewCities = errors.New("elka: at least 3 cities are required")

	// ErrRuns — the runs argument is below 1.
	ErrRuns = errors.New("elka: runs must be a positive integer")
)
