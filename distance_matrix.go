// Package elka - DistanceMatrix: solve on an explicit weight matrix.
//
// The matrix is formatted as TSPLIB text (EXPLICIT / FULL_MATRIX) and
// pushed through the embedded solver's text boundary — exactly the route
// an external host takes, so the high-level API and raw text hosts cannot
// drift apart. TYPE is chosen by a symmetry probe: a symmetric matrix
// becomes TSP, anything else ATSP.
package elka

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/elka-go/elka/solver"
)

// DistanceMatrix represents an n×n matrix of travel costs.
// The value is immutable after construction.
type DistanceMatrix struct {
	distances [][]float64
}

// NewDistanceMatrix validates shape (square, n ≥ 3) and copies the rows so
// later caller mutation cannot affect solves.
//
// Errors: ErrNotSquare, ErrTooFewCities.
func NewDistanceMatrix(distances [][]float64) (*DistanceMatrix, error) {
	n := len(distances)
	if n < 3 {
		return nil, ErrTooFewCities
	}

	var (
		rows = make([][]float64, n)
		i    int
	)
	for i = 0; i < n; i++ {
		if len(distances[i]) != n {
			return nil, ErrNotSquare
		}
		rows[i] = make([]float64, n)
		copy(rows[i], distances[i])
	}
	return &DistanceMatrix{distances: rows}, nil
}

// Solve runs the solver with the given number of restarts and returns the
// resulting tour over 0-based row indices.
//
// Errors: ErrRuns on runs < 1; solve-time failures as *solver.Error.
//
// Complexity: O(n²) formatting + the solver's own cost.
func (m *DistanceMatrix) Solve(runs int) (solver.Result, error) {
	if runs < 1 {
		return solver.Result{}, ErrRuns
	}
	return solver.Solve(paramsText(runs), m.problemText())
}

// problemText renders the matrix as a TSPLIB EXPLICIT/FULL_MATRIX instance.
func (m *DistanceMatrix) problemText() string {
	var (
		b    strings.Builder
		n    = len(m.distances)
		i, j int
	)
	problemType := "ATSP"
	if m.symmetric() {
		problemType = "TSP"
	}
	fmt.Fprintf(&b, "TYPE : %s\nDIMENSION : %d\n", problemType, n)
	b.WriteString("EDGE_WEIGHT_TYPE : EXPLICIT\nEDGE_WEIGHT_FORMAT : FULL_MATRIX\nEDGE_WEIGHT_SECTION\n")
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatFloat(m.distances[i][j], 'g', -1, 64))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// symmetric probes exact equality across the diagonal (mirrors how the
// stored matrix was supplied; tolerance-based symmetry is the solver's
// concern, not a formatting one).
func (m *DistanceMatrix) symmetric() bool {
	var (
		n    = len(m.distances)
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if m.distances[i][j] != m.distances[j][i] {
				return false
			}
		}
	}
	return true
}

// paramsText renders the parameter text both high-level types share.
func paramsText(runs int) string {
	return fmt.Sprintf("RUNS = %d\nPROBLEM_FILE = :stdin:\n", runs)
}
