// Package elka_test exercises the high-level API end to end: both types
// format problem text, drive the full solver boundary, and map results
// back to the caller's domain.
package elka_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/elka-go/elka"
	"github.com/elka-go/elka/solver"
)

// -----------------------------------------------------------------------------
// 1) DistanceMatrix.
// -----------------------------------------------------------------------------

func TestDistanceMatrix_AsymmetricSolve(t *testing.T) {
	cities, err := elka.NewDistanceMatrix([][]float64{
		{0, 4, 0},
		{0, 0, 5},
		{0, 0, 0},
	})
	require.NoError(t, err)

	res, err := cities.Solve(10)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 1, 0}, res.Tour)
	require.Equal(t, 0.0, res.Cost)
}

func TestDistanceMatrix_SymmetricSolve(t *testing.T) {
	// 3-4-5 triangle; every 3-cycle costs 12.
	cities, err := elka.NewDistanceMatrix([][]float64{
		{0, 3, 4},
		{3, 0, 5},
		{4, 5, 0},
	})
	require.NoError(t, err)

	res, err := cities.Solve(10)
	require.NoError(t, err)
	require.NoError(t, solver.ValidateTour(res.Tour, 3))
	require.Equal(t, 12.0, res.Cost)
}

func TestDistanceMatrix_FractionalWeightsSurvive(t *testing.T) {
	// Formatting must round-trip non-integer weights exactly.
	cities, err := elka.NewDistanceMatrix([][]float64{
		{0, 1.5, 2.25},
		{1.5, 0, 0.75},
		{2.25, 0.75, 0},
	})
	require.NoError(t, err)

	res, err := cities.Solve(5)
	require.NoError(t, err)
	require.Equal(t, 4.5, res.Cost)
}

func TestDistanceMatrix_Validation(t *testing.T) {
	_, err := elka.NewDistanceMatrix([][]float64{{0, 1}, {1, 0}})
	require.ErrorIs(t, err, elka.ErrTooFewCities)

	_, err = elka.NewDistanceMatrix([][]float64{{0, 1}, {1, 0}, {1, 1}})
	require.ErrorIs(t, err, elka.ErrNotSquare)

	cities, err := elka.NewDistanceMatrix([][]float64{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}})
	require.NoError(t, err)
	_, err = cities.Solve(0)
	require.ErrorIs(t, err, elka.ErrRuns)
}

func TestDistanceMatrix_InputIsCopied(t *testing.T) {
	rows := [][]float64{
		{0, 4, 0},
		{0, 0, 5},
		{0, 0, 0},
	}
	cities, err := elka.NewDistanceMatrix(rows)
	require.NoError(t, err)

	before, err := cities.Solve(3)
	require.NoError(t, err)

	// Mutating the caller's rows must not change later solves.
	rows[0][1] = 1000
	after, err := cities.Solve(3)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

// Solve-time failures surface as the boundary's message-carrying error.
func TestDistanceMatrix_SolverFailurePropagates(t *testing.T) {
	cities, err := elka.NewDistanceMatrix([][]float64{
		{0, -1, 2},
		{1, 0, 3},
		{2, 3, 0},
	})
	require.NoError(t, err)

	_, err = cities.Solve(3)
	require.ErrorIs(t, err, solver.ErrNegativeWeight)

	var serr *solver.Error
	require.ErrorAs(t, err, &serr)
	require.NotEmpty(t, serr.Message)
}

// -----------------------------------------------------------------------------
// 2) Coordinates2D.
// -----------------------------------------------------------------------------

func TestCoordinates2D_Solve(t *testing.T) {
	cities, err := elka.NewCoordinates2D(map[string][2]float64{
		"city1": {0, 0},
		"city2": {0, 4},
		"city3": {5, 0},
	})
	require.NoError(t, err)

	order, cost, err := cities.Solve(10)
	require.NoError(t, err)

	// Distances round to 4, 5 and 6 (EUC_2D nearest-integer convention);
	// every 3-cycle costs 15. Numbering follows sorted names, so the tour
	// starts at city1.
	require.Equal(t, []string{"city1", "city3", "city2"}, order)
	require.Equal(t, 15.0, cost)
}

func TestCoordinates2D_DeterministicAcrossCalls(t *testing.T) {
	coords := map[string][2]float64{
		"a": {0, 0}, "b": {1, 7}, "c": {4, 2}, "d": {8, 8}, "e": {3, 9},
	}
	first, cost1, err := mustCoords(t, coords).Solve(5)
	require.NoError(t, err)
	second, cost2, err := mustCoords(t, coords).Solve(5)
	require.NoError(t, err)

	// Map iteration order must not leak into results.
	require.Equal(t, first, second)
	require.Equal(t, cost1, cost2)
}

func TestCoordinates2D_Validation(t *testing.T) {
	_, err := elka.NewCoordinates2D(map[string][2]float64{"a": {0, 0}, "b": {1, 1}})
	require.ErrorIs(t, err, elka.ErrTooFewCities)

	cities := mustCoords(t, map[string][2]float64{"a": {0, 0}, "b": {1, 1}, "c": {2, 0}})
	_, _, err = cities.Solve(0)
	require.ErrorIs(t, err, elka.ErrRuns)
}

func mustCoords(t *testing.T, coords map[string][2]float64) *elka.Coordinates2D {
	t.Helper()
	c, err := elka.NewCoordinates2D(coords)
	require.NoError(t, err)
	return c
}
