// Package solver_test exercises the exact Held–Karp path through
// SolveProblem: known-optimal instances, symmetric and asymmetric alike.
package solver_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/elka-go/elka/solver"
	"github.com/elka-go/elka/tsplib"
)

// cycleWeights builds the distance matrix of an n-node ring:
// d(i,j) = min(|i−j|, n−|i−j|). The optimal tour cost equals n.
func cycleWeights(n int) [][]float64 {
	dist := make([][]float64, n)
	var i, j int
	var d float64
	for i = 0; i < n; i++ {
		dist[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			d = math.Abs(float64(i - j))
			dist[i][j] = math.Min(d, float64(n)-d)
		}
	}
	return dist
}

// explicitProblem wraps a weight matrix in a Problem value.
func explicitProblem(tp tsplib.ProblemType, w [][]float64) *tsplib.Problem {
	return &tsplib.Problem{
		Type:       tp,
		Dimension:  len(w),
		WeightType: tsplib.WeightExplicit,
		Weights:    w,
	}
}

func TestExact_RingOptimal(t *testing.T) {
	for _, n := range []int{4, 6, 8, 10, 12} {
		res, err := solver.SolveProblem(explicitProblem(tsplib.TypeTSP, cycleWeights(n)), solver.DefaultOptions())
		require.NoError(t, err, "n=%d", n)

		require.NoError(t, solver.ValidateTour(res.Tour, n), "n=%d", n)
		require.Equal(t, float64(n), res.Cost, "ring optimum is n (n=%d)", n)
	}
}

func TestExact_AsymmetricThreeNode(t *testing.T) {
	w := [][]float64{
		{0, 4, 0},
		{0, 0, 5},
		{0, 0, 0},
	}
	res, err := solver.SolveProblem(explicitProblem(tsplib.TypeATSP, w), solver.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 1, 0}, res.Tour)
	require.Equal(t, 0.0, res.Cost)
}

func TestExact_PrefersCheapReturnArc(t *testing.T) {
	// Asymmetric 4-node instance with a unique optimum 0→1→2→3→0 of cost 4.
	w := [][]float64{
		{0, 1, 9, 9},
		{9, 0, 1, 9},
		{9, 9, 0, 1},
		{1, 9, 9, 0},
	}
	res, err := solver.SolveProblem(explicitProblem(tsplib.TypeATSP, w), solver.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 0}, res.Tour)
	require.Equal(t, 4.0, res.Cost)
}
