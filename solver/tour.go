// Package solver - tour structure utilities and cost accumulation.
//
// A tour is a closed Hamiltonian cycle over vertex indices: length n+1 with
// tour[0] == tour[n] == 0. The helpers here operate purely on that
// structure; distances enter only through tourCost.
//
// Design:
//   - Sentinel errors only; no panics on any tour shape.
//   - O(n) helpers, in-place mutation where reversal is on a hot path.
//   - Costs are stabilized to 1e-9 so results are identical across
//     platforms and optimization levels.
package solver

import "math"

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// ValidateTour enforces the Hamiltonian-cycle invariants:
// len(tour) == n+1, tour[0] == tour[n] == 0, and each vertex in [0..n-1]
// appears exactly once among the first n positions.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if n < 3 || len(tour) != n+1 {
		return ErrDimension
	}
	if tour[0] != 0 || tour[n] != 0 {
		return ErrTour
	}

	var (
		seen = make([]bool, n)
		i, v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return ErrTour
		}
		if seen[v] {
			return ErrTour
		}
		seen[v] = true
	}
	return nil
}

// closeTour appends the return-to-start vertex to an open permutation
// whose first element is the start. The input slice is not modified.
func closeTour(perm []int) []int {
	tour := make([]int, len(perm)+1)
	copy(tour, perm)
	tour[len(perm)] = perm[0]
	return tour
}

// reverseArcInPlace reverses tour[i..k] inclusive — the 2-opt core move.
func reverseArcInPlace(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}

// tourCost sums the cycle arcs tour[i]→tour[i+1] over validated weights.
// The result is stabilized to 1e-9.
//
// Complexity: O(n).
func tourCost(m *weights, tour []int) float64 {
	var (
		sum  float64
		i    int
		last = len(tour) - 1
	)
	for i = 0; i < last; i++ {
		sum += m.at(tour[i], tour[i+1])
	}
	return round1e9(sum)
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
