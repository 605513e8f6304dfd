// Package solver - initial tour construction for the heuristic path.
//
// Two deterministic initializers feed 2-opt:
//   - nearestNeighbor: greedy chain from vertex 0 with a smallest-index
//     tie-breaker; the strongest cheap start, used for run 0.
//   - randomTour: a seeded shuffle of the identity permutation (start
//     pinned); subsequent runs diversify from here.
//
// Complexity: nearestNeighbor O(n²), randomTour O(n).
package solver

import "math/rand"

// nearestNeighbor builds a closed tour greedily: from the current vertex,
// always move to the nearest unvisited one; ties break on smallest index.
func nearestNeighbor(m *weights) []int {
	var (
		n       = m.n
		perm    = make([]int, n)
		visited = make([]bool, n)
		cur     = 0
		i, v    int
		best    int
		bestW   float64
	)
	perm[0] = 0
	visited[0] = true

	for i = 1; i < n; i++ {
		best = -1
		for v = 0; v < n; v++ {
			if visited[v] {
				continue
			}
			if best == -1 || m.at(cur, v) < bestW {
				best = v
				bestW = m.at(cur, v)
			}
		}
		perm[i] = best
		visited[best] = true
		cur = best
	}
	return closeTour(perm)
}

// randomTour builds a closed tour from a seeded shuffle, start pinned at 0.
func randomTour(n int, rng *rand.Rand) []int {
	perm := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		perm[i] = i
	}
	shufflePermInPlace(perm, rng)
	return closeTour(perm)
}
