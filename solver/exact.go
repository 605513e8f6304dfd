// Package solver - exact Held–Karp dynamic programming for small instances.
//
// dp[mask][j] is the minimum cost of starting at vertex 0, visiting exactly
// the vertex set encoded by mask, and ending at j. Subsets are bitmask
// indexed; the tour is closed by the cheapest return arc and reconstructed
// from a parent table.
//
// Bounded to n ≤ exactLimit by the dispatcher: the tables take O(n·2ⁿ)
// memory and O(n²·2ⁿ) time, which stays in the low milliseconds there.
// Works unchanged for asymmetric instances.
package solver

import "math"

// solveExact returns the optimal closed tour over validated weights.
func solveExact(m *weights) Result {
	var (
		n         = m.n
		allMask   = (1 << n) - 1
		startMask = 1
		dp        = make([][]float64, 1<<n)
		parent    = make([][]int, 1<<n)
		mask      int
		prev      int
		i, j, k   int
		cand      float64
	)

	for mask = 0; mask <= allMask; mask++ {
		dp[mask] = make([]float64, n)
		parent[mask] = make([]int, n)
		for j = 0; j < n; j++ {
			dp[mask][j] = math.Inf(1)
			parent[mask][j] = -1
		}
	}
	dp[startMask][0] = 0

	// Fill subsets that contain the start vertex.
	for mask = 0; mask <= allMask; mask++ {
		if mask&startMask == 0 {
			continue
		}
		for j = 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prev = mask ^ (1 << j)
			for k = 0; k < n; k++ {
				if prev&(1<<k) == 0 {
					continue
				}
				cand = dp[prev][k] + m.at(k, j)
				if cand < dp[mask][j] {
					dp[mask][j] = cand
					parent[mask][j] = k
				}
			}
		}
	}

	// Close the cycle with the cheapest return arc.
	var (
		bestCost = math.Inf(1)
		last     = -1
		total    float64
	)
	for j = 1; j < n; j++ {
		total = dp[allMask][j] + m.at(j, 0)
		if total < bestCost {
			bestCost = total
			last = j
		}
	}

	// Reconstruct from the parent table, walking masks backwards.
	var (
		tour = make([]int, n+1)
		p    int
	)
	tour[n] = 0
	tour[0] = 0
	mask = allMask
	j = last
	for i = n - 1; i >= 1; i-- {
		tour[i] = j
		p = parent[mask][j]
		mask ^= 1 << j
		j = p
	}

	return Result{Tour: tour, Cost: round1e9(bestCost)}
}
