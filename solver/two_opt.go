// Package solver - first-improvement 2-opt local search.
//
// twoOpt improves a closed tour by segment reversal. For a candidate pair
// (i, k) with a=T[i−1], b=T[i], c=T[k], d=T[k+1]:
//   - Symmetric instances: Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d); the
//     reversed segment's internal arcs cancel, so evaluation is O(1).
//   - Asymmetric instances: the reversed internal arcs do change cost, so
//     Δ additionally sums w(T[j+1],T[j]) − w(T[j],T[j+1]) over the segment
//     — O(k−i) per candidate, still exact.
//
// Design:
//   - Deterministic scanning order; the scan restarts after every accepted
//     move (first-improvement policy).
//   - Acceptance rule Δ < −eps keeps floating-point noise from looping.
//   - Soft wall-clock budget: the deadline is polled sparsely (every 2048
//     candidate checks) to keep the hot loop tight; on expiry the current
//     tour is returned as-is, still valid.
//
// Complexity: O(n²) candidate checks per pass symmetric, O(n³) worst-case
// asymmetric; O(1) extra space.
package solver

import "time"

// deadlineStride is the candidate-check interval between clock polls.
const deadlineStride = 2048

// twoOpt improves tour in place and returns its stabilized final cost.
// The tour must already satisfy ValidateTour.
func twoOpt(m *weights, tour []int, opts Options, deadline time.Time) float64 {
	var (
		n        = m.n
		eps      = opts.Eps
		accepted int
		step     int
		i, k, j  int
		a, b     int
		c, d     int
		delta    float64
	)

	useDeadline := !deadline.IsZero()
	expired := func() bool {
		step++
		if !useDeadline || step%deadlineStride != 0 {
			return false
		}
		return time.Now().After(deadline)
	}

scan:
	for {
		for i = 1; i < n-1; i++ {
			for k = i + 1; k < n; k++ {
				if expired() {
					break scan
				}

				a, b = tour[i-1], tour[i]
				c, d = tour[k], tour[k+1]
				delta = m.at(a, c) + m.at(b, d) - m.at(a, b) - m.at(c, d)
				if !m.symmetric {
					// Reversal flips every internal arc of the segment.
					for j = i; j < k; j++ {
						delta += m.at(tour[j+1], tour[j]) - m.at(tour[j], tour[j+1])
					}
				}

				if delta < -eps {
					reverseArcInPlace(tour, i, k)
					accepted++
					if opts.TwoOptMaxIters > 0 && accepted >= opts.TwoOptMaxIters {
						break scan
					}
					continue scan // first improvement: rescan from the top
				}
			}
		}
		break // full pass without an accepted move: local optimum
	}

	return tourCost(m, tour)
}
