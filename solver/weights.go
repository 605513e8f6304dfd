// Package solver - dense weight storage with strict ingestion validation.
//
// All algorithms read distances from a linearized n×n float64 buffer
// (w[u·n+v]) to keep hot loops free of slice-of-slice indirection. The
// buffer is validated once at ingestion; afterwards every read is a plain
// array access with no error channel.
//
// Validation policy (sentinels from errors.go):
//   - non-square rows, n < 3              → ErrDimension
//   - NaN anywhere, non-zero diagonal     → ErrBadWeight
//   - negative off-diagonal               → ErrNegativeWeight
//   - ±Inf off-diagonal                   → ErrIncomplete
//
// Complexity: O(n²) once per call; O(1) per subsequent read.
package solver

import "math"

// symTol is the structural tolerance for the symmetry probe. Independent
// from Options.Eps, which governs local-search acceptance.
const symTol = 1e-12

// weights is the validated dense distance matrix of one call.
type weights struct {
	n         int
	w         []float64 // linearized rows: w[u*n+v] = d(u,v)
	symmetric bool      // |d(u,v) − d(v,u)| ≤ symTol for all pairs
}

// newWeights validates dist and linearizes it.
func newWeights(dist [][]float64) (*weights, error) {
	n := len(dist)
	if n < 3 {
		return nil, ErrDimension
	}

	var (
		buf  = make([]float64, n*n)
		i, j int
		x    float64
	)
	for i = 0; i < n; i++ {
		if len(dist[i]) != n {
			return nil, ErrDimension
		}
		for j = 0; j < n; j++ {
			x = dist[i][j]
			if math.IsNaN(x) {
				return nil, ErrBadWeight
			}
			if i == j {
				if x != 0 {
					return nil, ErrBadWeight
				}
				continue
			}
			if x < 0 {
				return nil, ErrNegativeWeight
			}
			if math.IsInf(x, 0) {
				return nil, ErrIncomplete
			}
			buf[i*n+j] = x
		}
	}

	return &weights{n: n, w: buf, symmetric: probeSymmetry(buf, n)}, nil
}

// at reads d(u,v); indices were validated at tour construction time.
func (m *weights) at(u, v int) float64 { return m.w[u*m.n+v] }

// probeSymmetry scans the upper triangle once.
func probeSymmetry(w []float64, n int) bool {
	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = w[i*n+j] - w[j*n+i]
			if d < 0 {
				d = -d
			}
			if d > symTol {
				return false
			}
		}
	}
	return true
}
