package solver

// Result holds the outcome of a successful solve.
type Result struct {
	// Tour is the sequence of 0-based vertex indices, starting and ending
	// at vertex 0. For n vertices, len(Tour) == n+1 and Tour[0]==Tour[n]==0.
	Tour []int

	// Cost is the total distance of the cycle, stabilized to 1e-9.
	Cost float64
}

// Size returns the number of distinct vertices on the tour.
func (r Result) Size() int {
	if len(r.Tour) == 0 {
		return 0
	}
	return len(r.Tour) - 1
}
