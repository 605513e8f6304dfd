// Package elka - Coordinates2D: solve on named 2-D points.
//
// Cities are supplied as a name → (x, y) map; the problem is rendered as a
// TSPLIB EUC_2D instance (distances rounded to the nearest integer, the
// TSPLIB convention) and solved through the text boundary. Node numbering
// follows the sorted city names, so results are deterministic regardless
// of map iteration order.
package elka

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/elka-go/elka/solver"
)

// Coordinates2D represents named cities at 2-D positions.
type Coordinates2D struct {
	names  []string // sorted; names[i] is node i
	points map[string][2]float64
}

// NewCoordinates2D validates the city count (≥ 3) and captures a copy of
// the map.
//
// Errors: ErrTooFewCities.
func NewCoordinates2D(coords map[string][2]float64) (*Coordinates2D, error) {
	if len(coords) < 3 {
		return nil, ErrTooFewCities
	}

	var (
		names  = make([]string, 0, len(coords))
		points = make(map[string][2]float64, len(coords))
		name   string
		pt     [2]float64
	)
	for name, pt = range coords {
		names = append(names, name)
		points[name] = pt
	}
	sort.Strings(names)

	return &Coordinates2D{names: names, points: points}, nil
}

// Solve runs the solver and returns the city names in tour order (open
// sequence of length n, starting at the lexicographically first city) plus
// the tour cost.
//
// Errors: ErrRuns on runs < 1; solve-time failures as *solver.Error.
func (c *Coordinates2D) Solve(runs int) ([]string, float64, error) {
	if runs < 1 {
		return nil, 0, ErrRuns
	}

	res, err := solver.Solve(paramsText(runs), c.problemText())
	if err != nil {
		return nil, 0, err
	}

	var (
		order = make([]string, res.Size())
		i     int
	)
	for i = 0; i < res.Size(); i++ {
		order[i] = c.names[res.Tour[i]]
	}
	return order, res.Cost, nil
}

// problemText renders the cities as a TSPLIB EUC_2D instance; node indices
// are 1-based in the text.
func (c *Coordinates2D) problemText() string {
	var (
		b  strings.Builder
		i  int
		pt [2]float64
	)
	fmt.Fprintf(&b, "TYPE : TSP\nDIMENSION : %d\n", len(c.names))
	b.WriteString("EDGE_WEIGHT_TYPE : EUC_2D\nNODE_COORD_SECTION\n")
	for i = 0; i < len(c.names); i++ {
		pt = c.points[c.names[i]]
		fmt.Fprintf(&b, "%d %s %s\n", i+1,
			strconv.FormatFloat(pt[0], 'g', -1, 64),
			strconv.FormatFloat(pt[1], 'g', -1, 64))
	}
	return b.String()
}
