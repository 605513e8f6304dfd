// File: tsplib/example_test.go
package tsplib_test

import (
	"fmt"

	"github.com/elka-go/elka/lineio"
	"github.com/elka-go/elka/tsplib"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ParseProblem - explicit full matrix
////////////////////////////////////////////////////////////////////////////////

// ExampleParseProblem parses a minimal asymmetric instance and materializes
// its distance matrix.
func ExampleParseProblem() {
	text := "TYPE : ATSP\n" +
		"DIMENSION : 3\n" +
		"EDGE_WEIGHT_TYPE : EXPLICIT\n" +
		"EDGE_WEIGHT_FORMAT : FULL_MATRIX\n" +
		"EDGE_WEIGHT_SECTION\n" +
		"0 4 0\n0 0 5\n0 0 0\n"

	p, err := tsplib.ParseProblem(lineio.NewSource(text))
	if err != nil {
		fmt.Println("parse failed:", err)
		return
	}
	fmt.Println("dimension:", p.Dimension)
	fmt.Println("row 1:", p.Matrix()[1])

	// Output:
	// dimension: 3
	// row 1: [0 0 5]
}

////////////////////////////////////////////////////////////////////////////////
// Example: ParseParameters
////////////////////////////////////////////////////////////////////////////////

// ExampleParseParameters reads a parameter string of the kind a host builds
// right before a solve call.
func ExampleParseParameters() {
	params, err := tsplib.ParseParameters(lineio.NewSource("RUNS = 10\nPROBLEM_FILE = :stdin:\n"))
	if err != nil {
		fmt.Println("parse failed:", err)
		return
	}
	fmt.Println("runs:", params.Runs)
	fmt.Println("problem:", params.ProblemFile)

	// Output:
	// runs: 10
	// problem: :stdin:
}
