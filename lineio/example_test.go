// File: lineio/example_test.go
package lineio_test

import (
	"fmt"
	"strings"

	"github.com/elka-go/elka/lineio"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Source - shared line/number cursor
////////////////////////////////////////////////////////////////////////////////

// ExampleSource demonstrates the dual token streams of an in-memory source:
// a header line read as text, followed by numeric fields read across line
// boundaries through the same cursor.
func ExampleSource() {
	src := lineio.NewSource("DIMENSION : 3\n1 2\n3\n")

	header, _ := src.NextLine()
	fmt.Println(header)

	for i := 0; i < 3; i++ {
		fmt.Println(src.NextNumber())
	}

	// Output:
	// DIMENSION : 3
	// 1
	// 2
	// 3
}

////////////////////////////////////////////////////////////////////////////////
// Example: LineReader - terminator-agnostic streaming
////////////////////////////////////////////////////////////////////////////////

// ExampleLineReader shows that CRLF, CR and LF terminated lines all yield
// the same content, and that end of input is a sentinel, not an error state.
func ExampleLineReader() {
	lr := lineio.NewLineReader(strings.NewReader("one\r\ntwo\rthree\n"))

	for {
		line, err := lr.NextLine()
		if err == lineio.ErrEndOfInput {
			break
		}
		fmt.Println(line)
	}

	// Output:
	// one
	// two
	// three
}
