// Package lineio_test exercises the streaming LineReader: terminator
// normalization (\n, \r, \r\n, lone \r push-back), end-of-input semantics,
// and owned-copy guarantees.
package lineio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/elka-go/elka/lineio"
)

// readAll drains lr and returns every line until ErrEndOfInput.
func readAll(t *testing.T, lr *lineio.LineReader) []string {
	t.Helper()
	var (
		lines []string
		line  string
		err   error
	)
	for {
		line, err = lr.NextLine()
		if err == lineio.ErrEndOfInput {
			return lines
		}
		require.NoError(t, err)
		lines = append(lines, line)
	}
}

// TestLineReader_TerminatorStyles verifies that \n, \r and \r\n produce
// identical line content.
func TestLineReader_TerminatorStyles(t *testing.T) {
	want := []string{"alpha", "beta", "gamma"}

	for _, tc := range []struct {
		name  string
		input string
	}{
		{"LF", "alpha\nbeta\ngamma\n"},
		{"CR", "alpha\rbeta\rgamma\r"},
		{"CRLF", "alpha\r\nbeta\r\ngamma\r\n"},
		{"mixed", "alpha\r\nbeta\rgamma\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			lr := lineio.NewLineReader(strings.NewReader(tc.input))
			require.Equal(t, want, readAll(t, lr))
		})
	}
}

// TestLineReader_LoneCRPushback: a \r not followed by \n ends the line and
// the following byte must open the next one.
func TestLineReader_LoneCRPushback(t *testing.T) {
	lr := lineio.NewLineReader(strings.NewReader("a\rb"))

	line, err := lr.NextLine()
	require.NoError(t, err)
	require.Equal(t, "a", line)

	line, err = lr.NextLine()
	require.NoError(t, err)
	require.Equal(t, "b", line, "byte after lone \\r must not be consumed by the terminator")

	_, err = lr.NextLine()
	require.ErrorIs(t, err, lineio.ErrEndOfInput)
}

// TestLineReader_EmptyInput: zero bytes means "no more lines" immediately.
func TestLineReader_EmptyInput(t *testing.T) {
	lr := lineio.NewLineReader(strings.NewReader(""))
	_, err := lr.NextLine()
	require.ErrorIs(t, err, lineio.ErrEndOfInput)

	// The sentinel is stable across repeated calls.
	_, err = lr.NextLine()
	require.ErrorIs(t, err, lineio.ErrEndOfInput)
}

// TestLineReader_NoTrailingTerminator: the last line is yielded exactly once.
func TestLineReader_NoTrailingTerminator(t *testing.T) {
	lr := lineio.NewLineReader(strings.NewReader("one\ntwo"))
	require.Equal(t, []string{"one", "two"}, readAll(t, lr))
}

// TestLineReader_EmptyLines: empty lines are legitimate content, not EOF.
func TestLineReader_EmptyLines(t *testing.T) {
	lr := lineio.NewLineReader(strings.NewReader("\n\nx\n\n"))
	require.Equal(t, []string{"", "", "x", ""}, readAll(t, lr))
}

// TestLineReader_TrailingCR: \r at end of input ends the final line without
// an error and without inventing an extra empty line.
func TestLineReader_TrailingCR(t *testing.T) {
	lr := lineio.NewLineReader(strings.NewReader("tail\r"))
	require.Equal(t, []string{"tail"}, readAll(t, lr))
}

// TestLineReader_LongLines: lines far beyond the initial buffer capacity
// survive intact (buffer doubling under the hood).
func TestLineReader_LongLines(t *testing.T) {
	long := strings.Repeat("x", 4096)
	lr := lineio.NewLineReader(strings.NewReader(long + "\nshort\n"))
	require.Equal(t, []string{long, "short"}, readAll(t, lr))
}

// TestLineReader_OwnedCopies: a previously returned line must stay intact
// after subsequent reads reuse the internal buffer.
func TestLineReader_OwnedCopies(t *testing.T) {
	lr := lineio.NewLineReader(strings.NewReader("first\nsecond-longer-line\n"))

	first, err := lr.NextLine()
	require.NoError(t, err)
	_, err = lr.NextLine()
	require.NoError(t, err)

	require.Equal(t, "first", first)
}
