// Package lineio - streaming line reader with terminator normalization.
//
// LineReader consumes an io.Reader byte by byte and yields one line per
// NextLine call. Historical problem files terminate lines with a carriage
// return, a newline, both, or end-of-input; all four styles produce
// identical line content.
//
// Design:
//   - Byte-level reads with single-byte push-back (bufio.Reader), so a lone
//     \r can end a line without consuming the byte that follows it.
//   - One LineBuffer per reader, reused across lines (amortization); every
//     returned line is an owned copy, valid indefinitely.
//   - Sentinel ErrEndOfInput on exhausted input; transport failures are
//     wrapped with %w so callers can still reach the underlying error.
//
// Complexity: O(len(line)) per call, amortized allocation-free scanning.
package lineio

import (
	"bufio"
	"fmt"
	"io"
)

// LineReader reads lines incrementally from an io.Reader.
// Not safe for concurrent use.
type LineReader struct {
	src *bufio.Reader
	buf LineBuffer // reused line assembly storage
}

// NewLineReader returns a LineReader over r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{src: bufio.NewReader(r)}
}

// NextLine reads and returns the next line without its terminator.
//
// Terminator handling:
//   - '\n' ends the line.
//   - '\r' ends the line; an immediately following '\n' is consumed as part
//     of the same terminator (CRLF counts once).
//   - '\r' followed by any other byte ends the line and pushes that byte
//     back for the next read.
//   - End-of-input ends a non-empty final line; end-of-input with zero
//     bytes read returns ErrEndOfInput.
//
// Complexity: O(len(line)).
func (lr *LineReader) NextLine() (string, error) {
	lr.buf.Reset()

	var (
		c   byte
		err error
	)
	for {
		c, err = lr.src.ReadByte()
		if err == io.EOF {
			// A file ending without a trailing terminator still yields its
			// last line once; an empty read means the input is exhausted.
			if lr.buf.Len() == 0 {
				return "", ErrEndOfInput
			}
			return lr.buf.String(), nil
		}
		if err != nil {
			return "", fmt.Errorf("lineio: read byte: %w", err)
		}

		switch c {
		case '\n':
			return lr.buf.String(), nil
		case '\r':
			if err = lr.skipLinefeed(); err != nil {
				return "", err
			}
			return lr.buf.String(), nil
		default:
			lr.buf.AppendByte(c)
		}
	}
}

// skipLinefeed consumes a '\n' directly following a '\r'; any other byte is
// pushed back so the next NextLine call starts at it.
func (lr *LineReader) skipLinefeed() error {
	c, err := lr.src.ReadByte()
	if err == io.EOF {
		return nil // \r at end of input: the line already ended
	}
	if err != nil {
		return fmt.Errorf("lineio: read byte: %w", err)
	}
	if c != '\n' {
		// UnreadByte cannot fail right after a successful ReadByte.
		_ = lr.src.UnreadByte()
	}
	return nil
}
