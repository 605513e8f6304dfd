// Package lineio - cursor-based in-memory line and number source.
//
// Source owns a byte buffer (built incrementally via Append or injected at
// construction) plus a single integer cursor marking the next unread byte.
// Two token streams share that cursor:
//   - NextLine      — the next text line, terminator stripped.
//   - NextNumber(…) — the longest valid floating-point literal starting at
//     the cursor, scanning the whole remaining buffer. Because both
//     operations advance one cursor, numeric tokens may span what NextLine
//     treats as line boundaries.
//
// Design:
//   - Invariant: 0 ≤ cursor ≤ len(buffer); the cursor only increases
//     between Reset calls.
//   - Lenient NextNumber mirrors strtod tokenization: leading whitespace is
//     skipped, and an absent numeric prefix yields 0 with the cursor left
//     unchanged. NextNumberStrict reports the same condition as ErrNoNumber
//     instead, for callers that must not conflate "zero" with "malformed".
//   - Reset releases the buffer and rewinds the cursor; it is idempotent.
//   - No panics on user input; the only sentinels are those in types.go.
package lineio

import (
	"bytes"
	"strconv"
)

// Source is an in-memory LineSource with shared line/number tokenization.
// The zero value is an empty source; Append builds content incrementally.
// Not safe for concurrent use.
type Source struct {
	buf []byte // owned text
	cur int    // next unread byte; 0 ≤ cur ≤ len(buf)
}

// NewSource returns a Source positioned at the start of text.
func NewSource(text string) *Source {
	return &Source{buf: []byte(text)}
}

// Append extends the owned buffer with text. Appending never moves the
// cursor, so producers may interleave Append with consumption.
func (s *Source) Append(text string) {
	s.buf = append(s.buf, text...)
}

// Len reports the total buffer length in bytes (read and unread).
func (s *Source) Len() int { return len(s.buf) }

// NextLine returns the next line with its '\n' terminator stripped and
// advances the cursor past it. A buffer ending without '\n' yields its
// final segment once. At end of buffer it returns ErrEndOfInput.
//
// Complexity: O(len(line)).
func (s *Source) NextLine() (string, error) {
	if s.cur >= len(s.buf) {
		return "", ErrEndOfInput
	}
	idx := bytes.IndexByte(s.buf[s.cur:], '\n')
	if idx < 0 {
		line := string(s.buf[s.cur:])
		s.cur = len(s.buf)
		return line, nil
	}
	line := string(s.buf[s.cur : s.cur+idx])
	s.cur += idx + 1 // consume the terminator as well
	return line, nil
}

// NextNumber parses the longest valid floating-point literal starting at
// the cursor (after optional whitespace, which may include newlines) and
// advances the cursor past the consumed text. If no numeric prefix exists,
// it yields 0 and the cursor does not move.
//
// Complexity: O(len(token)).
func (s *Source) NextNumber() float64 {
	v, width, ok := scanFloatPrefix(s.buf[s.cur:])
	if !ok {
		return 0
	}
	s.cur += width
	return v
}

// NextNumberStrict behaves like NextNumber but returns ErrNoNumber when no
// numeric prefix exists, leaving the cursor unchanged.
func (s *Source) NextNumberStrict() (float64, error) {
	v, width, ok := scanFloatPrefix(s.buf[s.cur:])
	if !ok {
		return 0, ErrNoNumber
	}
	s.cur += width
	return v, nil
}

// Reset rewinds the cursor to 0 and releases the owned buffer.
// Safe to call repeatedly and on a zero-value Source.
func (s *Source) Reset() {
	s.cur = 0
	s.buf = nil
}

// scanFloatPrefix scans b for a decimal floating-point literal after
// optional leading whitespace: [ws][sign]digits[.digits][(e|E)[sign]digits].
// It returns the parsed value, the total number of bytes consumed
// (whitespace included), and whether a literal was found.
//
// The exponent part is consumed only when at least one digit follows it,
// so "1e" tokenizes as 1 with "e" left unread. Hex floats and inf/nan
// spellings are intentionally not recognized; problem data is decimal.
//
// Complexity: O(len(token)).
func scanFloatPrefix(b []byte) (float64, int, bool) {
	var (
		i     int // scan position
		start int // first byte of the literal (after whitespace)
		whole int // digits before the point
		frac  int // digits after the point
	)
	for i < len(b) && isSpace(b[i]) {
		i++
	}
	start = i

	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		i++
	}
	for i < len(b) && isDigit(b[i]) {
		i++
		whole++
	}
	if i < len(b) && b[i] == '.' {
		j := i + 1
		for j < len(b) && isDigit(b[j]) {
			j++
			frac++
		}
		// A bare "." with no digits on either side is not a literal.
		if whole > 0 || frac > 0 {
			i = j
		}
	}
	if whole == 0 && frac == 0 {
		return 0, 0, false
	}

	// Exponent: committed only once a digit is seen.
	if i < len(b) && (b[i] == 'e' || b[i] == 'E') {
		j := i + 1
		if j < len(b) && (b[j] == '+' || b[j] == '-') {
			j++
		}
		expDigits := 0
		for j < len(b) && isDigit(b[j]) {
			j++
			expDigits++
		}
		if expDigits > 0 {
			i = j
		}
	}

	v, err := strconv.ParseFloat(string(b[start:i]), 64)
	if err != nil {
		// Unreachable for the grammar above; kept as a hard guard so a
		// scanner bug surfaces as "no token" rather than a bogus value.
		return 0, 0, false
	}
	return v, i, true
}

// isSpace matches the C isspace set used by historical strtod tokenization.
func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
