// Package lineio - reusable capacity-doubling byte buffer for line assembly.
//
// LineBuffer backs the streaming LineReader: bytes are appended one at a
// time while scanning for a terminator, and the storage is reused across
// lines so steady-state reading performs no allocations beyond the final
// owned copy handed to the caller.
//
// Design:
//   - Doubling growth from a small initial capacity; never shrinks.
//   - Invariant: capacity ≥ length+1 at all times (room for a terminator),
//     so content up to Len() is always a valid assembled prefix.
//   - No error channel: Go's runtime has no recoverable allocation failure,
//     so Grow either succeeds or the process aborts (see DESIGN.md).
package lineio

// initialLineCapacity is the storage size allocated on first use.
// Most input lines fit without any doubling step.
const initialLineCapacity = 80

// LineBuffer is a reusable byte buffer with doubling growth.
// The zero value is ready to use; storage is allocated lazily.
type LineBuffer struct {
	buf []byte // owned storage; len(buf) is the current capacity
	n   int    // logical length; n < len(buf) whenever buf is non-nil
}

// Grow guarantees storage for at least min bytes, doubling the current
// capacity until sufficient and copying existing content. The logical
// length is never invalidated.
//
// Complexity: amortized O(1) per appended byte, O(n) worst case on a copy.
func (b *LineBuffer) Grow(min int) {
	if min <= len(b.buf) {
		return
	}
	next := len(b.buf)
	if next == 0 {
		next = initialLineCapacity
	}
	for next < min {
		next *= 2
	}
	grown := make([]byte, next)
	copy(grown, b.buf[:b.n])
	b.buf = grown
}

// AppendByte appends a single byte, growing storage when the write would
// leave no room for a terminator.
func (b *LineBuffer) AppendByte(c byte) {
	// +2: one for the byte being written, one spare terminator slot.
	b.Grow(b.n + 2)
	b.buf[b.n] = c
	b.n++
}

// Len reports the logical length of the assembled content.
func (b *LineBuffer) Len() int { return b.n }

// String returns an owned copy of the assembled content.
// The copy stays valid after subsequent Reset/AppendByte calls.
func (b *LineBuffer) String() string { return string(b.buf[:b.n]) }

// Reset clears the logical content while retaining storage, so the next
// line reuses the allocation. Idempotent.
func (b *LineBuffer) Reset() { b.n = 0 }
