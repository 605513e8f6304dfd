// Package lineio_test exercises LineBuffer growth and reuse semantics.
// Focus: doubling growth never truncates content, invariants hold across
// Reset, and the zero value is usable without initialization.
package lineio_test

import (
	"strings"
	"testing"

	"github.com/elka-go/elka/lineio"
)

// -----------------------------------------------------------------------------
// 1) Growth - content survives every doubling step.
// -----------------------------------------------------------------------------

func TestLineBuffer_GrowthNeverTruncates(t *testing.T) {
	var b lineio.LineBuffer

	// 1000 bytes forces several doublings past the initial capacity.
	const total = 1000
	want := strings.Repeat("abcdefghij", total/10)

	var i int
	for i = 0; i < total; i++ {
		b.AppendByte(want[i])
	}
	if b.Len() != total {
		t.Fatalf("Len() = %d, want %d", b.Len(), total)
	}
	if got := b.String(); got != want {
		t.Fatalf("content corrupted across growth:\n got:  %q…\n want: %q…", got[:32], want[:32])
	}
}

// -----------------------------------------------------------------------------
// 2) Grow - explicit minimum capacity requests.
// -----------------------------------------------------------------------------

func TestLineBuffer_GrowPreservesContent(t *testing.T) {
	var b lineio.LineBuffer
	for _, c := range []byte("keep me") {
		b.AppendByte(c)
	}

	// Growing far beyond the current capacity must copy, not clear.
	b.Grow(1 << 14)
	if got := b.String(); got != "keep me" {
		t.Fatalf("Grow lost content: %q", got)
	}
	if b.Len() != len("keep me") {
		t.Fatalf("Grow changed logical length: %d", b.Len())
	}
}

// -----------------------------------------------------------------------------
// 3) Reset - logical clear with storage reuse; owned copies stay valid.
// -----------------------------------------------------------------------------

func TestLineBuffer_ResetAndOwnedCopies(t *testing.T) {
	var b lineio.LineBuffer
	for _, c := range []byte("first line") {
		b.AppendByte(c)
	}
	first := b.String()

	b.Reset()
	if b.Len() != 0 {
		t.Fatalf("Len after Reset = %d, want 0", b.Len())
	}
	for _, c := range []byte("second") {
		b.AppendByte(c)
	}

	// The copy taken before Reset must be unaffected by reuse.
	if first != "first line" {
		t.Fatalf("owned copy mutated after reuse: %q", first)
	}
	if got := b.String(); got != "second" {
		t.Fatalf("content after reuse = %q, want %q", got, "second")
	}

	// Reset is idempotent.
	b.Reset()
	b.Reset()
	if b.Len() != 0 || b.String() != "" {
		t.Fatalf("double Reset left content: %q", b.String())
	}
}
