// Package lineio provides incremental line and number readers over text
// input, backed either by a streaming file handle or by an in-memory buffer.
//
// 🚀 What is lineio?
//
//	The text-ingestion layer of elka: solver configuration and problem
//	records arrive as plain text, and lineio turns that text into a lazy
//	sequence of lines and, within the remaining input, a lazy sequence of
//	numeric tokens:
//	  • LineBuffer — reusable, capacity-doubling byte storage for line assembly
//	  • LineReader — streaming reader over any io.Reader (files, pipes, …)
//	  • Source     — cursor-based reader over an in-memory string
//	  • LineSource — the one-method interface both readers satisfy
//
// ✨ Key guarantees:
//   - identical line content for \n, \r and \r\n terminators; a lone \r
//     ends the line and leaves the following byte for the next read
//   - end-of-input is a sentinel (ErrEndOfInput), distinct from an empty line
//   - Source.NextLine and Source.NextNumber share one cursor, so numeric
//     tokens may span what NextLine treats as line boundaries
//   - every returned line is an owned copy; no buffer aliasing between calls
//
// ⚙️ Usage:
//
//	src := lineio.NewSource("DIMENSION : 3\n1 2 3\n")
//	line, _ := src.NextLine()       // "DIMENSION : 3"
//	x := src.NextNumber()           // 1 (whitespace and newlines are skipped)
//
// A LineReader or Source instance is not safe for concurrent use; create
// one instance per logical reading pass.
package lineio
