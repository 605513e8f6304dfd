// Package solver embeds a travelling-salesman solver behind a recoverable
// call boundary.
//
// 🚀 What is the boundary?
//
//	The historical solver was a standalone command-line tool: any fatal
//	condition formatted a message and terminated the process. Embedded in a
//	host, that convention is unacceptable — Solve converts it into a
//	recoverable failure:
//	  • on success, a Result with the tour and its cost is returned
//	  • on any fatal condition, however deep in the call graph, the host
//	    receives a zero Result and a *Error carrying the formatted message
//	  • the host process never crashes and every call is independently
//	    retryable; all per-call resources are released on every exit path
//
// ✨ How a call flows:
//
//  1. The parameter text is parsed (tsplib.ParseParameters) from an
//     in-memory lineio.Source.
//  2. The problem text is parsed from an in-memory Source when
//     PROBLEM_FILE is ":stdin:", or streamed from the named file through a
//     lineio.LineReader — the same parsing code serves both modes.
//  3. The instance is validated and solved: exact Held–Karp dynamic
//     programming for small instances, seeded multi-start nearest-neighbor
//     construction plus first-improvement 2-opt otherwise.
//
// ⚙️ Usage:
//
//	res, err := solver.Solve(
//	    "RUNS = 10\nPROBLEM_FILE = :stdin:\n",
//	    "TYPE : TSP\nDIMENSION : 3\n…",
//	)
//	if err != nil {
//	    var serr *solver.Error
//	    errors.As(err, &serr) // serr.Message holds the failure text
//	}
//
// Determinism: all randomness is routed through the SEED parameter; equal
// inputs produce equal tours. Each call owns its state, so distinct calls
// may run concurrently; no process-wide mutable state exists.
package solver
