// Package elka solves travelling salesman problems through an embedded
// solver with a fully recoverable call boundary.
//
// 🚀 What is elka?
//
//	A pure-Go embedding of a classic text-driven TSP solver. The solver
//	consumes its configuration and problem data as plain text — the same
//	format whether it streams from a file or is built in memory by the
//	host — and every fatal condition comes back as an error value instead
//	of terminating the process:
//	  • DistanceMatrix — solve on an explicit (a)symmetric weight matrix
//	  • Coordinates2D  — solve on named 2-D points (EUC_2D distances)
//	  • solver/        — the call boundary: Solve(params, problem) → Result
//	  • tsplib/        — parameter & TSPLIB problem text parsing
//	  • lineio/        — dual-mode incremental line/number readers
//
// ✨ Why choose elka?
//
//   - Never crashes its host – every failure is a returned message
//   - Deterministic – all randomness routed through an explicit seed
//   - Dual input modes – on-disk problem files and in-memory text behave
//     identically, down to line-terminator handling
//   - Pure Go – no cgo, no hidden deps
//
// ⚙️ Quick start:
//
//	cities, _ := elka.NewDistanceMatrix([][]float64{
//	    {0, 4, 0},
//	    {0, 0, 5},
//	    {0, 0, 0},
//	})
//	res, err := cities.Solve(10)
//	// res.Tour == [0 2 1 0], res.Cost == 0
//
// The high-level types format the problem text and call solver.Solve, the
// same path an embedding host drives directly with its own text.
package elka
