// Package solver - the recoverable call boundary and solve dispatcher.
//
// Solve is the single entry point a host calls with two in-memory texts:
// parameters and problem. Everything the call allocates — line sources, the
// parsed problem, the weight buffer, the working tours — is owned by the
// call and released on every exit path; nothing survives into the next
// invocation, so success and failure sequences are independent.
//
// Failure policy: every fatal condition, however deep (parameter rejection,
// malformed problem data, weight validation, internal invariant breakage),
// surfaces as a *Error at this boundary. A recover guard additionally turns
// any runtime panic escaping the call graph into the same failure shape,
// so the host process never crashes and every call is retryable.
package solver

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/elka-go/elka/lineio"
	"github.com/elka-go/elka/tsplib"
)

// Solve runs one full solver invocation over parameter and problem text.
//
// The parameter text selects the problem input: PROBLEM_FILE = ":stdin:"
// (the default) reads problemText through an in-memory source, any other
// value streams the named file through a LineReader — identical parsing
// semantics either way.
//
// Contract:
//   - paramsText must be non-empty; problemText must be non-empty when the
//     parameters select the in-memory mode.
//   - On failure the Result is zero and the error is a *Error whose
//     Message holds the formatted fatal text; errors.Is reaches the
//     underlying sentinel through it.
//
// Complexity: parsing O(input), solving O(n²·2ⁿ) exact / O(runs·n²)
// heuristic passes (see exact.go, two_opt.go).
func Solve(paramsText, problemText string) (res Result, err error) {
	defer recoverToError(&res, &err)

	if paramsText == "" {
		return Result{}, fatalf(ErrEmptyInput, "no parameter text supplied")
	}

	// Per-call resources: sources are owned by this call and released on
	// every exit path, normal or failed.
	paramsSrc := lineio.NewSource(paramsText)
	defer paramsSrc.Reset()

	params, perr := tsplib.ParseParameters(paramsSrc)
	if perr != nil {
		return Result{}, fatalf(perr, "parameter text rejected: %v", perr)
	}

	var problem *tsplib.Problem
	if params.ProblemFile == tsplib.StdinProblemFile {
		if problemText == "" {
			return Result{}, fatalf(ErrEmptyInput, "no problem text supplied")
		}
		problemSrc := lineio.NewSource(problemText)
		defer problemSrc.Reset()
		if problem, perr = tsplib.ParseProblem(problemSrc); perr != nil {
			return Result{}, fatalf(perr, "problem text rejected: %v", perr)
		}
	} else {
		if problem, perr = parseProblemFile(params.ProblemFile); perr != nil {
			return Result{}, perr
		}
	}

	return SolveProblem(problem, optionsFromParameters(params))
}

// SolveProblem solves an already-parsed problem under explicit options.
// Hosts that bypass the parameter text (programmatic configuration) enter
// here; Solve delegates here after parsing. The same failure policy
// applies.
func SolveProblem(problem *tsplib.Problem, opts Options) (res Result, err error) {
	defer recoverToError(&res, &err)

	if problem == nil {
		return Result{}, fatalf(ErrEmptyInput, "no problem supplied")
	}
	if oerr := opts.normalize(); oerr != nil {
		return Result{}, fatalf(oerr, "options rejected: %v", oerr)
	}

	m, werr := newWeights(problem.Matrix())
	if werr != nil {
		return Result{}, fatalf(werr, "distance matrix rejected: %v", werr)
	}
	// TYPE : TSP promises symmetry; a lying header is a data error, not a
	// solver choice.
	if problem.Type == tsplib.TypeTSP && !m.symmetric {
		return Result{}, fatalf(ErrBadWeight, "TYPE is TSP but the matrix is asymmetric")
	}

	if opts.trace(1) {
		opts.Logger.Info("solve started",
			zap.Int("dimension", m.n),
			zap.Bool("symmetric", m.symmetric),
			zap.Int("runs", opts.Runs),
			zap.Bool("exact", m.n <= exactLimit))
	}

	if m.n <= exactLimit {
		res = solveExact(m)
	} else {
		res = solveHeuristic(m, opts)
	}

	// A tour failing its own invariants must never reach the host.
	if verr := ValidateTour(res.Tour, m.n); verr != nil {
		return Result{}, fatalf(verr, "solver produced an invalid tour: %v", verr)
	}

	if opts.trace(1) {
		opts.Logger.Info("solve finished", zap.Float64("cost", res.Cost))
	}
	return res, nil
}

// solveHeuristic runs seeded multi-start construction + 2-opt and keeps
// the best tour. Run 0 starts from the nearest-neighbor chain; later runs
// diversify from seeded random permutations. A positive TimeLimit bounds
// the whole loop; whatever has been found by then is returned.
func solveHeuristic(m *weights, opts Options) Result {
	var deadline time.Time
	if opts.TimeLimit > 0 {
		deadline = time.Now().Add(opts.TimeLimit)
	}

	best := nearestNeighbor(m)
	bestCost := twoOpt(m, best, opts, deadline)
	if opts.trace(2) {
		opts.Logger.Info("run finished", zap.Int("run", 0), zap.Float64("cost", bestCost))
	}

	var (
		run  int
		tour []int
		cost float64
	)
	for run = 1; run < opts.Runs; run++ {
		if !deadline.IsZero() && time.Now().After(deadline) {
			break
		}
		tour = randomTour(m.n, runRNG(opts.Seed, uint64(run)))
		cost = twoOpt(m, tour, opts, deadline)
		if opts.trace(2) {
			opts.Logger.Info("run finished", zap.Int("run", run), zap.Float64("cost", cost))
		}
		if cost < bestCost {
			best, bestCost = tour, cost
		}
	}
	return Result{Tour: best, Cost: bestCost}
}

// parseProblemFile streams a problem file from disk through a LineReader.
// The file handle is a per-call resource, closed on every exit path.
func parseProblemFile(path string) (*tsplib.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fatalf(ErrProblemFile, "cannot open problem file %q: %v", path, err)
	}
	defer f.Close()

	problem, perr := tsplib.ParseProblem(lineio.NewLineReader(f))
	if perr != nil {
		return nil, fatalf(perr, "problem file %q rejected: %v", path, perr)
	}
	return problem, nil
}

// recoverToError converts a panic escaping the call graph into the
// boundary's failure shape. The solver itself never panics on user input;
// this guard exists so that even a bug cannot crash the host process.
func recoverToError(res *Result, err *error) {
	if r := recover(); r != nil {
		*res = Result{}
		*err = &Error{Message: fmt.Sprintf("solver: internal failure: %v", r)}
	}
}
