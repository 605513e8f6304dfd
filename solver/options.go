// Package solver - solve configuration.
//
// Options mirror the parameter-text surface (RUNS, SEED, TIME_LIMIT,
// TRACE_LEVEL) plus knobs that only make sense programmatically (Eps,
// iteration caps, the trace logger). Solve derives Options from parsed
// parameters; SolveProblem accepts them directly.
package solver

import (
	"time"

	"go.uber.org/zap"

	"github.com/elka-go/elka/tsplib"
)

// DefaultEps is the minimum cost decrease accepted by local search.
// Improvements smaller than this are treated as floating-point noise.
const DefaultEps = 1e-12

// exactLimit is the largest dimension solved with Held–Karp dynamic
// programming; above it the multi-start heuristic takes over.
const exactLimit = 12

// Options configures one solve call.
type Options struct {
	// Runs is the number of independent heuristic restarts; the best tour
	// wins. Must be ≥ 1. Ignored by the exact path.
	Runs int

	// Seed routes all randomness deterministically. 0 selects the fixed
	// default stream, so equal inputs always produce equal tours.
	Seed int64

	// Eps is the acceptance tolerance for local-search improvements
	// (Δ < −Eps). Must be ≥ 0.
	Eps float64

	// TimeLimit bounds the overall heuristic wall clock; 0 means unlimited.
	// The exact path ignores it (its runtime is bounded by exactLimit).
	TimeLimit time.Duration

	// TwoOptMaxIters caps accepted 2-opt moves per run; 0 means "until a
	// local optimum".
	TwoOptMaxIters int

	// TraceLevel ≥ 1 logs solve milestones, ≥ 2 logs per-run progress,
	// through Logger.
	TraceLevel int

	// Logger receives trace output. nil is replaced by zap.NewNop(), so
	// library code never writes anywhere the host did not direct.
	Logger *zap.Logger
}

// DefaultOptions returns the configuration matching DefaultParameters.
func DefaultOptions() Options {
	return Options{
		Runs: tsplib.DefaultRuns,
		Seed: tsplib.DefaultSeed,
		Eps:  DefaultEps,
	}
}

// optionsFromParameters maps parsed parameter text onto solve options.
func optionsFromParameters(params tsplib.Parameters) Options {
	opts := DefaultOptions()
	opts.Runs = params.Runs
	opts.Seed = params.Seed
	opts.TimeLimit = params.TimeLimit
	opts.TraceLevel = params.TraceLevel
	return opts
}

// normalize fills derived defaults and rejects incoherent combinations.
func (o *Options) normalize() error {
	if o.Runs < 1 {
		return ErrOptions
	}
	if o.Eps < 0 || o.TimeLimit < 0 || o.TwoOptMaxIters < 0 {
		return ErrOptions
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return nil
}

// trace reports whether milestone logging is enabled at level lv.
func (o *Options) trace(lv int) bool { return o.TraceLevel >= lv }
