package experiment

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/spantree/randtree"
	"github.com/katalvlaran/spantree/tree"
)

// ErrInvalidTree aborts a run when a generator returns something that is not
// a spanning tree on the requested number of vertices.
var ErrInvalidTree = errors.New("experiment: generator produced an invalid tree")

// Runner executes experiments. The zero value is not usable; call NewRunner.
type Runner struct {
	log *zap.Logger
	gen randtree.Generator
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger for progress reports. Panics on nil.
func WithLogger(l *zap.Logger) RunnerOption {
	if l == nil {
		panic("experiment: WithLogger(nil)")
	}
	return func(r *Runner) {
		r.log = l
	}
}

// WithGenerator overrides the generator otherwise looked up from
// Config.Method. Panics on nil.
func WithGenerator(gen randtree.Generator) RunnerOption {
	if gen == nil {
		panic("experiment: WithGenerator(nil)")
	}
	return func(r *Runner) {
		r.gen = gen
	}
}

// NewRunner returns a Runner that logs nowhere unless WithLogger is given.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run measures every size of cfg and returns one Result per size, in
// cfg.Sizes order.
//
// Errors:
//   - ErrInvalidConfig from cfg.Validate.
//   - ErrInvalidTree (wrapped, with size and trial) when a drawn graph fails
//     tree.Validate; the whole run stops.
//   - ctx.Err() when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, cfg Config) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	gen := r.gen
	if gen == nil {
		var err error
		if gen, err = randtree.Lookup(cfg.Method); err != nil {
			return nil, err
		}
	}
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	r.log.Info("experiment started",
		zap.String("method", cfg.Method),
		zap.Ints("sizes", cfg.Sizes),
		zap.Int("trials", cfg.Trials),
		zap.Int64("seed", cfg.Seed),
		zap.Int("workers", workers))

	results := make([]Result, 0, len(cfg.Sizes))
	for _, n := range cfg.Sizes {
		start := time.Now()
		diameters, err := r.measure(ctx, gen, cfg, n, workers)
		if err != nil {
			return nil, err
		}
		res := Aggregate(n, diameters)
		results = append(results, res)

		r.log.Info("size measured",
			zap.Int("size", n),
			zap.Float64("mean", res.Mean),
			zap.Float64("stddev", res.StdDev),
			zap.Int("min", res.Min),
			zap.Int("max", res.Max),
			zap.Duration("elapsed", time.Since(start)))
	}

	return results, nil
}

// measure draws cfg.Trials trees of size n and returns their diameters,
// indexed by trial.
func (r *Runner) measure(ctx context.Context, gen randtree.Generator, cfg Config, n, workers int) ([]float64, error) {
	diameters := make([]float64, cfg.Trials)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for trial := 0; trial < cfg.Trials; trial++ {
		trial := trial
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			rng := rand.New(rand.NewSource(TrialSeed(cfg.Seed, n, trial)))
			t, err := gen(n, rng)
			if err != nil {
				return fmt.Errorf("experiment: size %d trial %d: %w", n, trial, err)
			}
			if t.VertexCount() != n {
				return fmt.Errorf("%w: size %d trial %d: %d vertices", ErrInvalidTree, n, trial, t.VertexCount())
			}
			if err := tree.Validate(t); err != nil {
				return fmt.Errorf("%w: size %d trial %d: %w", ErrInvalidTree, n, trial, err)
			}
			d, err := tree.Diameter(t)
			if err != nil {
				return fmt.Errorf("experiment: size %d trial %d: %w", n, trial, err)
			}
			diameters[trial] = float64(d)
			r.log.Debug("trial done", zap.Int("size", n), zap.Int("trial", trial), zap.Int("diameter", d))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		return nil, err
	}

	return diameters, nil
}

// TrialSeed derives the random seed of one trial from the experiment seed,
// the tree size and the trial index with a splitmix64 finaliser, so nearby
// inputs give unrelated streams.
func TrialSeed(seed int64, size, trial int) int64 {
	x := uint64(seed)
	x ^= uint64(size) << 32
	x ^= uint64(trial)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
