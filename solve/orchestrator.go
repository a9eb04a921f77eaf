// Package solve maps question candidates to solved records via an injected
// AI capability, with per-item failure isolation and bounded concurrency.
package solve

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/paperwise/paperwise/segment"
)

// fallbackMessage is the solution text substituted when the AI capability
// fails for one candidate.
const fallbackMessage = "Unable to generate solution for this question."

const (
	defaultConcurrency = 4
	defaultCallTimeout = 60 * time.Second
)

// Options configures an Orchestrator.
type Options struct {
	// Concurrency bounds the number of in-flight AI calls (default 4).
	Concurrency int

	// CallTimeout is the per-candidate AI call timeout (default 60s).
	// A timed-out call takes the fallback path like any other failure.
	CallTimeout time.Duration

	// RateLimitPerMinute throttles outbound AI calls. 0 disables
	// rate limiting.
	RateLimitPerMinute int

	// Logger receives per-candidate failure logs. Nil means no logging.
	Logger *zap.Logger
}

// Orchestrator fans candidate solving out over a bounded worker set.
// Results are written into index-addressed slots, so output order is
// determined by candidate position, never by completion order.
type Orchestrator struct {
	solver  Solver
	log     *zap.Logger
	limiter *rate.Limiter

	concurrency int
	timeout     time.Duration
}

// NewOrchestrator creates an Orchestrator around the given capability.
func NewOrchestrator(solver Solver, opts Options) *Orchestrator {
	o := &Orchestrator{
		solver:      solver,
		log:         opts.Logger,
		concurrency: opts.Concurrency,
		timeout:     opts.CallTimeout,
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}
	if o.concurrency <= 0 {
		o.concurrency = defaultConcurrency
	}
	if o.timeout <= 0 {
		o.timeout = defaultCallTimeout
	}
	if opts.RateLimitPerMinute > 0 {
		rps := float64(opts.RateLimitPerMinute) / 60.0
		burst := opts.RateLimitPerMinute / 4
		if burst < 1 {
			burst = 1
		}
		if burst > 5 {
			burst = 5
		}
		o.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
	return o
}

// SolveAll solves every candidate and returns exactly one Solved per
// candidate, in candidate order. Individual failures never fail the
// batch; only cancellation of ctx does, in which case partial results
// are discarded.
func (o *Orchestrator) SolveAll(ctx context.Context, candidates []segment.Candidate, subject string, classLevel int) ([]Solved, error) {
	results := make([]Solved, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for i, c := range candidates {
		g.Go(func() error {
			if o.limiter != nil {
				if err := o.limiter.Wait(gctx); err != nil {
					return err
				}
			}
			results[i] = o.solveCandidate(gctx, c, subject, classLevel)
			// A fallback caused by parent cancellation is not a real
			// result; the batch is abandoned.
			return gctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// SolveOne solves a single free-form question outside of any paper run.
func (o *Orchestrator) SolveOne(ctx context.Context, question, subject string, classLevel int) (Solution, error) {
	c := segment.Candidate{Label: "1", Body: question, Kind: segment.KindNumbered}

	callCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	raw, err := o.solver.Solve(callCtx, BuildPrompt(c, subject, classLevel))
	if err != nil {
		return Solution{}, err
	}
	return ParseResponse(raw), nil
}

func (o *Orchestrator) solveCandidate(ctx context.Context, c segment.Candidate, subject string, classLevel int) Solved {
	callCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	raw, err := o.solver.Solve(callCtx, BuildPrompt(c, subject, classLevel))
	if err != nil {
		o.log.Warn("solve failed, substituting fallback",
			zap.String("label", c.Label),
			zap.Error(err))
		return Solved{Candidate: c, Solution: fallbackSolution(), Status: StatusFallback}
	}

	return Solved{Candidate: c, Solution: ParseResponse(raw), Status: StatusOK}
}

func fallbackSolution() Solution {
	return Solution{
		SolutionText: fallbackMessage,
		Steps:        []string{},
	}
}
