package solve

import "context"

// Solver is the AI completion capability consumed by the orchestrator.
// Implementations receive one prompt and return free text which is
// expected, but not guaranteed, to embed a JSON solution object.
type Solver interface {
	Solve(ctx context.Context, prompt string) (string, error)
}

// SolverFunc adapts a function to the Solver interface.
type SolverFunc func(ctx context.Context, prompt string) (string, error)

func (f SolverFunc) Solve(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
