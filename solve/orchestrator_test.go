package solve

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperwise/paperwise/segment"
)

func makeCandidates(n int) []segment.Candidate {
	out := make([]segment.Candidate, n)
	for i := range out {
		out[i] = segment.Candidate{
			Label: fmt.Sprintf("%d", i+1),
			Body:  fmt.Sprintf("Find the square of %d.", i+1),
			Kind:  segment.KindNumbered,
		}
	}
	return out
}

func TestSolveAll_OneResultPerCandidate(t *testing.T) {
	solver := SolverFunc(func(ctx context.Context, prompt string) (string, error) {
		return `{"solution": "done", "steps": ["one"], "final_answer": "ok"}`, nil
	})
	o := NewOrchestrator(solver, Options{Concurrency: 3})

	candidates := makeCandidates(10)
	solved, err := o.SolveAll(context.Background(), candidates, "Mathematics", 10)
	require.NoError(t, err)
	require.Len(t, solved, len(candidates))

	for i, s := range solved {
		assert.Equal(t, candidates[i].Label, s.Label)
		assert.Equal(t, StatusOK, s.Status)
		assert.Equal(t, "done", s.SolutionText)
	}
}

func TestSolveAll_PreservesOrderUnderConcurrency(t *testing.T) {
	// Later candidates finish first; output order must still follow input.
	solver := SolverFunc(func(ctx context.Context, prompt string) (string, error) {
		var n int
		fmt.Sscanf(prompt[strings.Index(prompt, "Question Number: "):], "Question Number: %d", &n)
		time.Sleep(time.Duration(20-n) * time.Millisecond)
		return fmt.Sprintf(`{"solution": "answer %d"}`, n), nil
	})
	o := NewOrchestrator(solver, Options{Concurrency: 8})

	candidates := makeCandidates(12)
	solved, err := o.SolveAll(context.Background(), candidates, "Mathematics", 10)
	require.NoError(t, err)
	require.Len(t, solved, 12)

	for i, s := range solved {
		assert.Equal(t, fmt.Sprintf("answer %d", i+1), s.SolutionText,
			"result %d out of order", i)
	}
}

func TestSolveAll_FailureIsolation(t *testing.T) {
	// Candidate 2 fails; everything else must still solve.
	solver := SolverFunc(func(ctx context.Context, prompt string) (string, error) {
		if strings.Contains(prompt, "Question Number: 2\n") {
			return "", errors.New("model unavailable")
		}
		return `{"solution": "fine"}`, nil
	})
	o := NewOrchestrator(solver, Options{Concurrency: 2})

	candidates := makeCandidates(4)
	solved, err := o.SolveAll(context.Background(), candidates, "Mathematics", 10)
	require.NoError(t, err)
	require.Len(t, solved, 4)

	for i, s := range solved {
		if s.Label == "2" {
			assert.Equal(t, StatusFallback, s.Status)
			assert.Equal(t, fallbackMessage, s.SolutionText)
			assert.Empty(t, s.Steps)
		} else {
			assert.Equal(t, StatusOK, s.Status, "candidate %d", i)
			assert.Equal(t, "fine", s.SolutionText)
		}
	}
}

func TestSolveAll_TimeoutFallsBack(t *testing.T) {
	solver := SolverFunc(func(ctx context.Context, prompt string) (string, error) {
		select {
		case <-time.After(time.Second):
			return `{"solution": "too late"}`, nil
		case <-ctx.Done():
			return "", ctx.Err()
		}
	})
	o := NewOrchestrator(solver, Options{CallTimeout: 10 * time.Millisecond})

	solved, err := o.SolveAll(context.Background(), makeCandidates(1), "Mathematics", 10)
	require.NoError(t, err)
	require.Len(t, solved, 1)
	assert.Equal(t, StatusFallback, solved[0].Status)
	assert.Equal(t, fallbackMessage, solved[0].SolutionText)
}

func TestSolveAll_CancellationDiscardsBatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	solver := SolverFunc(func(ctx context.Context, prompt string) (string, error) {
		return `{"solution": "never used"}`, nil
	})
	o := NewOrchestrator(solver, Options{})

	solved, err := o.SolveAll(ctx, makeCandidates(3), "Mathematics", 10)
	assert.Error(t, err)
	assert.Nil(t, solved)
}

func TestSolveAll_UnparseableResponseIsStillOK(t *testing.T) {
	solver := SolverFunc(func(ctx context.Context, prompt string) (string, error) {
		return "The answer is simply four.\nBecause two plus two equals four.", nil
	})
	o := NewOrchestrator(solver, Options{})

	solved, err := o.SolveAll(context.Background(), makeCandidates(1), "Mathematics", 10)
	require.NoError(t, err)
	require.Len(t, solved, 1)

	assert.Equal(t, StatusOK, solved[0].Status)
	assert.Len(t, solved[0].Steps, 2)
	assert.Contains(t, solved[0].SolutionText, "simply four")
}

func TestSolveOne(t *testing.T) {
	solver := SolverFunc(func(ctx context.Context, prompt string) (string, error) {
		assert.Contains(t, prompt, "Find the roots")
		return `{"solution": "x = 2 or x = 3", "final_answer": "2, 3"}`, nil
	})
	o := NewOrchestrator(solver, Options{})

	sol, err := o.SolveOne(context.Background(), "Find the roots of x^2 - 5x + 6 = 0", "Mathematics", 10)
	require.NoError(t, err)
	assert.Equal(t, "x = 2 or x = 3", sol.SolutionText)
	assert.Equal(t, "2, 3", sol.FinalAnswer)
}

func TestSolveOne_ErrorPropagates(t *testing.T) {
	solver := SolverFunc(func(ctx context.Context, prompt string) (string, error) {
		return "", errors.New("network down")
	})
	o := NewOrchestrator(solver, Options{})

	_, err := o.SolveOne(context.Background(), "Define momentum in one line", "Physics", 9)
	assert.Error(t, err)
}
