package aco

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitrdm/antco/pkg/csp"
)

func TestSolveParallelFindsSolutionOnAllDifferentTriangle(t *testing.T) {
	a := csp.MustNewVariable("A", []int{1, 2, 3})
	b := csp.MustNewVariable("B", []int{1, 2, 3})
	c := csp.MustNewVariable("C", []int{1, 2, 3})
	problem, err := csp.NewProblem([]*csp.Variable{a, b, c}, []csp.Constraint{csp.NewAllDifferent(a, b, c)})
	require.NoError(t, err)

	params, err := NewParameters(2.0, 0.0, 0.1, 0.01, 10.0, 12)
	require.NoError(t, err)

	colony, err := NewColony(problem, params, WithSeed(5))
	require.NoError(t, err)

	solution, err := colony.SolveParallel(context.Background(), 20)
	require.NoError(t, err)
	require.True(t, problem.IsSolution(solution))
}

func TestSolveParallelRejectsNonPositiveMaxCycles(t *testing.T) {
	x := csp.MustNewVariable("X", []int{1})
	problem, err := csp.NewProblem([]*csp.Variable{x}, nil)
	require.NoError(t, err)

	colony, err := NewColony(problem, DefaultParameters())
	require.NoError(t, err)

	_, err = colony.SolveParallel(context.Background(), 0)
	require.ErrorIs(t, err, ErrNonPositiveMaxCycles)
}
