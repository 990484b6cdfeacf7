package aco

import (
	"context"
	"runtime"

	"go.uber.org/zap"

	"github.com/gitrdm/antco/internal/antpool"
	"github.com/gitrdm/antco/pkg/csp"
)

// SolveParallel behaves like Solve, but constructs each cycle's ants
// concurrently across up to GOMAXPROCS workers. Every ant gets its own
// propagator clone (see propagate.Propagator.Clone) and its own child
// value selector, deterministically derived from the colony's seed and
// the ant's index, so which value each ant picks depends only on its own
// index and the pheromone matrix — never on goroutine scheduling order.
// The pheromone update after a cycle remains a hard barrier: no ant of
// cycle c+1 starts before every ant of cycle c has finished and the
// update for cycle c has completed.
func (c *Colony) SolveParallel(ctx context.Context, maxCycles int) (*csp.Assignment, error) {
	if maxCycles <= 0 {
		return nil, ErrNonPositiveMaxCycles
	}

	maxWorkers := runtime.GOMAXPROCS(0)

	c.logger.Info("starting aco colony (parallel)",
		zap.Int("max_cycles", maxCycles),
		zap.Int("ants_per_cycle", c.parameters.NumberOfAnts),
		zap.Int("problem_size", c.problem.Size()),
	)

	for cycle := 0; cycle < maxCycles; cycle++ {
		cycleBest, err := c.executeCycleParallel(ctx, maxWorkers, cycle)
		if err != nil {
			return nil, err
		}
		if c.problem.IsSolution(cycleBest) {
			c.logger.Info("valid solution found",
				zap.Int("cycle", cycle),
				zap.Int("assigned", cycleBest.Size()),
				zap.Int("problem_size", c.problem.Size()),
			)
			return cycleBest, nil
		}
	}

	c.logger.Warn("max cycles reached without complete solution",
		zap.Int("best_size", c.bestAssignment.Size()),
		zap.Int("problem_size", c.problem.Size()),
	)
	return c.bestAssignment, nil
}

func (c *Colony) executeCycleParallel(ctx context.Context, maxWorkers, cycle int) (*csp.Assignment, error) {
	n := c.parameters.NumberOfAnts

	results, err := antpool.ConstructAll(ctx, maxWorkers, n, func(antIndex int) (*csp.Assignment, error) {
		propagatorClone := c.propagator.Clone()
		selectorClone := c.valueSelector.Derive(antIndex)
		return ConstructAssignment(c.problem, c.pheromones, c.parameters, c.variableSelector, selectorClone, propagatorClone)
	})
	if err != nil {
		return nil, err
	}

	cycleAssignments := make([]*csp.Assignment, 0, n)
	cycleBest := csp.NewAssignment()
	for _, assignment := range results {
		c.recordAntResult(assignment, &cycleAssignments, &cycleBest)
	}

	if err := c.updatePheromones(cycleAssignments); err != nil {
		return nil, err
	}

	c.logger.Debug("cycle complete (parallel)",
		zap.Int("cycle", cycle),
		zap.Int("cycle_best_size", cycleBest.Size()),
		zap.Int("cycle_assignments", len(cycleAssignments)),
	)
	return cycleBest, nil
}
