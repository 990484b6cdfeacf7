package aco

import (
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/gitrdm/antco/pkg/csp"
	"github.com/gitrdm/antco/pkg/pheromone"
	"github.com/gitrdm/antco/pkg/propagate"
)

// Colony drives the outer ACO loop: initialize pheromones to τ_max, run
// cycles of m ants each, track the running best-since-start assignment,
// update pheromones under the Max-Min Ant System rule after every cycle,
// and stop when a complete consistent solution is found or the cycle
// budget runs out.
type Colony struct {
	problem    *csp.Problem
	parameters Parameters
	pheromones *pheromone.Matrix
	propagator *propagate.Propagator

	variableSelector     VariableSelector
	valueSelector        *ValueSelector
	considerOnlyComplete bool

	bestAssignment *csp.Assignment
	logger         *zap.Logger
}

// Option configures a Colony at construction time.
type Option func(*Colony)

// WithLogger attaches a structured logger. A nil logger is treated as
// zap.NewNop() — logging is always safe to skip.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Colony) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithVariableSelector overrides the default SmallestDomainFirst strategy.
func WithVariableSelector(selector VariableSelector) Option {
	return func(c *Colony) { c.variableSelector = selector }
}

// WithSeed seeds the colony's value selector for reproducible runs.
func WithSeed(seed int64) Option {
	return func(c *Colony) { c.valueSelector = NewValueSelector(seed) }
}

// WithConsiderOnlyComplete restricts cycle history (and therefore
// best-of-cycle selection) to complete assignments only, discarding
// partial ant walks entirely instead of letting them compete on size.
func WithConsiderOnlyComplete(onlyComplete bool) Option {
	return func(c *Colony) { c.considerOnlyComplete = onlyComplete }
}

// NewColony builds a colony over problem, initializing its pheromone
// matrix to parameters.TauMax.
func NewColony(problem *csp.Problem, parameters Parameters, opts ...Option) (*Colony, error) {
	if problem == nil {
		return nil, ErrNilProblem
	}

	matrix, err := pheromone.Initialize(problem, parameters.TauMax)
	if err != nil {
		return nil, err
	}

	c := &Colony{
		problem:          problem,
		parameters:       parameters,
		pheromones:       matrix,
		propagator:       propagate.NewPropagator(problem),
		variableSelector: SmallestDomainFirst,
		valueSelector:    NewValueSelector(1),
		bestAssignment:   csp.NewAssignment(),
		logger:           zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Parameters returns the colony's ACO parameters.
func (c *Colony) Parameters() Parameters { return c.parameters }

// Pheromones returns the colony's current pheromone matrix.
func (c *Colony) Pheromones() *pheromone.Matrix { return c.pheromones }

// BestAssignment returns the best assignment observed since the colony
// started, which may still be partial if no complete solution was found.
func (c *Colony) BestAssignment() *csp.Assignment { return c.bestAssignment }

// Solve runs cycles of ants sequentially, one ant to completion before
// the next begins, until a cycle produces a complete consistent solution
// or maxCycles cycles have run. On budget exhaustion it returns the best
// assignment ever seen with a nil error; the caller distinguishes
// "found" from "best-effort" via problem.IsSolution on the result.
func (c *Colony) Solve(maxCycles int) (*csp.Assignment, error) {
	if maxCycles <= 0 {
		return nil, ErrNonPositiveMaxCycles
	}

	c.logger.Info("starting aco colony",
		zap.Int("max_cycles", maxCycles),
		zap.Int("ants_per_cycle", c.parameters.NumberOfAnts),
		zap.Int("problem_size", c.problem.Size()),
	)

	for cycle := 0; cycle < maxCycles; cycle++ {
		cycleBest, err := c.executeCycle(cycle)
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

// executeCycle runs one cycle of ants sequentially and applies the
// pheromone update. It returns the largest assignment built this cycle.
func (c *Colony) executeCycle(cycle int) (*csp.Assignment, error) {
	cycleAssignments := make([]*csp.Assignment, 0, c.parameters.NumberOfAnts)
	cycleBest := csp.NewAssignment()

	for ant := 0; ant < c.parameters.NumberOfAnts; ant++ {
		assignment, err := ConstructAssignment(c.problem, c.pheromones, c.parameters, c.variableSelector, c.valueSelector, c.propagator)
		if err != nil {
			return nil, err
		}
		c.recordAntResult(assignment, &cycleAssignments, &cycleBest)
	}

	if err := c.updatePheromones(cycleAssignments); err != nil {
		return nil, err
	}

	c.logger.Debug("cycle complete",
		zap.Int("cycle", cycle),
		zap.Int("cycle_best_size", cycleBest.Size()),
		zap.Int("cycle_assignments", len(cycleAssignments)),
	)
	return cycleBest, nil
}

// recordAntResult folds one ant's finished assignment into the cycle's
// bookkeeping: cycle history, the cycle's own best, and the running
// global best.
func (c *Colony) recordAntResult(assignment *csp.Assignment, cycleAssignments *[]*csp.Assignment, cycleBest **csp.Assignment) {
	if assignment.Size() == 0 {
		return
	}
	if c.considerOnlyComplete && !assignment.IsComplete(c.problem.Size()) {
		return
	}

	snapshot := assignment.Snapshot()
	*cycleAssignments = append(*cycleAssignments, snapshot)

	if snapshot.Size() > (*cycleBest).Size() {
		*cycleBest = snapshot
	}

	// Best-ever tracking uses greater-or-equal: a deliberate departure
	// from a strict greater-than rule, so the most recently found
	// assignment of a tied best size becomes the one BoC deposits gap
	// against.
	if snapshot.Size() >= c.bestAssignment.Size() {
		c.bestAssignment = snapshot
	}
}

// updatePheromones runs the mandatory evaporate -> deposit -> clamp
// sequence for one cycle. Deposit only happens if the cycle produced a
// non-empty best-of-cycle bucket.
func (c *Colony) updatePheromones(cycleAssignments []*csp.Assignment) error {
	if err := c.pheromones.Evaporate(c.parameters.Rho); err != nil {
		return err
	}

	boc := bestOfCycle(cycleAssignments)
	if len(boc) > 0 {
		deltas := make(map[*csp.Assignment]float64, len(boc))
		for _, a := range boc {
			gap := c.bestAssignment.Size() - a.Size()
			if gap < 0 {
				return &BestGapAnomalyError{BestOverallSize: c.bestAssignment.Size(), AssignmentSize: a.Size()}
			}
			deltas[a] = 1.0 / float64(1+gap)
		}
		if err := c.pheromones.DepositMultiple(boc, func(a *csp.Assignment) float64 { return deltas[a] }); err != nil {
			return err
		}
	}

	return c.pheromones.Clamp(c.parameters.TauMin, c.parameters.TauMax)
}

// bestOfCycle returns every assignment in assignments whose size equals
// the maximum size present, or nil if assignments is empty.
func bestOfCycle(assignments []*csp.Assignment) []*csp.Assignment {
	if len(assignments) == 0 {
		return nil
	}
	largest := lo.MaxBy(assignments, func(a, max *csp.Assignment) bool {
		return a.Size() > max.Size()
	})
	return lo.Filter(assignments, func(a *csp.Assignment, _ int) bool {
		return a.Size() == largest.Size()
	})
}
