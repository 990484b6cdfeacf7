package aco

import (
	"math/rand"

	"github.com/gitrdm/antco/pkg/csp"
	"github.com/gitrdm/antco/pkg/propagate"
)

// VariableSelector chooses the next unassigned variable to decide during
// one ant's construction walk, or reports that none remain. Strategies
// are stateless between calls; any state a strategy needs (e.g. an RNG)
// is closed over at construction time, not carried in the signature.
type VariableSelector func(problem *csp.Problem, assignment *csp.Assignment, propagator *propagate.Propagator) (*csp.Variable, bool)

// SmallestDomainFirst picks the unassigned variable with the smallest
// current reduced domain, breaking ties by iteration order — the
// "fail-first" heuristic: variables most likely to fail are decided
// earliest, so failures surface sooner.
func SmallestDomainFirst(problem *csp.Problem, assignment *csp.Assignment, propagator *propagate.Propagator) (*csp.Variable, bool) {
	var best *csp.Variable
	bestSize := -1
	for _, v := range problem.Variables() {
		if assignment.IsAssigned(v) {
			continue
		}
		size := len(propagator.CurrentDomain(v))
		if best == nil || size < bestSize {
			best, bestSize = v, size
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}

// UniformRandomSelector returns a VariableSelector that picks uniformly
// at random among the unassigned variables, drawing from rng.
func UniformRandomSelector(rng *rand.Rand) VariableSelector {
	return func(problem *csp.Problem, assignment *csp.Assignment, propagator *propagate.Propagator) (*csp.Variable, bool) {
		unassigned := make([]*csp.Variable, 0, problem.Size())
		for _, v := range problem.Variables() {
			if !assignment.IsAssigned(v) {
				unassigned = append(unassigned, v)
			}
		}
		if len(unassigned) == 0 {
			return nil, false
		}
		return unassigned[rng.Intn(len(unassigned))], true
	}
}
