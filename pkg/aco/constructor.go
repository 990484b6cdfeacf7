package aco

import (
	"github.com/gitrdm/antco/pkg/csp"
	"github.com/gitrdm/antco/pkg/pheromone"
	"github.com/gitrdm/antco/pkg/propagate"
)

// ConstructAssignment builds a single ant's (possibly partial) assignment:
// it repeatedly asks variableSelector for the next variable, valueSelector
// for a pheromone-weighted value, assigns it, propagates, and closes any
// singleton variables the propagation exposes before moving on. It
// resets propagator to the problem's initial domains before starting, so
// one Propagator can be reused ant after ant.
//
// A returned error is always a fatal, non-recoverable condition (weight
// degeneracy); every other stopping condition — no variable offered, an
// empty domain, no value offered, a propagation failure — returns the
// partial assignment built so far with a nil error, since a short walk
// still carries useful signal for the cycle's pheromone update.
func ConstructAssignment(
	problem *csp.Problem,
	pheromones *pheromone.Matrix,
	params Parameters,
	variableSelector VariableSelector,
	valueSelector *ValueSelector,
	propagator *propagate.Propagator,
) (*csp.Assignment, error) {
	assignment := csp.NewAssignment()
	propagator.Reset()

	for !assignment.IsComplete(problem.Size()) {
		variable, ok := variableSelector(problem, assignment, propagator)
		if !ok {
			return assignment, nil
		}

		domain := propagator.CurrentDomain(variable)
		if len(domain) == 0 {
			return assignment, nil
		}

		value, ok, err := valueSelector.Select(variable, domain, pheromones, params)
		if err != nil {
			return assignment, err
		}
		if !ok {
			return assignment, nil
		}

		assignment.Assign(variable, value)
		if !propagator.Propagate(assignment) {
			return assignment, nil
		}

		if closeSingletons(assignment, propagator); propagator.HasFailed() {
			return assignment, nil
		}
	}

	return assignment, nil
}

// closeSingletons repeatedly assigns every currently-unassigned variable
// whose reduced domain has exactly one remaining value, propagating after
// each, until no unassigned singletons remain or propagation fails. This
// is the deterministic forced-move step: it needs no ant guidance, so it
// runs immediately rather than spending a probabilistic decision on it.
func closeSingletons(assignment *csp.Assignment, propagator *propagate.Propagator) {
	for {
		var pending []*csp.Variable
		for _, v := range propagator.SingletonVariables() {
			if !assignment.IsAssigned(v) {
				pending = append(pending, v)
			}
		}
		if len(pending) == 0 {
			return
		}

		for _, v := range pending {
			domain := propagator.CurrentDomain(v)
			if len(domain) != 1 {
				// Already closed by a preceding singleton's propagation
				// this same pass.
				continue
			}
			assignment.Assign(v, domain[0])
			if !propagator.Propagate(assignment) {
				return
			}
		}
	}
}
