package propagate

import "github.com/gitrdm/antco/pkg/csp"

// varState holds one variable's dense-index interning and its current
// (possibly reduced) domain.
type varState struct {
	indexToVal []int
	current    bitDomain
}

// Propagator is a forward-checking CSP propagator: assigning a variable
// prunes, from every unassigned variable sharing a constraint with it,
// any value that would definitively violate that constraint.
//
// One Propagator is constructed per Problem and reused across ants via
// Reset; per-ant state lives entirely in the current-domain bitsets,
// which Reset restores to the problem's original domains.
type Propagator struct {
	problem *csp.Problem
	states  map[*csp.Variable]*varState
	order   []*csp.Variable // stable iteration order for SingletonVariables
	failed  bool
}

// NewPropagator builds a Propagator for problem. The variable domains
// are interned once here; Reset only needs to reset the bitsets, not
// rebuild the interning tables.
func NewPropagator(problem *csp.Problem) *Propagator {
	p := &Propagator{
		problem: problem,
		states:  make(map[*csp.Variable]*varState, problem.Size()),
		order:   append([]*csp.Variable(nil), problem.Variables()...),
	}
	for _, v := range problem.Variables() {
		dom := v.Domain()
		st := &varState{indexToVal: append([]int(nil), dom...)}
		p.states[v] = st
	}
	p.Reset()
	return p
}

// Reset restores every variable's current domain to its original domain
// and clears the failed flag.
func (p *Propagator) Reset() {
	p.failed = false
	for _, st := range p.states {
		st.current = newFullBitDomain(len(st.indexToVal))
	}
}

// HasFailed reports whether propagation has latched a failure since the
// last Reset.
func (p *Propagator) HasFailed() bool { return p.failed }

// Clone returns an independent Propagator over the same problem, copying
// the current (possibly already-reduced) domain state rather than
// rebuilding the value/index interning tables from scratch. This backs
// the optional parallel-ants construction mode in pkg/aco, where each
// concurrently-running ant needs its own propagator instance descended
// from a common, freshly-reset starting point.
func (p *Propagator) Clone() *Propagator {
	clone := &Propagator{
		problem: p.problem,
		states:  make(map[*csp.Variable]*varState, len(p.states)),
		order:   p.order,
		failed:  p.failed,
	}
	for v, st := range p.states {
		clone.states[v] = &varState{
			indexToVal: st.indexToVal,
			current:    st.current.clone(),
		}
	}
	return clone
}

// CurrentDomain returns v's present reduced domain, in the order values
// appear in v's original domain — the deterministic order the
// probabilistic selector relies on.
func (p *Propagator) CurrentDomain(v *csp.Variable) []int {
	st, ok := p.states[v]
	if !ok {
		return nil
	}
	out := make([]int, 0, st.current.count())
	st.current.indices(func(i int) {
		out = append(out, st.indexToVal[i])
	})
	return out
}

// SingletonVariables returns the variables whose current domain has
// exactly one remaining value, regardless of whether that variable is
// already assigned — callers (the assignment constructor) filter out the
// already-assigned ones themselves before forcing the rest.
func (p *Propagator) SingletonVariables() []*csp.Variable {
	var out []*csp.Variable
	for _, v := range p.order {
		if p.states[v].current.isSingleton() {
			out = append(out, v)
		}
	}
	return out
}

// Propagate reduces the current domains of unassigned variables against
// assignment, using forward checking: for every constraint not yet fully
// assigned, each unassigned involved variable has any value removed that
// would falsify the constraint were that value assigned. Returns false
// and latches the failed flag on inconsistency or a domain wipeout.
//
// Domain reduction uses a test-and-revert pattern — temporarily assign a
// candidate value into the live assignment, ask the constraint, then
// unassign — rather than building a defensive copy per candidate value.
// Because one Propagator (and the Assignment it propagates against)
// belongs to exactly one ant's construction walk and is never shared
// across ants, even under parallel construction (see pkg/aco, where each
// ant gets its own Propagator.Clone()), this is safe: nothing else ever
// mutates the assignment being tested mid-propagation.
func (p *Propagator) Propagate(assignment *csp.Assignment) bool {
	if p.failed {
		return false
	}
	if !p.problem.Consistent(assignment) {
		p.failed = true
		return false
	}
	for _, c := range p.problem.Constraints() {
		if !p.propagateConstraint(c, assignment) {
			p.failed = true
			return false
		}
	}
	return true
}

func (p *Propagator) propagateConstraint(c csp.Constraint, assignment *csp.Assignment) bool {
	involved := c.InvolvedVariables()

	unassigned := make([]*csp.Variable, 0, len(involved))
	for _, v := range involved {
		if !assignment.IsAssigned(v) {
			unassigned = append(unassigned, v)
		}
	}
	if len(unassigned) == 0 {
		return c.SatisfiedBy(assignment)
	}

	for _, v := range unassigned {
		if !p.reduceDomain(v, c, assignment) {
			return false
		}
	}
	return true
}

// reduceDomain removes from v's current domain every value that, if
// assigned to v right now, would falsify c. Returns false if the domain
// wipes out.
func (p *Propagator) reduceDomain(v *csp.Variable, c csp.Constraint, assignment *csp.Assignment) bool {
	st := p.states[v]

	var toRemove []int
	st.current.indices(func(i int) {
		value := st.indexToVal[i]
		assignment.Assign(v, value)
		satisfied := c.SatisfiedBy(assignment)
		assignment.Unassign(v)
		if !satisfied {
			toRemove = append(toRemove, i)
		}
	})

	wipedOut := false
	for _, i := range toRemove {
		if st.current.remove(i) {
			wipedOut = true
		}
	}
	return !wipedOut
}
