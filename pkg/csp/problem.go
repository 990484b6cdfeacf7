package csp

// Problem aggregates the variables and constraints of a CSP instance. It
// is immutable after construction.
type Problem struct {
	variables   []*Variable
	constraints []Constraint
}

// NewProblem constructs a Problem from an ordered list of variables and a
// (possibly empty) list of constraints. Variable identity is by pointer,
// so passing the same *Variable twice is rejected with
// ErrDuplicateVariable: it would silently double-count that variable in
// Size(), which the colony loop uses as its completeness and termination
// metric. Two distinct *Variable values that share a name are not
// rejected; they are treated as separate variables.
func NewProblem(variables []*Variable, constraints []Constraint) (*Problem, error) {
	if len(variables) == 0 {
		return nil, ErrNoVariables
	}
	seen := make(map[*Variable]struct{}, len(variables))
	own := make([]*Variable, len(variables))
	for i, v := range variables {
		if _, dup := seen[v]; dup {
			return nil, ErrDuplicateVariable
		}
		seen[v] = struct{}{}
		own[i] = v
	}
	ownConstraints := make([]Constraint, len(constraints))
	copy(ownConstraints, constraints)
	return &Problem{variables: own, constraints: ownConstraints}, nil
}

// Variables returns the problem's variables in construction order.
func (p *Problem) Variables() []*Variable { return p.variables }

// Constraints returns the problem's constraints in construction order.
func (p *Problem) Constraints() []Constraint { return p.constraints }

// Size returns the number of variables in the problem.
func (p *Problem) Size() int { return len(p.variables) }

// Consistent reports whether every constraint whose involved variables
// are all assigned in the given assignment is currently satisfied.
// Constraints with unassigned involved variables are, per the optimistic
// interpretation, not evaluated at all here (they cannot be violated
// yet).
func (p *Problem) Consistent(assignment ReadOnlyAssignment) bool {
	for _, c := range p.constraints {
		if !allAssigned(c.InvolvedVariables(), assignment) {
			continue
		}
		if !c.SatisfiedBy(assignment) {
			return false
		}
	}
	return true
}

// IsSolution reports whether assignment is complete (covers every
// variable) and consistent (violates no constraint).
func (p *Problem) IsSolution(assignment *Assignment) bool {
	return assignment.IsComplete(p.Size()) && p.Consistent(assignment)
}
