package csp

// Constraint is a predicate over a set of variables. Evaluation is
// optimistic: a constraint whose involved variables are not all assigned
// yet is considered satisfied, so propagation can call SatisfiedBy on
// partial assignments without false positives on not-yet-decided
// variables.
type Constraint interface {
	// InvolvedVariables returns the finite set of variables this
	// constraint observes, in a stable order.
	InvolvedVariables() []*Variable
	// SatisfiedBy reports false only if the constraint is definitively
	// violated by the given (possibly partial) assignment.
	SatisfiedBy(assignment ReadOnlyAssignment) bool
}

// allAssigned reports whether every variable in vars has a value in a.
func allAssigned(vars []*Variable, a ReadOnlyAssignment) bool {
	for _, v := range vars {
		if !a.IsAssigned(v) {
			return false
		}
	}
	return true
}

// NotEqual is a binary disequality constraint: the two variables, once
// both assigned, must hold different values. This is the pairwise
// building block AllDifferent decomposes into, and is also useful on its
// own for a minimal two-variable disequality problem.
type NotEqual struct {
	A, B *Variable
}

// NewNotEqual constructs a NotEqual constraint over a and b.
func NewNotEqual(a, b *Variable) *NotEqual {
	return &NotEqual{A: a, B: b}
}

func (c *NotEqual) InvolvedVariables() []*Variable { return []*Variable{c.A, c.B} }

func (c *NotEqual) SatisfiedBy(assignment ReadOnlyAssignment) bool {
	va, aok := assignment.Get(c.A)
	vb, bok := assignment.Get(c.B)
	if !aok || !bok {
		return true
	}
	return va != vb
}

// AllDifferent requires every pair of its variables, once both assigned,
// to hold different values. Sudoku rows/columns/boxes and the N-Queens
// one-queen-per-row rule are built from it; the N-Queens diagonal-attack
// rule cannot be expressed with it and needs a custom constraint.
type AllDifferent struct {
	vars []*Variable
}

// NewAllDifferent constructs an AllDifferent constraint over vars. It
// panics if vars has fewer than two elements, since a constraint over a
// single variable cannot be violated and is almost certainly a
// construction mistake.
func NewAllDifferent(vars ...*Variable) *AllDifferent {
	if len(vars) < 2 {
		panic(ErrNoInvolvedVariables)
	}
	own := make([]*Variable, len(vars))
	copy(own, vars)
	return &AllDifferent{vars: own}
}

func (c *AllDifferent) InvolvedVariables() []*Variable { return c.vars }

func (c *AllDifferent) SatisfiedBy(assignment ReadOnlyAssignment) bool {
	seen := make(map[int]struct{}, len(c.vars))
	for _, v := range c.vars {
		value, ok := assignment.Get(v)
		if !ok {
			continue
		}
		if _, dup := seen[value]; dup {
			return false
		}
		seen[value] = struct{}{}
	}
	return true
}
