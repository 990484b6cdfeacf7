package csp

// ReadOnlyAssignment is the view a Constraint evaluates against. It
// exposes only the read operations a predicate needs, so constraints
// cannot accidentally mutate the assignment they are judging.
type ReadOnlyAssignment interface {
	Get(v *Variable) (value int, ok bool)
	IsAssigned(v *Variable) bool
}

// Assignment is a mutable mapping from variable to value. One Assignment
// is built per ant during a construction walk: created empty, mutated in
// place as the ant assigns variables, snapshotted into cycle history,
// then discarded. The zero value is not usable; use NewAssignment.
type Assignment struct {
	values map[*Variable]int
	// order preserves assignment order, mirrored into deposit and
	// deposit-multiple walks so pheromone updates are deterministic
	// given a deterministic construction order.
	order []*Variable
}

// NewAssignment returns an empty assignment.
func NewAssignment() *Assignment {
	return &Assignment{values: make(map[*Variable]int)}
}

// Assign binds variable to value. It panics if value is not in the
// variable's domain: that is an invariant violation, never a recoverable
// search-failure condition, so a caller-facing error return would be the
// wrong shape here; every call site in this module only ever assigns
// values it already validated came from the variable's current domain.
func (a *Assignment) Assign(v *Variable, value int) {
	if !v.Contains(value) {
		panic(ErrValueNotInDomain)
	}
	if _, already := a.values[v]; !already {
		a.order = append(a.order, v)
	}
	a.values[v] = value
}

// Unassign removes v's binding, if any. It is a no-op if v was not
// assigned.
func (a *Assignment) Unassign(v *Variable) {
	if _, ok := a.values[v]; !ok {
		return
	}
	delete(a.values, v)
	for i, ov := range a.order {
		if ov == v {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
}

// Get returns v's assigned value and whether it is assigned.
func (a *Assignment) Get(v *Variable) (int, bool) {
	value, ok := a.values[v]
	return value, ok
}

// IsAssigned reports whether v currently has a value.
func (a *Assignment) IsAssigned(v *Variable) bool {
	_, ok := a.values[v]
	return ok
}

// Size returns the number of currently-assigned variables.
func (a *Assignment) Size() int { return len(a.values) }

// IsComplete reports whether the assignment covers all n variables of the
// problem it was built for.
func (a *Assignment) IsComplete(n int) bool { return a.Size() == n }

// AssignedVariables returns the assigned variables in assignment order.
// Used by pkg/pheromone's deposit walk (supplemented from the source
// implementation's Assignment.getAssignedVariables — the distilled
// operation list omits it, but a pheromone deposit cannot be written
// without iterating exactly this set).
func (a *Assignment) AssignedVariables() []*Variable {
	out := make([]*Variable, len(a.order))
	copy(out, a.order)
	return out
}

// Snapshot returns an independent copy of the assignment. Ants mutate
// their live Assignment throughout a construction walk; a Snapshot is
// what gets stored into cycle history so later mutation of the live
// assignment cannot retroactively corrupt it.
func (a *Assignment) Snapshot() *Assignment {
	cp := &Assignment{
		values: make(map[*Variable]int, len(a.values)),
		order:  make([]*Variable, len(a.order)),
	}
	for k, v := range a.values {
		cp.values[k] = v
	}
	copy(cp.order, a.order)
	return cp
}
