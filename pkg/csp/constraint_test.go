package csp

import "testing"

func TestNotEqualOptimisticWhenPartial(t *testing.T) {
	x := MustNewVariable("X", []int{1, 2})
	y := MustNewVariable("Y", []int{1, 2})
	c := NewNotEqual(x, y)

	a := NewAssignment()
	if !c.SatisfiedBy(a) {
		t.Fatal("constraint with no variables assigned must be optimistically satisfied")
	}
	a.Assign(x, 1)
	if !c.SatisfiedBy(a) {
		t.Fatal("constraint with only one of two variables assigned must be optimistically satisfied")
	}
}

func TestNotEqualViolatedWhenEqual(t *testing.T) {
	x := MustNewVariable("X", []int{1, 2})
	y := MustNewVariable("Y", []int{1, 2})
	c := NewNotEqual(x, y)

	a := NewAssignment()
	a.Assign(x, 1)
	a.Assign(y, 1)
	if c.SatisfiedBy(a) {
		t.Fatal("expected violation when both variables hold the same value")
	}

	a.Unassign(y)
	a.Assign(y, 2)
	if !c.SatisfiedBy(a) {
		t.Fatal("expected satisfaction when both variables differ")
	}
}

func TestAllDifferentDetectsAnyDuplicatePair(t *testing.T) {
	vars := []*Variable{
		MustNewVariable("A", []int{1, 2, 3}),
		MustNewVariable("B", []int{1, 2, 3}),
		MustNewVariable("C", []int{1, 2, 3}),
	}
	c := NewAllDifferent(vars...)

	a := NewAssignment()
	a.Assign(vars[0], 1)
	a.Assign(vars[1], 2)
	if !c.SatisfiedBy(a) {
		t.Fatal("expected satisfaction: {1, 2, unassigned}")
	}
	a.Assign(vars[2], 1)
	if c.SatisfiedBy(a) {
		t.Fatal("expected violation: {1, 2, 1} repeats 1")
	}
}

func TestAllDifferentPanicsOnTooFewVariables(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic constructing AllDifferent with fewer than 2 variables")
		}
	}()
	x := MustNewVariable("X", []int{1})
	NewAllDifferent(x)
}
