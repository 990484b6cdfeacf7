package csp

import "testing"

func TestAssignmentAssignAndGet(t *testing.T) {
	x := MustNewVariable("X", []int{1, 2, 3})
	a := NewAssignment()

	if a.IsAssigned(x) {
		t.Fatal("fresh assignment should not have X assigned")
	}

	a.Assign(x, 2)
	value, ok := a.Get(x)
	if !ok || value != 2 {
		t.Fatalf("Get(X) = (%d, %v), want (2, true)", value, ok)
	}
	if a.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", a.Size())
	}
}

func TestAssignmentAssignOutsideDomainPanics(t *testing.T) {
	x := MustNewVariable("X", []int{1, 2, 3})
	a := NewAssignment()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when assigning a value outside the domain")
		}
	}()
	a.Assign(x, 99)
}

func TestAssignmentUnassign(t *testing.T) {
	x := MustNewVariable("X", []int{1, 2})
	a := NewAssignment()
	a.Assign(x, 1)
	a.Unassign(x)

	if a.IsAssigned(x) {
		t.Fatal("expected X to be unassigned")
	}
	if a.Size() != 0 {
		t.Fatalf("Size() = %d, want 0", a.Size())
	}
	// Unassigning again must be a harmless no-op.
	a.Unassign(x)
}

func TestAssignmentIsComplete(t *testing.T) {
	x := MustNewVariable("X", []int{1})
	y := MustNewVariable("Y", []int{1})
	a := NewAssignment()
	a.Assign(x, 1)

	if a.IsComplete(2) {
		t.Fatal("expected assignment of size 1 to not be complete for 2 variables")
	}
	a.Assign(y, 1)
	if !a.IsComplete(2) {
		t.Fatal("expected assignment of size 2 to be complete for 2 variables")
	}
}

func TestAssignmentSnapshotIsIndependent(t *testing.T) {
	x := MustNewVariable("X", []int{1, 2})
	a := NewAssignment()
	a.Assign(x, 1)

	snap := a.Snapshot()
	a.Assign(x, 2)

	value, _ := snap.Get(x)
	if value != 1 {
		t.Fatalf("snapshot mutated by later change to live assignment: got %d, want 1", value)
	}
}

func TestAssignmentAssignedVariablesPreservesOrder(t *testing.T) {
	x := MustNewVariable("X", []int{1})
	y := MustNewVariable("Y", []int{1})
	z := MustNewVariable("Z", []int{1})
	a := NewAssignment()
	a.Assign(y, 1)
	a.Assign(z, 1)
	a.Assign(x, 1)

	got := a.AssignedVariables()
	want := []*Variable{y, z, x}
	if len(got) != len(want) {
		t.Fatalf("AssignedVariables() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("AssignedVariables()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
