package aco

import (
	"errors"
	"fmt"

	"github.com/gitrdm/antco/pkg/csp"
)

var (
	// ErrInvalidParameters indicates a Parameters value failed validation.
	ErrInvalidParameters = errors.New("aco: invalid parameters")
	// ErrNilProblem indicates NewColony was called with a nil problem.
	ErrNilProblem = errors.New("aco: problem cannot be nil")
	// ErrNonPositiveMaxCycles indicates Solve was called with maxCycles <= 0.
	ErrNonPositiveMaxCycles = errors.New("aco: maxCycles must be positive")
)

// WeightDegeneracyError reports that every candidate weight collapsed to
// zero during roulette-wheel value selection: τ(v,x)^α · η(v,x)^β
// underflowed to zero for every x remaining in v's domain. This should
// not happen while τ_min stays positive; it is treated as fatal rather
// than falling back to an arbitrary candidate, per the definitive-error
// edge case.
type WeightDegeneracyError struct {
	Variable   *csp.Variable
	DomainSize int
}

func (e *WeightDegeneracyError) Error() string {
	return fmt.Sprintf("aco: all %d candidate weights for variable %q collapsed to zero", e.DomainSize, e.Variable.Name())
}

// BestGapAnomalyError reports that an assignment's size exceeded the
// running global-best assignment's size at deposit time, which would
// make the Δτ gap negative. This indicates the colony failed to update
// its best-ever assignment before computing deposits — a logic error,
// not a recoverable search condition.
type BestGapAnomalyError struct {
	BestOverallSize int
	AssignmentSize  int
}

func (e *BestGapAnomalyError) Error() string {
	return fmt.Sprintf("aco: assignment size %d exceeds best-overall size %d", e.AssignmentSize, e.BestOverallSize)
}
