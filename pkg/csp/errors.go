package csp

import "errors"

var (
	// ErrEmptyName indicates a variable was constructed with a blank name.
	ErrEmptyName = errors.New("csp: variable name cannot be empty")
	// ErrEmptyDomain indicates a variable was constructed with no domain values.
	ErrEmptyDomain = errors.New("csp: variable domain cannot be empty")
	// ErrValueNotInDomain indicates an assignment attempted to bind a
	// variable to a value outside its declared domain.
	ErrValueNotInDomain = errors.New("csp: value is not in variable's domain")
	// ErrNoVariables indicates a problem was constructed with no variables.
	ErrNoVariables = errors.New("csp: problem must have at least one variable")
	// ErrDuplicateVariable indicates the same *Variable pointer was
	// passed to NewProblem more than once.
	ErrDuplicateVariable = errors.New("csp: duplicate variable in problem")
	// ErrNoInvolvedVariables indicates a constraint was built over too few
	// variables to be enforceable (NewAllDifferent requires at least two).
	ErrNoInvolvedVariables = errors.New("csp: constraint must involve at least two variables")
)
