// Package propagate implements the CSPPropagator collaborator the
// assignment constructor in pkg/aco depends on: forward-checking domain
// reduction, singleton detection, and reset-to-initial-domains.
//
// The reduced domain of each variable is stored as a bitset over dense
// indices into that variable's original domain slice — the same
// contiguous, cache-friendly representation the constraint-logic engine
// this package was generalized from uses for its own finite domains,
// generalized here from a fixed [1, maxValue] integer range to an
// arbitrary, per-variable []int domain by interning each domain value to
// its position in that slice.
package propagate
