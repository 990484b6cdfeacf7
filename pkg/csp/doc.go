// Package csp defines the constraint-satisfaction data model that the ant
// colony optimization engine in pkg/aco constructs assignments against:
// variables with finite integer domains, constraints over those variables,
// the problem aggregate, and the mutable assignment ants build during a
// construction walk.
//
// Values are monomorphized to int. Every example CSP in the source
// material this engine was built from — Sudoku, N-Queens, graph coloring,
// scheduling — has an integer value space, and a generic surface here
// buys nothing but indirection at the hottest part of the algorithm.
package csp
