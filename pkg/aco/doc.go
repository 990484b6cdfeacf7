// Package aco implements the ant colony optimization engine: the
// pheromone-guided assignment constructor, its pluggable variable/value
// selection strategies, and the Colony that drives cycles of ants toward
// a complete, consistent assignment under the Max-Min Ant System update
// rule.
package aco
