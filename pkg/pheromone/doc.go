// Package pheromone implements the PheromoneMatrix: a flat, contiguous
// store of per-(variable, value) trail strengths, with bounded
// multiplicative evaporation and additive deposit. It is the shared
// state a colony's ants read during construction and the colony mutates
// once per cycle.
package pheromone
