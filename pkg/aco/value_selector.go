package aco

import (
	"math"
	"math/rand"

	"github.com/gitrdm/antco/pkg/csp"
	"github.com/gitrdm/antco/pkg/pheromone"
)

// ValueSelector samples a value from a variable's current domain,
// weighted proportionally to τ(v,x)^α · η(v,x)^β. η is fixed at 1 (pure
// pheromone mode): no heuristic can be supplied, so β has no effect. It
// owns its random stream so that
// two selectors built with the same seed produce identical output given
// the same call sequence and pheromone state.
type ValueSelector struct {
	seed int64
	rng  *rand.Rand
}

// NewValueSelector returns a selector seeded for reproducible sampling.
func NewValueSelector(seed int64) *ValueSelector {
	return &ValueSelector{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// Derive returns an independent child selector for the antIndex'th ant
// of a cycle, deterministically seeded from this selector's own seed.
// This lets parallel construction (see Colony.SolveParallel) give every
// concurrently-running ant its own RNG without any of them touching a
// shared *rand.Rand, while keeping the whole cycle reproducible under a
// fixed top-level seed.
func (s *ValueSelector) Derive(antIndex int) *ValueSelector {
	const mix uint64 = 0x9E3779B97F4A7C15 // golden-ratio constant, standard hash-mixing multiplier
	mixed := uint64(s.seed) ^ (uint64(antIndex)+1)*mix
	return NewValueSelector(int64(mixed))
}

// Select returns a value drawn from domain, weighted by pheromone
// strength under params (with η ≡ 1, only Alpha matters). It reports
// (0, false, nil) for an empty domain and returns the sole value of a
// singleton domain without consuming randomness. A domain whose weights
// all collapse to zero is a *WeightDegeneracyError, not a silent
// fallback.
func (s *ValueSelector) Select(variable *csp.Variable, domain []int, pheromones *pheromone.Matrix, params Parameters) (int, bool, error) {
	switch len(domain) {
	case 0:
		return 0, false, nil
	case 1:
		return domain[0], true, nil
	}

	weights := make([]float64, len(domain))
	sum := 0.0
	for i, value := range domain {
		tau := pheromones.Get(variable, value)
		weight := math.Pow(tau, params.Alpha) * math.Pow(1.0, params.Beta)
		weights[i] = weight
		sum += weight
	}
	if sum <= 0 {
		return 0, false, &WeightDegeneracyError{Variable: variable, DomainSize: len(domain)}
	}

	target := s.rng.Float64() * sum
	cumulative := 0.0
	for i, weight := range weights {
		cumulative += weight
		if target <= cumulative {
			return domain[i], true, nil
		}
	}
	// Rounding corner: cumulative fell just short of target. Return the
	// last candidate in iteration order.
	return domain[len(domain)-1], true, nil
}
