package pheromone

import "github.com/gitrdm/antco/pkg/csp"

// trailKey identifies one (variable, value) trail. Variable identity is
// by pointer (csp.Variable's own identity rule), so trailKey is directly
// comparable and usable as a map key without a custom Equal.
type trailKey struct {
	variable *csp.Variable
	value    int
}

// Matrix is a flat, contiguous store of per-(variable, value) trail
// strengths. It is built once per colony with Initialize and mutated in
// place for the colony's lifetime by Evaporate, Deposit,
// DepositMultiple, and Clamp — never reallocated, so the whole surface is
// safe for a hot inner loop that runs once per cycle over every trail.
type Matrix struct {
	trails []float64
	index  map[trailKey]int
}

// Initialize builds a Matrix with one entry per (v, x) for every
// variable v in problem and every value x in v's domain, all initialized
// to tauMax. tauMax must be positive.
func Initialize(problem *csp.Problem, tauMax float64) (*Matrix, error) {
	if tauMax <= 0 {
		return nil, ErrNonPositiveTauMax
	}

	index := make(map[trailKey]int)
	total := 0
	for _, v := range problem.Variables() {
		for _, value := range v.Domain() {
			index[trailKey{variable: v, value: value}] = total
			total++
		}
	}

	trails := make([]float64, total)
	for i := range trails {
		trails[i] = tauMax
	}

	return &Matrix{trails: trails, index: index}, nil
}

// Get returns the trail strength τ(v, x), or 0 defensively if (v, x) is
// not a registered trail.
func (m *Matrix) Get(v *csp.Variable, value int) float64 {
	i, ok := m.index[trailKey{variable: v, value: value}]
	if !ok {
		return 0
	}
	return m.trails[i]
}

// Evaporate multiplies every trail by (1 - rho), in place. rho must be
// in [0, 1].
func (m *Matrix) Evaporate(rho float64) error {
	if rho < 0 || rho > 1 {
		return ErrInvalidEvaporationRate
	}
	factor := 1 - rho
	for i := range m.trails {
		m.trails[i] *= factor
	}
	return nil
}

// Deposit adds delta to the trail of every (v, assignment[v]) pair for
// every variable v assigned in assignment. delta must be positive.
// Variables not present in assignment are skipped, not an error.
func (m *Matrix) Deposit(assignment *csp.Assignment, delta float64) error {
	if delta <= 0 {
		return ErrNonPositiveDeposit
	}
	m.depositUnchecked(assignment, delta)
	return nil
}

// DepositMultiple applies one deposit per assignment in assignments, with
// the amount for each computed independently by deltaOf. Contributions
// from different assignments are additive: this is how several
// best-of-cycle assignments each reinforce their own trails within a
// single update. Each computed delta must be positive.
func (m *Matrix) DepositMultiple(assignments []*csp.Assignment, deltaOf func(*csp.Assignment) float64) error {
	for _, a := range assignments {
		delta := deltaOf(a)
		if delta <= 0 {
			return ErrNonPositiveDeposit
		}
		m.depositUnchecked(a, delta)
	}
	return nil
}

func (m *Matrix) depositUnchecked(assignment *csp.Assignment, delta float64) {
	for _, v := range assignment.AssignedVariables() {
		value, _ := assignment.Get(v)
		if i, ok := m.index[trailKey{variable: v, value: value}]; ok {
			m.trails[i] += delta
		}
	}
}

// Clamp replaces every trail with min(tauMax, max(tauMin, τ)), enforcing
// the MMAS bounds. Requires 0 <= tauMin <= tauMax.
func (m *Matrix) Clamp(tauMin, tauMax float64) error {
	if tauMin < 0 || tauMin > tauMax {
		return ErrInvalidClampBounds
	}
	for i, tau := range m.trails {
		switch {
		case tau < tauMin:
			m.trails[i] = tauMin
		case tau > tauMax:
			m.trails[i] = tauMax
		}
	}
	return nil
}

// TrailCount returns the total number of (variable, value) trails held
// by the matrix — Σ|domain(v)| over every variable of the problem it was
// initialized from.
func (m *Matrix) TrailCount() int { return len(m.trails) }
