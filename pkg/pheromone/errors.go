package pheromone

import "errors"

var (
	// ErrNonPositiveTauMax indicates Initialize was called with τ_max <= 0.
	ErrNonPositiveTauMax = errors.New("pheromone: tauMax must be positive")
	// ErrInvalidEvaporationRate indicates Evaporate was called with ρ outside [0, 1].
	ErrInvalidEvaporationRate = errors.New("pheromone: evaporation rate must be in [0, 1]")
	// ErrNonPositiveDeposit indicates Deposit or DepositMultiple computed a Δτ <= 0.
	ErrNonPositiveDeposit = errors.New("pheromone: deposit amount must be positive")
	// ErrInvalidClampBounds indicates Clamp was called with tauMin > tauMax or tauMin < 0.
	ErrInvalidClampBounds = errors.New("pheromone: clamp bounds must satisfy 0 <= tauMin <= tauMax")
)
