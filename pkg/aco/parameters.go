package aco

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

// Parameters holds the tunable knobs of the colony: pheromone importance
// (Alpha), heuristic importance (Beta), evaporation rate (Rho), the
// pheromone bounds (TauMin, TauMax), and colony size (NumberOfAnts). A
// Parameters value is immutable and always valid once constructed
// successfully — validation happens once, at the boundary.
type Parameters struct {
	Alpha        float64
	Beta         float64
	Rho          float64
	TauMin       float64
	TauMax       float64
	NumberOfAnts int
}

// NewParameters validates its arguments and returns a Parameters value.
func NewParameters(alpha, beta, rho, tauMin, tauMax float64, numberOfAnts int) (Parameters, error) {
	p := Parameters{
		Alpha:        alpha,
		Beta:         beta,
		Rho:          rho,
		TauMin:       tauMin,
		TauMax:       tauMax,
		NumberOfAnts: numberOfAnts,
	}
	if err := p.validate(); err != nil {
		return Parameters{}, err
	}
	return p, nil
}

func (p Parameters) validate() error {
	if p.Alpha < 0 || p.Beta < 0 {
		return fmt.Errorf("%w: alpha and beta must be non-negative (alpha=%v, beta=%v)", ErrInvalidParameters, p.Alpha, p.Beta)
	}
	if p.Rho < 0 || p.Rho > 1 {
		return fmt.Errorf("%w: rho must be in [0, 1] (rho=%v)", ErrInvalidParameters, p.Rho)
	}
	if p.TauMin <= 0 || p.TauMax <= 0 {
		return fmt.Errorf("%w: tauMin and tauMax must be positive (tauMin=%v, tauMax=%v)", ErrInvalidParameters, p.TauMin, p.TauMax)
	}
	if p.TauMin >= p.TauMax {
		return fmt.Errorf("%w: tauMin must be less than tauMax (tauMin=%v, tauMax=%v)", ErrInvalidParameters, p.TauMin, p.TauMax)
	}
	if p.NumberOfAnts <= 0 {
		return fmt.Errorf("%w: numberOfAnts must be positive (numberOfAnts=%v)", ErrInvalidParameters, p.NumberOfAnts)
	}
	return nil
}

// DefaultParameters returns the reference parameter set for pure-pheromone
// CSP mode: strong pheromone weighting, no heuristic bias, slow
// evaporation, a standard colony size.
func DefaultParameters() Parameters {
	p, err := NewParameters(2.0, 0.0, 0.01, 0.01, 10.0, 30)
	if err != nil {
		panic(err) // the defaults are valid by construction
	}
	return p
}

// rawParameters mirrors Parameters with mapstructure tags, keeping the
// decoding schema separate from the public, tag-free struct.
type rawParameters struct {
	Alpha        float64 `mapstructure:"alpha"`
	Beta         float64 `mapstructure:"beta"`
	Rho          float64 `mapstructure:"rho"`
	TauMin       float64 `mapstructure:"tauMin"`
	TauMax       float64 `mapstructure:"tauMax"`
	NumberOfAnts int     `mapstructure:"numberOfAnts"`
}

// ParametersFromMap decodes a loosely-typed configuration blob — the
// shape a caller gets back from unmarshaling YAML, JSON, or flags into a
// map[string]any — into a validated Parameters value. Decoding and
// validation are two separate steps: a well-formed-but-out-of-range
// input still fails with ErrInvalidParameters, not a decode error.
func ParametersFromMap(raw map[string]any) (Parameters, error) {
	var decoded rawParameters
	if err := mapstructure.Decode(raw, &decoded); err != nil {
		return Parameters{}, fmt.Errorf("%w: %v", ErrInvalidParameters, err)
	}
	return NewParameters(decoded.Alpha, decoded.Beta, decoded.Rho, decoded.TauMin, decoded.TauMax, decoded.NumberOfAnts)
}

// String renders the parameter set for quick human-readable logging.
func (p Parameters) String() string {
	return fmt.Sprintf("Parameters{alpha=%.2f, beta=%.2f, rho=%.3f, tau=[%.3f,%.2f], ants=%d}",
		p.Alpha, p.Beta, p.Rho, p.TauMin, p.TauMax, p.NumberOfAnts)
}

// LogFields renders the parameter set as structured zap fields, so an
// embedding program's logger can attach the whole set to one log line
// instead of string-formatting it by hand.
func (p Parameters) LogFields() []zap.Field {
	return []zap.Field{
		zap.Float64("alpha", p.Alpha),
		zap.Float64("beta", p.Beta),
		zap.Float64("rho", p.Rho),
		zap.Float64("tau_min", p.TauMin),
		zap.Float64("tau_max", p.TauMax),
		zap.Int("number_of_ants", p.NumberOfAnts),
	}
}
