package aco

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewParametersAcceptsValidRanges(t *testing.T) {
	p, err := NewParameters(2.0, 0.0, 0.01, 0.01, 10.0, 30)
	require.NoError(t, err)
	require.Equal(t, 30, p.NumberOfAnts)
}

func TestNewParametersRejectsNegativeAlphaOrBeta(t *testing.T) {
	_, err := NewParameters(-1, 0, 0.1, 0.1, 1, 1)
	require.ErrorIs(t, err, ErrInvalidParameters)

	_, err = NewParameters(1, -1, 0.1, 0.1, 1, 1)
	require.ErrorIs(t, err, ErrInvalidParameters)
}

func TestNewParametersRejectsOutOfRangeRho(t *testing.T) {
	_, err := NewParameters(1, 0, -0.01, 0.1, 1, 1)
	require.ErrorIs(t, err, ErrInvalidParameters)

	_, err = NewParameters(1, 0, 1.01, 0.1, 1, 1)
	require.ErrorIs(t, err, ErrInvalidParameters)
}

func TestNewParametersRejectsNonPositiveOrCrossedTauBounds(t *testing.T) {
	_, err := NewParameters(1, 0, 0.1, 0, 1, 1)
	require.ErrorIs(t, err, ErrInvalidParameters)

	_, err = NewParameters(1, 0, 0.1, 1, 1, 1)
	require.ErrorIs(t, err, ErrInvalidParameters)

	_, err = NewParameters(1, 0, 0.1, 2, 1, 1)
	require.ErrorIs(t, err, ErrInvalidParameters)
}

func TestNewParametersRejectsNonPositiveAntCount(t *testing.T) {
	_, err := NewParameters(1, 0, 0.1, 0.1, 1, 0)
	require.ErrorIs(t, err, ErrInvalidParameters)
}

func TestDefaultParametersIsValid(t *testing.T) {
	p := DefaultParameters()
	require.NoError(t, p.validate())
}

func TestParametersFromMapDecodesAndValidates(t *testing.T) {
	raw := map[string]any{
		"alpha":        2.0,
		"beta":         0.0,
		"rho":          0.05,
		"tauMin":       0.1,
		"tauMax":       5.0,
		"numberOfAnts": 10,
	}
	p, err := ParametersFromMap(raw)
	require.NoError(t, err)
	require.Equal(t, 10, p.NumberOfAnts)
	require.InDelta(t, 5.0, p.TauMax, 1e-9)
}

func TestParametersFromMapRejectsInvalidValues(t *testing.T) {
	raw := map[string]any{
		"alpha":        2.0,
		"beta":         0.0,
		"rho":          0.05,
		"tauMin":       5.0,
		"tauMax":       1.0,
		"numberOfAnts": 10,
	}
	_, err := ParametersFromMap(raw)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidParameters))
}

func TestParametersLogFieldsCoverEveryField(t *testing.T) {
	p := DefaultParameters()
	fields := p.LogFields()
	require.Len(t, fields, 6)
}
