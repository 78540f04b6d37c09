package calc

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	operands := [][2]float64{
		{3, 4},
		{-2.5, 0.5},
		{1e10, -3e-5},
		{0, 7},
		{123.456, 789.012},
	}

	for _, ab := range operands {
		a, b := ab[0], ab[1]

		v, err := Apply(Add, a, b)
		require.NoError(t, err)
		assert.InDelta(t, a+b, v, 1e-9)

		v, err = Apply(Subtract, a, b)
		require.NoError(t, err)
		assert.InDelta(t, a-b, v, 1e-9)

		v, err = Apply(Multiply, a, b)
		require.NoError(t, err)
		assert.InDelta(t, a*b, v, 1e-9)

		v, err = Apply(Divide, a, b)
		require.NoError(t, err)
		assert.InDelta(t, a/b, v, 1e-9)
	}
}

func TestApply_DivisionByZero(t *testing.T) {
	for _, b := range []float64{0, math.Copysign(0, -1)} {
		for _, a := range []float64{0, 10, -3.5, math.MaxFloat64} {
			v, err := Apply(Divide, a, b)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrDivisionByZero))
			assert.False(t, math.IsInf(v, 0))
			assert.False(t, math.IsNaN(v))
		}
	}
}

func TestApply_SmallestDivisorIsNotZero(t *testing.T) {
	v, err := Apply(Divide, 0, math.SmallestNonzeroFloat64)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestApply_Overflow(t *testing.T) {
	v, err := Apply(Multiply, math.MaxFloat64, 10)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))
}

func TestApply_InvalidOperationPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = Apply(Operation(4), 1, 2)
	})
}
