package glove

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVectorSpace(t *testing.T) {
	s, err := NewVectorSpace(5, 10, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	assert.Equal(t, 5, s.Size())
	assert.Equal(t, 10, s.Dims())

	bound := 0.5 / 10.0
	for i := 0; i < s.Size(); i++ {
		require.Len(t, s.Vector(i), 10)
		for _, v := range s.Vector(i) {
			assert.LessOrEqual(t, v, bound)
			assert.GreaterOrEqual(t, v, -bound)
		}
		assert.Equal(t, 0.0, s.Bias(i))
		assert.Equal(t, accumInit, s.GradSqBias(i))
		for _, g := range s.GradSqVector(i) {
			assert.Equal(t, accumInit, g)
		}
	}
}

func TestNewVectorSpaceRejectsBadDims(t *testing.T) {
	_, err := NewVectorSpace(5, 0, rand.New(rand.NewSource(1)))

	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
}

func TestVectorSpaceDot(t *testing.T) {
	s, err := NewVectorSpace(2, 3, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	copy(s.Vector(0), []float64{1, 2, 3})
	copy(s.Vector(1), []float64{4, 5, 6})

	assert.InDelta(t, 32.0, s.Dot(0, 1), 1e-12)
	assert.InDelta(t, 14.0, s.Dot(0, 0), 1e-12)
}

func TestResetAccumulators(t *testing.T) {
	s, err := NewVectorSpace(2, 2, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	s.GradSqVector(0)[1] = 42
	s.SetGradSqBias(1, 7)

	s.resetAccumulators()

	assert.Equal(t, accumInit, s.GradSqVector(0)[1])
	assert.Equal(t, accumInit, s.GradSqBias(1))
}
