package glove

import (
	"math/rand"

	"gonum.org/v1/gonum/blas/blas64"
)

// accumInit is the starting value of the AdaGrad accumulators. It must
// be positive so the first update never divides by zero.
const accumInit = 1.0

// VectorSpace holds all mutable training state: the V×D word-vector
// matrix, the bias vector, and the AdaGrad accumulators for both. It
// is allocated once per fit and mutated in place by the trainer.
type VectorSpace struct {
	vectors [][]float64
	biases  []float64

	gradSqVec  [][]float64
	gradSqBias []float64

	dims int
}

// NewVectorSpace allocates and initializes the training state for a
// vocabulary of size words and dims components. Vector components are
// drawn uniformly from ±0.5/dims, biases start at zero, and the
// accumulators start at accumInit.
func NewVectorSpace(size, dims int, rng *rand.Rand) (*VectorSpace, error) {
	if dims <= 0 {
		return nil, &ConfigError{Field: "num_components", Reason: "must be > 0"}
	}
	if size < 0 {
		return nil, &ConfigError{Field: "vocabulary size", Reason: "must be >= 0"}
	}

	s := &VectorSpace{
		vectors:    make([][]float64, size),
		biases:     make([]float64, size),
		gradSqVec:  make([][]float64, size),
		gradSqBias: make([]float64, size),
		dims:       dims,
	}

	initRange := 0.5 / float64(dims)
	for i := range s.vectors {
		s.vectors[i] = make([]float64, dims)
		s.gradSqVec[i] = make([]float64, dims)
		for k := 0; k < dims; k++ {
			s.vectors[i][k] = (rng.Float64() - 0.5) * 2 * initRange
			s.gradSqVec[i][k] = accumInit
		}
		s.gradSqBias[i] = accumInit
	}

	return s, nil
}

// Size returns the vocabulary size V.
func (s *VectorSpace) Size() int {
	return len(s.vectors)
}

// Dims returns the embedding dimensionality D.
func (s *VectorSpace) Dims() int {
	return s.dims
}

// Vector returns the mutable vector row for a token id.
func (s *VectorSpace) Vector(id int) []float64 {
	return s.vectors[id]
}

// Bias returns the bias for a token id.
func (s *VectorSpace) Bias(id int) float64 {
	return s.biases[id]
}

// SetBias sets the bias for a token id.
func (s *VectorSpace) SetBias(id int, bias float64) {
	s.biases[id] = bias
}

// GradSqVector returns the mutable AdaGrad accumulator row for a
// token id's vector.
func (s *VectorSpace) GradSqVector(id int) []float64 {
	return s.gradSqVec[id]
}

// GradSqBias returns the AdaGrad accumulator for a token id's bias.
func (s *VectorSpace) GradSqBias(id int) float64 {
	return s.gradSqBias[id]
}

// SetGradSqBias sets the AdaGrad accumulator for a token id's bias.
func (s *VectorSpace) SetGradSqBias(id int, v float64) {
	s.gradSqBias[id] = v
}

// Dot returns the dot product of the vectors for two token ids.
func (s *VectorSpace) Dot(i, j int) float64 {
	return blas64.Dot(
		blas64.Vector{N: s.dims, Data: s.vectors[i], Inc: 1},
		blas64.Vector{N: s.dims, Data: s.vectors[j], Inc: 1},
	)
}

// resetAccumulators restores the AdaGrad state to its initial value.
// Used after loading persisted vectors, which do not carry optimizer
// state.
func (s *VectorSpace) resetAccumulators() {
	for i := range s.gradSqVec {
		for k := range s.gradSqVec[i] {
			s.gradSqVec[i][k] = accumInit
		}
		s.gradSqBias[i] = accumInit
	}
}
