// Package glove trains GloVe word embeddings.
//
// The package builds a distance-weighted co-occurrence matrix from
// token-pair observations, fits word vectors and biases to the log
// co-occurrence counts with AdaGrad, and supports distance and analogy
// queries on the trained embeddings.
//
// glove uses gonum's BLAS interface for the dense vector arithmetic in
// training. Binding to a C BLAS library can give nice performance
// improvements; build with the netlib tag to use gonum's netlib
// binding:
//
//	CGO_LDFLAGS="-L/path/to/OpenBLAS -lopenblas" go build -tags netlib
//
// or Accelerate on macOS:
//
//	CGO_LDFLAGS="-framework Accelerate" go build -tags netlib
package glove
