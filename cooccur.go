package glove

import (
	"fmt"
	"sync"

	"github.com/tokenvec/glove/corpus"
)

// BuildCooccurrence builds the symmetric co-occurrence matrix from
// token-pair observations. Every observation (a, b, distance) adds
// 1/distance to cells (a, b) and (b, a).
//
// Observations are split into threads contiguous chunks. Each worker
// accumulates into a private partial matrix; the partials are summed
// into the result after all workers have joined, so no cell is ever
// written concurrently.
//
// Token ids come from the same vocabulary the matrix is sized for; an
// id outside [0, vocabSize) aborts the build.
func BuildCooccurrence(pairs []corpus.Pair, vocabSize, threads int) (*CooccurrenceMatrix, error) {
	if threads <= 0 {
		return nil, &ConfigError{Field: "threads", Reason: "must be > 0"}
	}

	partials := make([]*CooccurrenceMatrix, 0, threads)
	errs := make(chan error, threads)
	var wg sync.WaitGroup

	chunk := (len(pairs) + threads - 1) / threads
	for start := 0; start < len(pairs); start += chunk {
		end := start + chunk
		if end > len(pairs) {
			end = len(pairs)
		}

		partial := NewCooccurrenceMatrix(vocabSize)
		partials = append(partials, partial)

		wg.Add(1)
		go func(obs []corpus.Pair, partial *CooccurrenceMatrix) {
			defer wg.Done()
			for _, p := range obs {
				if err := checkPair(p, vocabSize); err != nil {
					errs <- err
					return
				}
				w := 1.0 / float64(p.Distance)
				partial.Add(p.A, p.B, w)
				partial.Add(p.B, p.A, w)
			}
		}(pairs[start:end], partial)
	}

	wg.Wait()
	close(errs)
	if err := <-errs; err != nil {
		return nil, err
	}

	matrix := NewCooccurrenceMatrix(vocabSize)
	for _, partial := range partials {
		matrix.accumulate(partial)
	}
	return matrix, nil
}

func checkPair(p corpus.Pair, vocabSize int) error {
	if p.A < 0 || p.A >= vocabSize || p.B < 0 || p.B >= vocabSize {
		return fmt.Errorf("glove: pair (%d, %d) outside vocabulary of size %d", p.A, p.B, vocabSize)
	}
	if p.Distance < 1 {
		return fmt.Errorf("glove: pair (%d, %d) has distance %d, want >= 1", p.A, p.B, p.Distance)
	}
	return nil
}
