package glove

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"sync"
	"time"
)

// Trainer fits a VectorSpace to a co-occurrence matrix by weighted
// least squares on log co-occurrence counts, using AdaGrad updates
// over shuffled nonzero entries.
type Trainer struct {
	cfg    Config
	rng    *rand.Rand
	logger *slog.Logger
}

// NewTrainer validates the configuration and returns a trainer. A nil
// logger means slog.Default.
func NewTrainer(cfg Config, logger *slog.Logger) (*Trainer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Trainer{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
	}, nil
}

// Train runs cfg.Epochs passes over the nonzero entries of matrix,
// mutating space in place. Each epoch shuffles the entry list,
// partitions it into contiguous chunks across the workers, and joins
// at a barrier before the next epoch starts.
//
// In the default mode workers update shared rows lock-free: two
// chunks can carry entries with a common row id, and their updates
// interleave. Conflicts are rare for realistic vocabularies and wash
// out over epochs, but results differ between runs. Deterministic
// mode runs a single worker so the seeded shuffle fully fixes the
// update order.
func (t *Trainer) Train(space *VectorSpace, matrix *CooccurrenceMatrix) error {
	if space.Size() != matrix.Size() {
		return fmt.Errorf("glove: vector space has %d rows, co-occurrence matrix has %d", space.Size(), matrix.Size())
	}

	entries := matrix.Entries()
	workers := t.cfg.workers()

	for epoch := 1; epoch <= t.cfg.Epochs; epoch++ {
		start := time.Now()

		t.rng.Shuffle(len(entries), func(i, j int) {
			entries[i], entries[j] = entries[j], entries[i]
		})

		cost, err := t.runEpoch(space, matrix, entries, workers)
		if err != nil {
			return err
		}

		t.logger.Info("epoch complete",
			"epoch", epoch,
			"epochs", t.cfg.Epochs,
			"cost", cost,
			"entries", len(entries),
			"duration", time.Since(start))
	}

	return nil
}

// runEpoch fans the shuffled entries out over workers and blocks
// until every worker finishes. A worker panic aborts the run with an
// error instead of being swallowed.
func (t *Trainer) runEpoch(space *VectorSpace, matrix *CooccurrenceMatrix, entries []CoocEntry, workers int) (float64, error) {
	chunk := (len(entries) + workers - 1) / workers
	if chunk == 0 {
		return 0, nil
	}

	var wg sync.WaitGroup
	costs := make(chan float64, workers)
	errs := make(chan error, workers)

	for start := 0; start < len(entries); start += chunk {
		end := start + chunk
		if end > len(entries) {
			end = len(entries)
		}

		wg.Add(1)
		go func(part []CoocEntry) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					errs <- fmt.Errorf("glove: training worker failed: %v", r)
				}
			}()
			costs <- t.updateChunk(space, matrix, part)
		}(entries[start:end])
	}

	wg.Wait()
	close(costs)
	close(errs)

	if err := <-errs; err != nil {
		return 0, err
	}

	total := 0.0
	for c := range costs {
		total += c
	}
	return total, nil
}

// updateChunk applies one AdaGrad update per entry and returns the
// chunk's summed weighted squared cost.
func (t *Trainer) updateChunk(space *VectorSpace, matrix *CooccurrenceMatrix, part []CoocEntry) float64 {
	localCost := 0.0

	for _, e := range part {
		w := matrix.Weight(e.I, e.J)
		f := weightingFactor(w, t.cfg.MaxCount, t.cfg.Alpha)

		prediction := space.Dot(e.I, e.J) + space.Bias(e.I) + space.Bias(e.J)
		cost := prediction - math.Log(w)
		weightedCost := f * cost
		// The reported cost is the objective value f(w)·cost²,
		// not weightedCost² (which would double-count f).
		localCost += weightedCost * cost

		vi := space.Vector(e.I)
		vj := space.Vector(e.J)
		accI := space.GradSqVector(e.I)
		accJ := space.GradSqVector(e.J)

		for k := range vi {
			gi := clip(weightedCost * vj[k])
			gj := clip(weightedCost * vi[k])

			accI[k] += gi * gi
			vi[k] -= t.cfg.LearningRate * gi / math.Sqrt(accI[k])

			accJ[k] += gj * gj
			vj[k] -= t.cfg.LearningRate * gj / math.Sqrt(accJ[k])
		}

		g := clip(weightedCost)
		space.SetGradSqBias(e.I, space.GradSqBias(e.I)+g*g)
		space.SetBias(e.I, space.Bias(e.I)-t.cfg.LearningRate*g/math.Sqrt(space.GradSqBias(e.I)))
		space.SetGradSqBias(e.J, space.GradSqBias(e.J)+g*g)
		space.SetBias(e.J, space.Bias(e.J)-t.cfg.LearningRate*g/math.Sqrt(space.GradSqBias(e.J)))
	}

	return localCost
}

// weightingFactor is the GloVe weighting function f(w): a concave
// power curve below maxCount, capped at 1 above it.
func weightingFactor(w, maxCount, alpha float64) float64 {
	if w < maxCount {
		return math.Pow(w/maxCount, alpha)
	}
	return 1
}

func clip(g float64) float64 {
	if g > gradClip {
		return gradClip
	}
	if g < -gradClip {
		return -gradClip
	}
	return g
}
