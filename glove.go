package glove

import (
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"github.com/tokenvec/glove/corpus"
)

// ErrNotFitted is returned by operations that need a fitted model.
var ErrNotFitted = errors.New("glove: model has not been fitted or loaded")

// Model ties the pipeline together: corpus construction,
// co-occurrence building, training, persistence, and queries.
type Model struct {
	cfg       Config
	window    int
	logger    *slog.Logger
	normalize func(string) string
	rng       *rand.Rand

	corpus  *corpus.Corpus
	cooccur *CooccurrenceMatrix
	space   *VectorSpace
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithLogger sets the logger used for progress reporting.
func WithLogger(l *slog.Logger) ModelOption {
	return func(m *Model) { m.logger = l }
}

// WithWindow sets the symmetric context window used by Fit.
func WithWindow(window int) ModelOption {
	return func(m *Model) { m.window = window }
}

// WithNormalizer sets the token normalizer used by Fit and by query
// word resolution.
func WithNormalizer(f func(string) string) ModelOption {
	return func(m *Model) { m.normalize = f }
}

// NewModel validates cfg and returns an unfitted model.
func NewModel(cfg Config, opts ...ModelOption) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m := &Model{
		cfg:       cfg,
		window:    corpus.DefaultWindow,
		logger:    slog.Default(),
		normalize: corpus.Fold,
		rng:       rand.New(rand.NewSource(seed)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Fit builds the vocabulary, pair observations, and co-occurrence
// matrix from text, and allocates freshly initialized vectors and
// biases. It does not train; call Train afterwards.
func (m *Model) Fit(text string) error {
	c := corpus.Build(text, corpus.Options{Window: m.window, Normalizer: m.normalize})

	matrix, err := BuildCooccurrence(c.Pairs, c.Size(), m.cfg.Threads)
	if err != nil {
		return err
	}

	space, err := NewVectorSpace(c.Size(), m.cfg.NumComponents, m.rng)
	if err != nil {
		return err
	}

	m.corpus = c
	m.cooccur = matrix
	m.space = space

	m.logger.Debug("model fitted",
		"vocabulary", c.Size(),
		"pairs", len(c.Pairs),
		"nonzeros", matrix.NonZeros())
	return nil
}

// Train runs the configured number of epochs over the fitted
// co-occurrence matrix, updating vectors and biases in place.
func (m *Model) Train() error {
	if m.space == nil || m.cooccur == nil {
		return ErrNotFitted
	}
	trainer, err := NewTrainer(m.cfg, m.logger)
	if err != nil {
		return err
	}
	return trainer.Train(m.space, m.cooccur)
}

// MostSimilar returns the num tokens closest to word by cosine
// similarity. Unknown words and unfitted models yield empty results.
func (m *Model) MostSimilar(word string, num int) []WordSimilarity {
	if m.space == nil {
		return nil
	}
	return NewQueryEngine(m.space, m.corpus, m.normalize).MostSimilar(word, num)
}

// AnalogyWords answers an analogy query over the trained space; see
// QueryEngine.AnalogyWords.
func (m *Model) AnalogyWords(word1, word2, target string, num int, accuracy float64) []WordSimilarity {
	if m.space == nil {
		return nil
	}
	return NewQueryEngine(m.space, m.corpus, m.normalize).AnalogyWords(word1, word2, target, num, accuracy)
}

// Save writes the four model artifacts: the corpus blob, the dense
// co-occurrence cells, the word-vector cells, and the bias cells.
func (m *Model) Save(corpusPath, cooccurPath, vectorPath, biasPath string) error {
	if m.space == nil || m.cooccur == nil {
		return ErrNotFitted
	}
	if err := saveCorpus(corpusPath, m.corpus); err != nil {
		return err
	}
	if err := saveMatrix(cooccurPath, m.cooccur); err != nil {
		return err
	}
	if err := saveVectors(vectorPath, m.space); err != nil {
		return err
	}
	return saveBiases(biasPath, m.space)
}

// Load reconstructs a model from the four artifacts written by Save.
// The vocabulary is loaded first; every other payload must match the
// shapes it implies or loading aborts with an IntegrityError. AdaGrad
// state is not persisted, so a subsequent Train restarts the adaptive
// schedule.
func (m *Model) Load(corpusPath, cooccurPath, vectorPath, biasPath string) error {
	c, err := loadCorpus(corpusPath)
	if err != nil {
		return err
	}

	matrix, err := loadMatrix(cooccurPath, c.Size())
	if err != nil {
		return err
	}

	space, err := NewVectorSpace(c.Size(), m.cfg.NumComponents, m.rng)
	if err != nil {
		return err
	}
	if err := loadVectors(vectorPath, space); err != nil {
		return err
	}
	if err := loadBiases(biasPath, space); err != nil {
		return err
	}
	space.resetAccumulators()

	m.corpus = c
	m.cooccur = matrix
	m.space = space

	m.logger.Debug("model loaded", "vocabulary", c.Size(), "nonzeros", matrix.NonZeros())
	return nil
}

// Visualize is part of the public surface but has never been
// implemented.
func (m *Model) Visualize() error {
	return ErrNotImplemented
}

// Vocabulary returns the fitted corpus, nil before Fit or Load.
func (m *Model) Vocabulary() *corpus.Corpus {
	return m.corpus
}
