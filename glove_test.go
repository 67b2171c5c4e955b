package glove

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModelRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Threads = 0

	_, err := NewModel(cfg)
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
}

func TestModelEndToEnd(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumComponents = 8
	cfg.Epochs = 10
	cfg.Seed = 17
	cfg.Deterministic = true

	m, err := NewModel(cfg)
	require.NoError(t, err)
	require.NoError(t, m.Fit(trainCorpus))
	require.NoError(t, m.Train())

	results := m.MostSimilar("cat", 3)
	require.Len(t, results, 3)
	for _, ws := range results {
		assert.NotEqual(t, "cat", ws.Word)
	}

	analogies := m.AnalogyWords("cat", "dog", "mat", 3, 0)
	assert.NotEmpty(t, analogies)
}

func TestModelQueriesBeforeFit(t *testing.T) {
	m, err := NewModel(DefaultConfig())
	require.NoError(t, err)

	assert.Empty(t, m.MostSimilar("anything", 5))
	assert.Empty(t, m.AnalogyWords("a", "b", "c", 5, 0.01))
	assert.ErrorIs(t, m.Train(), ErrNotFitted)
	assert.ErrorIs(t, m.Save("a", "b", "c", "d"), ErrNotFitted)
}

func TestModelVisualizeNotImplemented(t *testing.T) {
	m, err := NewModel(DefaultConfig())
	require.NoError(t, err)

	assert.ErrorIs(t, m.Visualize(), ErrNotImplemented)
}

func TestModelDeterministicRunsMatch(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumComponents = 6
	cfg.Epochs = 4
	cfg.Seed = 23
	cfg.Deterministic = true

	run := func() *Model {
		m, err := NewModel(cfg)
		require.NoError(t, err)
		require.NoError(t, m.Fit(trainCorpus))
		require.NoError(t, m.Train())
		return m
	}

	m1 := run()
	m2 := run()

	require.Equal(t, m1.space.Size(), m2.space.Size())
	for i := 0; i < m1.space.Size(); i++ {
		assert.Equal(t, m1.space.Vector(i), m2.space.Vector(i), "vector row %d", i)
		assert.Equal(t, m1.space.Bias(i), m2.space.Bias(i), "bias %d", i)
	}
}

func TestModelVocabulary(t *testing.T) {
	m, err := NewModel(DefaultConfig())
	require.NoError(t, err)
	assert.Nil(t, m.Vocabulary())

	require.NoError(t, m.Fit("a b c"))
	require.NotNil(t, m.Vocabulary())
	assert.Equal(t, 3, m.Vocabulary().Size())
}
