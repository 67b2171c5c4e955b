package glove

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokenvec/glove/corpus"
)

func queryFixture(t *testing.T) (*QueryEngine, *corpus.Corpus) {
	t.Helper()

	c := corpus.Build("sun moon star rock", corpus.Options{})
	space, err := NewVectorSpace(c.Size(), 2, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	copy(space.Vector(0), []float64{1, 0})     // sun
	copy(space.Vector(1), []float64{0.9, 0.1}) // moon
	copy(space.Vector(2), []float64{0, 1})     // star
	copy(space.Vector(3), []float64{-1, 0})    // rock

	return NewQueryEngine(space, c, nil), c
}

func TestCosineSelf(t *testing.T) {
	v := []float64{0.3, -1.2, 4.5}
	assert.InDelta(t, 1.0, Cosine(v, v), 1e-6)
}

func TestCosineDegenerate(t *testing.T) {
	assert.Equal(t, 0.0, Cosine(nil, []float64{1, 2}))
	assert.Equal(t, 0.0, Cosine([]float64{1, 2}, nil))
	assert.Equal(t, 0.0, Cosine([]float64{0, 0}, []float64{1, 2}))
	assert.Equal(t, 0.0, Cosine([]float64{1}, []float64{1, 2}))
}

func TestMostSimilarOrdering(t *testing.T) {
	q, _ := queryFixture(t)

	results := q.MostSimilar("sun", 3)
	require.Len(t, results, 3)

	assert.Equal(t, "moon", results[0].Word)
	assert.Equal(t, "star", results[1].Word)
	assert.Equal(t, "rock", results[2].Word)

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Similarity, results[i].Similarity)
	}
}

func TestMostSimilarExcludesSelf(t *testing.T) {
	q, _ := queryFixture(t)

	for _, word := range []string{"sun", "moon", "star", "rock"} {
		for _, ws := range q.MostSimilar(word, 10) {
			assert.NotEqual(t, word, ws.Word)
		}
	}
}

func TestMostSimilarUnknownWord(t *testing.T) {
	q, _ := queryFixture(t)

	assert.Empty(t, q.MostSimilar("comet", 5))
}

func TestMostSimilarLimit(t *testing.T) {
	q, _ := queryFixture(t)

	assert.Len(t, q.MostSimilar("sun", 1), 1)
	assert.Len(t, q.MostSimilar("sun", 100), 3)
}

func TestQueriesNonPositiveLimit(t *testing.T) {
	q, _ := queryFixture(t)

	assert.Empty(t, q.MostSimilar("sun", 0))
	assert.Empty(t, q.MostSimilar("sun", -1))
	assert.Empty(t, q.AnalogyWords("sun", "moon", "star", 0, 0.01))
	assert.Empty(t, q.AnalogyWords("sun", "moon", "star", -3, 0.01))
}

func TestMostSimilarNormalizesQuery(t *testing.T) {
	q, _ := queryFixture(t)

	assert.NotEmpty(t, q.MostSimilar("SUN", 2))
}

func TestAnalogyWordsExclusionBand(t *testing.T) {
	q, _ := queryFixture(t)

	// baseline = cosine(sun, moon) ≈ 0.994. With a 0.1 band, star's
	// similarity to itself (1.0) falls inside the band and star is
	// excluded; everything further from the baseline survives.
	results := q.AnalogyWords("sun", "moon", "star", 10, 0.1)
	require.NotEmpty(t, results)
	for _, ws := range results {
		assert.NotEqual(t, "star", ws.Word)
	}
	assert.Equal(t, "moon", results[0].Word)
}

func TestAnalogyWordsZeroAccuracyKeepsAll(t *testing.T) {
	q, _ := queryFixture(t)

	results := q.AnalogyWords("sun", "moon", "star", 10, 0)
	require.Len(t, results, 4)
	assert.Equal(t, "star", results[0].Word)
}

func TestAnalogyWordsUnknownWord(t *testing.T) {
	q, _ := queryFixture(t)

	assert.Empty(t, q.AnalogyWords("comet", "moon", "star", 5, 0.01))
	assert.Empty(t, q.AnalogyWords("sun", "comet", "star", 5, 0.01))
	assert.Empty(t, q.AnalogyWords("sun", "moon", "comet", 5, 0.01))
}
