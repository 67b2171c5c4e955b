package glove

import (
	"math"
	"sort"

	"github.com/viterin/vek"

	"github.com/tokenvec/glove/corpus"
)

// WordSimilarity pairs a vocabulary token with its cosine similarity
// to a query.
type WordSimilarity struct {
	Word       string
	Similarity float64
}

// QueryEngine answers nearest-neighbor and analogy queries over a
// trained vector space. It only reads the space and must not be used
// while a training epoch is running.
type QueryEngine struct {
	space     *VectorSpace
	corpus    *corpus.Corpus
	normalize func(string) string
}

// NewQueryEngine returns a query engine over space and its
// vocabulary. A nil normalizer means corpus.Fold.
func NewQueryEngine(space *VectorSpace, c *corpus.Corpus, normalizer func(string) string) *QueryEngine {
	if normalizer == nil {
		normalizer = corpus.Fold
	}
	return &QueryEngine{space: space, corpus: c, normalize: normalizer}
}

// MostSimilar returns the num vocabulary tokens most similar to word
// by cosine similarity, in descending order. The word itself is never
// included. An unknown word yields an empty result.
func (q *QueryEngine) MostSimilar(word string, num int) []WordSimilarity {
	id, ok := q.corpus.ID(q.normalize(word))
	if !ok {
		return nil
	}

	v := q.space.Vector(id)
	results := make([]WordSimilarity, 0, q.space.Size())
	for other := 0; other < q.space.Size(); other++ {
		if other == id {
			continue
		}
		results = append(results, WordSimilarity{
			Word:       q.corpus.Token(other),
			Similarity: Cosine(v, q.space.Vector(other)),
		})
	}

	return topN(results, num)
}

// AnalogyWords ranks vocabulary tokens by similarity to target,
// excluding every candidate whose similarity lies within accuracy of
// the word1/word2 baseline similarity. Any unknown word yields an
// empty result.
func (q *QueryEngine) AnalogyWords(word1, word2, target string, num int, accuracy float64) []WordSimilarity {
	id1, ok1 := q.corpus.ID(q.normalize(word1))
	id2, ok2 := q.corpus.ID(q.normalize(word2))
	idT, okT := q.corpus.ID(q.normalize(target))
	if !ok1 || !ok2 || !okT {
		return nil
	}

	baseline := Cosine(q.space.Vector(id1), q.space.Vector(id2))
	vt := q.space.Vector(idT)

	results := make([]WordSimilarity, 0, q.space.Size())
	for other := 0; other < q.space.Size(); other++ {
		sim := Cosine(vt, q.space.Vector(other))
		if math.Abs(sim-baseline) < accuracy {
			continue
		}
		results = append(results, WordSimilarity{
			Word:       q.corpus.Token(other),
			Similarity: sim,
		})
	}

	return topN(results, num)
}

// Cosine returns the cosine similarity of two vectors: their dot
// product over the product of their norms. Absent or zero vectors
// give 0.
func Cosine(v1, v2 []float64) float64 {
	if len(v1) == 0 || len(v2) == 0 || len(v1) != len(v2) {
		return 0
	}
	n1 := vek.Dot(v1, v1)
	n2 := vek.Dot(v2, v2)
	if n1 == 0 || n2 == 0 {
		return 0
	}
	return vek.Dot(v1, v2) / (math.Sqrt(n1) * math.Sqrt(n2))
}

func topN(results []WordSimilarity, num int) []WordSimilarity {
	if num <= 0 {
		return nil
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})
	if num < len(results) {
		results = results[:num]
	}
	return results
}
