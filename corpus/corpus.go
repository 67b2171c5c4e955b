// Package corpus builds the vocabulary index and token-pair
// observations that the glove package trains on.
//
// Tokenization is deliberately simple: whitespace splitting with a
// pluggable normalizer. Anything smarter (stemming, subword units)
// can be supplied through Options.Normalizer.
package corpus

import "strings"

// DefaultWindow is the symmetric context window used when Options
// leaves Window unset.
const DefaultWindow = 2

// TokenInfo is the index entry for a vocabulary token. Ids are dense
// and assigned in order of first appearance.
type TokenInfo struct {
	ID    int
	Count int
}

// Pair is one co-occurrence observation: tokens A and B appeared
// Distance positions apart. Distance is always >= 1.
type Pair struct {
	A        int
	B        int
	Distance int
}

// Corpus is the read-only output of Build. Index maps normalized
// tokens to their id and occurrence count; Tokens is the inverse
// mapping; Pairs holds every observation within the window.
type Corpus struct {
	Index  map[string]TokenInfo
	Tokens []string
	Pairs  []Pair
}

// Options configures Build.
type Options struct {
	// Window is the symmetric context window size. Tokens up to
	// Window positions apart co-occur. Zero means DefaultWindow.
	Window int

	// Normalizer maps raw tokens to vocabulary form. Nil means Fold.
	Normalizer func(string) string
}

// Fold is the default normalizer: lowercase with surrounding space
// stripped.
func Fold(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}

// Build tokenizes text and produces the vocabulary index plus all
// pair observations within the window.
func Build(text string, opts Options) *Corpus {
	window := opts.Window
	if window <= 0 {
		window = DefaultWindow
	}
	normalize := opts.Normalizer
	if normalize == nil {
		normalize = Fold
	}

	c := &Corpus{Index: make(map[string]TokenInfo)}

	ids := make([]int, 0, 64)
	for _, raw := range strings.Fields(text) {
		token := normalize(raw)
		if token == "" {
			continue
		}
		info, ok := c.Index[token]
		if !ok {
			info = TokenInfo{ID: len(c.Tokens)}
			c.Tokens = append(c.Tokens, token)
		}
		info.Count++
		c.Index[token] = info
		ids = append(ids, info.ID)
	}

	for i := range ids {
		left := i - window
		if left < 0 {
			left = 0
		}
		for j := left; j < i; j++ {
			c.Pairs = append(c.Pairs, Pair{A: ids[j], B: ids[i], Distance: i - j})
		}
	}

	return c
}

// Size returns the vocabulary size.
func (c *Corpus) Size() int {
	return len(c.Tokens)
}

// ID resolves an already-normalized token to its id.
func (c *Corpus) ID(token string) (int, bool) {
	info, ok := c.Index[token]
	return info.ID, ok
}

// Token returns the token for an id.
func (c *Corpus) Token(id int) string {
	return c.Tokens[id]
}
