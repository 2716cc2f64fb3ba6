package similarity

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds the number of memoized pairs in a Cached scorer.
const DefaultCacheSize = 4096

// Scorer computes a similarity score in [0, 1] for a pair of names.
type Scorer interface {
	Score(a, b string) float64
}

// Func adapts a plain function to the Scorer interface.
type Func func(a, b string) float64

// Score implements Scorer.
func (f Func) Score(a, b string) float64 { return f(a, b) }

// Default is the symmetric Ratcliff/Obershelp scorer.
var Default Scorer = Func(Similarity)

type pair struct{ a, b string }

// Cached memoizes the scores of an inner Scorer in a bounded LRU cache.
// Manifests often repeat names, and every repeat is compared against the
// same reference list.
type Cached struct {
	inner Scorer
	cache *lru.Cache[pair, float64]
}

// NewCached wraps inner with an LRU cache holding up to size pairs.
// A nil inner uses Default; a non-positive size uses DefaultCacheSize.
func NewCached(inner Scorer, size int) (*Cached, error) {
	if inner == nil {
		inner = Default
	}
	if size <= 0 {
		size = DefaultCacheSize
	}
	c, err := lru.New[pair, float64](size)
	if err != nil {
		return nil, err
	}
	return &Cached{inner: inner, cache: c}, nil
}

// Score implements Scorer.
func (c *Cached) Score(a, b string) float64 {
	key := pair{a, b}
	if v, ok := c.cache.Get(key); ok {
		return v
	}
	v := c.inner.Score(a, b)
	c.cache.Add(key, v)
	return v
}

// Len reports how many pairs are memoized.
func (c *Cached) Len() int { return c.cache.Len() }

var (
	_ Scorer = Func(nil)
	_ Scorer = (*Cached)(nil)
)
