package dict

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/MyounghoonKim/hantok/internal/model"
)

// cacheKey identifies one Contains lookup for the LRU cache.
type cacheKey struct {
	pos  model.POS
	word string
}

// cached decorates a Provider with an LRU cache in front of Contains,
// the hottest call on the parser's DP hot path (spec §4.4 calls it once
// per candidate morpheme per beam step). AddWords forwards to the wrapped
// Provider and drops the cached answers for the added words under that
// POS, so a word cached as absent is found once it has been added. Every
// other method passes through untouched.
type cached struct {
	Provider
	hits *lru.Cache[cacheKey, bool]
}

// NewCached wraps p with an LRU cache of the given capacity for Contains
// lookups. Capacity must be positive.
func NewCached(p Provider, capacity int) Provider {
	c, err := lru.New[cacheKey, bool](capacity)
	if err != nil {
		// Only returned for capacity <= 0, a programmer error.
		panic(err)
	}
	return &cached{Provider: p, hits: c}
}

func (c *cached) Contains(pos model.POS, word string) bool {
	key := cacheKey{pos: pos, word: word}
	if v, ok := c.hits.Get(key); ok {
		return v
	}
	v := c.Provider.Contains(pos, word)
	c.hits.Add(key, v)
	return v
}

func (c *cached) AddWords(pos model.POS, words ...string) {
	c.Provider.AddWords(pos, words...)
	for _, w := range words {
		c.hits.Remove(cacheKey{pos: pos, word: w})
	}
}
