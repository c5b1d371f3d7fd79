package spell

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Prober reports whether a language can be checked. Tags passed to
// Probe are canonical.
type Prober interface {
	Probe(lang string) (bool, error)
}

type ProberFunc func(lang string) (bool, error)

func (f ProberFunc) Probe(lang string) (bool, error) { return f(lang) }

type Stats struct {
	Hits   int64
	Misses int64
	Len    int
}

// Cache memoizes a Prober. It is safe for concurrent use; concurrent
// misses on the same language may probe more than once.
type Cache struct {
	prober Prober
	cache  *lru.Cache[string, bool]

	hits, misses atomic.Int64
}

// NewCache returns a cache holding up to size results.
func NewCache(p Prober, size int) (*Cache, error) {
	c, err := lru.New[string, bool](size)
	if err != nil {
		return nil, err
	}
	return &Cache{prober: p, cache: c}, nil
}

// CanCheck reports whether lang can be checked, probing only on the
// first call for each language since the last Reset. Probe errors are
// not cached.
func (c *Cache) CanCheck(lang string) (bool, error) {
	tag, err := Canonical(lang)
	if err != nil {
		return false, err
	}
	if ok, hit := c.cache.Get(tag); hit {
		c.hits.Add(1)
		return ok, nil
	}
	c.misses.Add(1)
	ok, err := c.prober.Probe(tag)
	if err != nil {
		return false, err
	}
	c.cache.Add(tag, ok)
	return ok, nil
}

// Reset forgets every result and zeroes the statistics.
func (c *Cache) Reset() {
	c.cache.Purge()
	c.hits.Store(0)
	c.misses.Store(0)
}

func (c *Cache) Stats() Stats {
	return Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Len:    c.cache.Len(),
	}
}
