package inventory

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/BarSentry_Go/internal/domain"
)

const (
	defaultCacheSize = 512
	defaultCacheTTL  = 30 * time.Second
)

// ingredientCache is a small read-through cache for ingredient lookups on
// the dashboard-facing read path. Entries expire quickly and the whole
// cache is purged after every recalculation pass, so a freshly computed
// expected quantity is never shadowed by a stale entry.
type ingredientCache struct {
	lru *expirable.LRU[string, *domain.Ingredient]
}

func newIngredientCache(size int, ttl time.Duration) *ingredientCache {
	return &ingredientCache{
		lru: expirable.NewLRU[string, *domain.Ingredient](size, nil, ttl),
	}
}

func (c *ingredientCache) Get(id string) (*domain.Ingredient, bool) {
	return c.lru.Get(id)
}

func (c *ingredientCache) Set(id string, ing *domain.Ingredient) {
	c.lru.Add(id, ing)
}

func (c *ingredientCache) Remove(id string) {
	c.lru.Remove(id)
}

func (c *ingredientCache) Purge() {
	c.lru.Purge()
}
