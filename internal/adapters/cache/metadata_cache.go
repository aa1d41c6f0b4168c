package cache

import (
	"fmt"
	"time"

	"gimie/internal/domain"

	"github.com/dgraph-io/ristretto"
)

const (
	defaultMetadataTTL      = 15 * time.Minute
	defaultMetadataMaxItems = 10_000
)

// RistrettoMetadataCache keeps page metadata by URL so repeated lookups of
// the same page do not spend metadata API quota.
type RistrettoMetadataCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func NewMetadataCache(maxItems int64, ttl time.Duration) (*RistrettoMetadataCache, error) {
	if ttl <= 0 {
		ttl = defaultMetadataTTL
	}
	if maxItems <= 0 {
		maxItems = defaultMetadataMaxItems
	}
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create metadata cache failed: %w", err)
	}
	return &RistrettoMetadataCache{cache: c, ttl: ttl}, nil
}

func (c *RistrettoMetadataCache) Get(pageURL string) (domain.Metadata, bool) {
	if v, ok := c.cache.Get(pageURL); ok {
		md, ok := v.(domain.Metadata)
		return md, ok
	}
	return domain.Metadata{}, false
}

func (c *RistrettoMetadataCache) Set(pageURL string, md domain.Metadata) {
	c.cache.SetWithTTL(pageURL, md, 1, c.ttl)
}

func (c *RistrettoMetadataCache) Del(pageURL string) {
	c.cache.Del(pageURL)
}

func (c *RistrettoMetadataCache) Close() { c.cache.Close() }
