package contextapi

import (
	"context"
	"fmt"
	"sync"

	"github.com/hexsight/contextspace/internal/domain"
	"github.com/hexsight/contextspace/internal/observability"
)

// CachedProvider wraps a DimensionProvider with an in-memory LRU cache.
// Cell centers repeat across analyses of the same region, so the hit rate is
// high for any service answering more than one request per region.
type CachedProvider struct {
	inner   domain.DimensionProvider
	cache   *lruCache
	metrics *observability.Metrics
}

// NewCachedProvider creates a cache decorator around a provider.
func NewCachedProvider(inner domain.DimensionProvider, maxEntries int, metrics *observability.Metrics) *CachedProvider {
	return &CachedProvider{
		inner:   inner,
		cache:   newLRUCache(maxEntries),
		metrics: metrics,
	}
}

func (c *CachedProvider) FetchDimensions(ctx context.Context, coord domain.LatLng) (domain.Dimensions, error) {
	key := fmt.Sprintf("%.6f,%.6f", coord.Lat, coord.Lng)
	if dims, ok := c.cache.get(key); ok {
		c.metrics.ProviderCache.WithLabelValues("hit").Inc()
		return dims, nil
	}
	c.metrics.ProviderCache.WithLabelValues("miss").Inc()

	dims, err := c.inner.FetchDimensions(ctx, coord)
	if err != nil {
		return dims, err
	}
	// Only cache populated results so transient no-coverage responses can be retried.
	if dims.Geography.LandUse != "" {
		c.cache.put(key, dims)
	}
	return dims, nil
}

// lruCache is a simple thread-safe LRU cache for dimension records.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value domain.Dimensions
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) (domain.Dimensions, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return domain.Dimensions{}, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value domain.Dimensions) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
