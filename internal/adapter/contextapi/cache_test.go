package contextapi

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexsight/contextspace/internal/domain"
	"github.com/hexsight/contextspace/internal/observability"
)

// countingProvider records lookups and serves canned responses.
type countingProvider struct {
	dims  domain.Dimensions
	err   error
	calls int
}

func (p *countingProvider) FetchDimensions(_ context.Context, _ domain.LatLng) (domain.Dimensions, error) {
	p.calls++
	return p.dims, p.err
}

func urbanDims() domain.Dimensions {
	return domain.Dimensions{
		Geography:     domain.Geography{LandUse: domain.LandUseUrban},
		Socioeconomic: domain.Socioeconomic{PopulationDensity: 80},
	}
}

func TestCachedProvider(t *testing.T) {
	ctx := context.Background()
	coord := domain.LatLng{Lat: 1.3521, Lng: 103.8198}

	t.Run("second lookup hits the cache", func(t *testing.T) {
		inner := &countingProvider{dims: urbanDims()}
		cached := NewCachedProvider(inner, 10, observability.NewMetricsForTesting())

		first, err := cached.FetchDimensions(ctx, coord)
		require.NoError(t, err)
		second, err := cached.FetchDimensions(ctx, coord)
		require.NoError(t, err)

		assert.Equal(t, 1, inner.calls)
		assert.Equal(t, first, second)
	})

	t.Run("distinct coordinates miss independently", func(t *testing.T) {
		inner := &countingProvider{dims: urbanDims()}
		cached := NewCachedProvider(inner, 10, observability.NewMetricsForTesting())

		_, err := cached.FetchDimensions(ctx, domain.LatLng{Lat: 1, Lng: 2})
		require.NoError(t, err)
		_, err = cached.FetchDimensions(ctx, domain.LatLng{Lat: 3, Lng: 4})
		require.NoError(t, err)

		assert.Equal(t, 2, inner.calls)
	})

	t.Run("empty results are not cached", func(t *testing.T) {
		inner := &countingProvider{}
		cached := NewCachedProvider(inner, 10, observability.NewMetricsForTesting())

		_, err := cached.FetchDimensions(ctx, coord)
		require.NoError(t, err)
		_, err = cached.FetchDimensions(ctx, coord)
		require.NoError(t, err)

		assert.Equal(t, 2, inner.calls)
	})

	t.Run("errors pass through uncached", func(t *testing.T) {
		inner := &countingProvider{err: errors.New("upstream down")}
		cached := NewCachedProvider(inner, 10, observability.NewMetricsForTesting())

		_, err := cached.FetchDimensions(ctx, coord)
		require.Error(t, err)
		_, err = cached.FetchDimensions(ctx, coord)
		require.Error(t, err)

		assert.Equal(t, 2, inner.calls)
	})

	t.Run("eviction respects capacity", func(t *testing.T) {
		inner := &countingProvider{dims: urbanDims()}
		cached := NewCachedProvider(inner, 2, observability.NewMetricsForTesting())

		coords := []domain.LatLng{{Lat: 1}, {Lat: 2}, {Lat: 3}}
		for _, c := range coords {
			_, err := cached.FetchDimensions(ctx, c)
			require.NoError(t, err)
		}
		// {Lat: 1} was evicted, so refetching it hits the inner provider.
		_, err := cached.FetchDimensions(ctx, coords[0])
		require.NoError(t, err)

		assert.Equal(t, 4, inner.calls)
	})
}

func TestLRUCache(t *testing.T) {
	t.Run("recently used entries survive eviction", func(t *testing.T) {
		c := newLRUCache(2)
		c.put("a", urbanDims())
		c.put("b", urbanDims())

		// Touch "a" so "b" becomes least recently used.
		_, ok := c.get("a")
		require.True(t, ok)

		c.put("c", urbanDims())

		_, ok = c.get("a")
		assert.True(t, ok)
		_, ok = c.get("b")
		assert.False(t, ok)
		_, ok = c.get("c")
		assert.True(t, ok)
	})

	t.Run("put replaces existing values", func(t *testing.T) {
		c := newLRUCache(2)
		c.put("a", urbanDims())

		updated := urbanDims()
		updated.Socioeconomic.PopulationDensity = 99
		c.put("a", updated)

		got, ok := c.get("a")
		require.True(t, ok)
		assert.Equal(t, 99.0, got.Socioeconomic.PopulationDensity)
	})

	t.Run("capacity one churns correctly", func(t *testing.T) {
		c := newLRUCache(1)
		for i := 0; i < 5; i++ {
			c.put(fmt.Sprintf("k%d", i), urbanDims())
		}
		_, ok := c.get("k4")
		assert.True(t, ok)
		_, ok = c.get("k3")
		assert.False(t, ok)
	})
}
