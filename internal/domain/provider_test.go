package domain

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProvider returns a canned response or error.
type mockProvider struct {
	dims  Dimensions
	err   error
	calls int
}

func (m *mockProvider) FetchDimensions(_ context.Context, _ LatLng) (Dimensions, error) {
	m.calls++
	return m.dims, m.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResolveTensor(t *testing.T) {
	ctx := context.Background()
	cell := LatLng{Lat: -6.21, Lng: 106.85}
	center := LatLng{Lat: -6.2088, Lng: 106.8456}

	t.Run("nil provider synthesizes procedurally", func(t *testing.T) {
		tensor := ResolveTensor(ctx, nil, cell, center, ScaleCity, discardLogger())

		assert.Equal(t, TensorSourceProcedural, tensor.Source)
		assert.Equal(t, SynthesizeTensor(cell, center, ScaleCity), tensor)
	})

	t.Run("provider error falls back", func(t *testing.T) {
		provider := &mockProvider{err: errors.New("upstream down")}
		tensor := ResolveTensor(ctx, provider, cell, center, ScaleCity, discardLogger())

		assert.Equal(t, 1, provider.calls)
		assert.Equal(t, TensorSourceProcedural, tensor.Source)
	})

	t.Run("empty provider result falls back", func(t *testing.T) {
		provider := &mockProvider{}
		tensor := ResolveTensor(ctx, provider, cell, center, ScaleCity, discardLogger())

		assert.Equal(t, 1, provider.calls)
		assert.Equal(t, TensorSourceProcedural, tensor.Source)
	})

	t.Run("populated provider result is scored", func(t *testing.T) {
		dims := Dimensions{
			Climate:        Climate{Temperature: 27, Precipitation: 180, ExtremeEventIndex: 55},
			Geography:      Geography{Elevation: 8, LandUse: LandUseUrban},
			Socioeconomic:  Socioeconomic{PopulationDensity: 88, EconomicIndex: 70},
			Infrastructure: Infrastructure{RoadDensity: 80, WaterAccess: 85},
			Vulnerability:  Vulnerability{SocialIndex: 47.5, GovernanceIndex: 68.5},
		}
		provider := &mockProvider{dims: dims}
		tensor := ResolveTensor(ctx, provider, cell, center, ScaleCity, discardLogger())

		require.Equal(t, TensorSourceProvider, tensor.Source)
		assert.Equal(t, dims, tensor.Dimensions)
		assert.Equal(t, ComputeScores(dims), tensor.Scores)
	})
}
