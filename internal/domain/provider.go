package domain

import (
	"context"
	"log/slog"
)

// Tensor source labels recorded on a cell's tensor.
const (
	TensorSourceProcedural = "procedural"
	TensorSourceProvider   = "provider"
)

// DimensionProvider supplies externally observed dimensions for a cell
// coordinate, typically backed by a remote dataset API. Implementations
// return a zero-valued Dimensions (empty land use) when they have no data for
// the coordinate; that is not an error.
type DimensionProvider interface {
	FetchDimensions(ctx context.Context, coord LatLng) (Dimensions, error)
}

// ResolveTensor produces a cell's tensor, preferring provider data when a
// provider is configured. Provider errors and empty results fall back to
// procedural synthesis and are never propagated: an analysis always
// completes with a fully resolved tensor per cell.
func ResolveTensor(ctx context.Context, provider DimensionProvider, cell, gridCenter LatLng, scale Scale, logger *slog.Logger) ContextTensor {
	if provider == nil {
		return SynthesizeTensor(cell, gridCenter, scale)
	}

	dims, err := provider.FetchDimensions(ctx, cell)
	if err != nil {
		logger.Warn("dimension provider failed, falling back to procedural synthesis",
			"lat", cell.Lat,
			"lng", cell.Lng,
			"error", err,
		)
		return SynthesizeTensor(cell, gridCenter, scale)
	}
	if dims.Geography.LandUse == "" {
		return SynthesizeTensor(cell, gridCenter, scale)
	}

	return ContextTensor{
		Dimensions: dims,
		Scores:     ComputeScores(dims),
		Source:     TensorSourceProvider,
	}
}
