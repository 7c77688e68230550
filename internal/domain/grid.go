package domain

import (
	"fmt"
	"strings"
)

// Scale selects the logical extent and cell granularity of an analysis.
type Scale string

const (
	ScaleNeighborhood Scale = "neighborhood"
	ScaleCity         Scale = "city"
	ScaleRegion       Scale = "region"
)

// ParseScale normalizes a free-text scale label. Unrecognized values,
// including the empty string, default to city rather than erroring.
func ParseScale(s string) Scale {
	switch Scale(strings.ToLower(strings.TrimSpace(s))) {
	case ScaleNeighborhood:
		return ScaleNeighborhood
	case ScaleRegion:
		return ScaleRegion
	default:
		return ScaleCity
	}
}

// Resolution returns the spatial-index resolution level for the scale.
// Finer granularity means a higher level and smaller cells.
func (s Scale) Resolution() int {
	switch s {
	case ScaleNeighborhood:
		return 9
	case ScaleRegion:
		return 5
	default:
		return 7
	}
}

// RingRadius returns the ring-expansion radius for the scale. Coarser scales
// use more rings so "region" still covers a comparable multiple of its cell
// size despite the cells being far larger.
func (s Scale) RingRadius() int {
	switch s {
	case ScaleNeighborhood:
		return 4
	case ScaleRegion:
		return 8
	default:
		return 6
	}
}

// ReferenceRadius is the distance in degrees treated as "fully distant from
// the urban core" when normalizing a cell's distance from the grid center.
// Roughly the geographic extent of the scale's ring expansion.
func (s Scale) ReferenceRadius() float64 {
	switch s {
	case ScaleNeighborhood:
		return 0.2
	case ScaleRegion:
		return 5.0
	default:
		return 1.0
	}
}

// SpatialIndex is the discrete-global-grid capability the engine depends on.
// Implementations must be deterministic: equal inputs always produce equal
// identifiers, centers, rings, and boundaries.
type SpatialIndex interface {
	// ResolveCell returns the identifier of the cell containing the
	// coordinate at the given resolution level.
	ResolveCell(coord LatLng, resolution int) string

	// Center decodes a cell identifier back to its center coordinate.
	Center(cellID string) (LatLng, error)

	// Boundary returns the cell's polygon ring, closed back to the first
	// point.
	Boundary(cellID string) ([]LatLng, error)

	// Ring returns every cell within the given graph distance of the cell,
	// the cell itself included, in a deterministic traversal order.
	Ring(cellID string, radius int) ([]string, error)
}

// CellDescriptor names one cell of a grid plan before synthesis.
type CellDescriptor struct {
	ID     string
	Center LatLng
}

// GridPlan is the output of grid generation: the resolved center plus every
// cell to analyze, in ring-traversal order.
type GridPlan struct {
	Center     LatLng
	Resolution int
	Cells      []CellDescriptor
}

// GenerateGrid resolves a region name to a center coordinate and expands
// rings around the containing cell at the scale's resolution. Identical
// (regionName, scale) inputs always yield an identical plan.
func GenerateGrid(index SpatialIndex, regionName string, scale Scale) (GridPlan, error) {
	center := ResolveRegion(regionName)
	resolution := scale.Resolution()

	origin := index.ResolveCell(center, resolution)
	ids, err := index.Ring(origin, scale.RingRadius())
	if err != nil {
		return GridPlan{}, fmt.Errorf("ring expansion from %s: %w", origin, err)
	}

	cells := make([]CellDescriptor, 0, len(ids))
	for _, id := range ids {
		c, err := index.Center(id)
		if err != nil {
			return GridPlan{}, fmt.Errorf("decode cell %s: %w", id, err)
		}
		cells = append(cells, CellDescriptor{ID: id, Center: c})
	}

	return GridPlan{Center: center, Resolution: resolution, Cells: cells}, nil
}

// CellBoundary resolves a cell's closed polygon ring and assigns each vertex
// the synthetic terrain altitude of its coordinate.
func CellBoundary(index SpatialIndex, cellID string) ([]BoundaryPoint, error) {
	ring, err := index.Boundary(cellID)
	if err != nil {
		return nil, fmt.Errorf("boundary of %s: %w", cellID, err)
	}
	points := make([]BoundaryPoint, len(ring))
	for i, v := range ring {
		points[i] = BoundaryPoint{Lat: v.Lat, Lng: v.Lng, Altitude: AltitudeAt(v)}
	}
	return points, nil
}
