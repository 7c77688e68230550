package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScale(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Scale
	}{
		{"neighborhood", "neighborhood", ScaleNeighborhood},
		{"city", "city", ScaleCity},
		{"region", "region", ScaleRegion},
		{"mixed case", "Region", ScaleRegion},
		{"whitespace", "  city ", ScaleCity},
		{"empty defaults to city", "", ScaleCity},
		{"unknown defaults to city", "continental", ScaleCity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseScale(tt.input))
		})
	}
}

func TestScaleParameters(t *testing.T) {
	assert.Equal(t, 9, ScaleNeighborhood.Resolution())
	assert.Equal(t, 7, ScaleCity.Resolution())
	assert.Equal(t, 5, ScaleRegion.Resolution())

	assert.Equal(t, 4, ScaleNeighborhood.RingRadius())
	assert.Equal(t, 6, ScaleCity.RingRadius())
	assert.Equal(t, 8, ScaleRegion.RingRadius())

	assert.Less(t, ScaleNeighborhood.ReferenceRadius(), ScaleCity.ReferenceRadius())
	assert.Less(t, ScaleCity.ReferenceRadius(), ScaleRegion.ReferenceRadius())
}

// stubIndex is a minimal in-memory spatial index for grid tests. Cell IDs are
// "cell-N" counted outward from the origin cell.
type stubIndex struct {
	ringErr   error
	centerErr error
}

func (s *stubIndex) ResolveCell(coord LatLng, resolution int) string {
	return fmt.Sprintf("cell-0@%d", resolution)
}

func (s *stubIndex) Center(cellID string) (LatLng, error) {
	if s.centerErr != nil {
		return LatLng{}, s.centerErr
	}
	var n, res int
	fmt.Sscanf(cellID, "cell-%d@%d", &n, &res)
	return LatLng{Lat: float64(n) * 0.01, Lng: float64(n) * 0.01}, nil
}

func (s *stubIndex) Boundary(cellID string) ([]LatLng, error) {
	c, err := s.Center(cellID)
	if err != nil {
		return nil, err
	}
	return []LatLng{c, c, c, c, c, c, c}, nil
}

func (s *stubIndex) Ring(cellID string, radius int) ([]string, error) {
	if s.ringErr != nil {
		return nil, s.ringErr
	}
	var n, res int
	fmt.Sscanf(cellID, "cell-%d@%d", &n, &res)
	count := 1 + 3*radius*(radius+1)
	ids := make([]string, count)
	for i := range ids {
		ids[i] = fmt.Sprintf("cell-%d@%d", i, res)
	}
	return ids, nil
}

func TestGenerateGrid(t *testing.T) {
	t.Run("city scale expands six rings", func(t *testing.T) {
		plan, err := GenerateGrid(&stubIndex{}, "jakarta", ScaleCity)

		require.NoError(t, err)
		assert.Equal(t, LatLng{Lat: -6.2088, Lng: 106.8456}, plan.Center)
		assert.Equal(t, 7, plan.Resolution)
		assert.Len(t, plan.Cells, 127)
		assert.Equal(t, "cell-0@7", plan.Cells[0].ID)
	})

	t.Run("cell descriptors carry decoded centers", func(t *testing.T) {
		plan, err := GenerateGrid(&stubIndex{}, "jakarta", ScaleNeighborhood)

		require.NoError(t, err)
		require.Len(t, plan.Cells, 61)
		assert.InDelta(t, 0.05, plan.Cells[5].Center.Lat, 1e-9)
	})

	t.Run("ring failure propagates", func(t *testing.T) {
		_, err := GenerateGrid(&stubIndex{ringErr: errors.New("boom")}, "jakarta", ScaleCity)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ring expansion")
	})

	t.Run("decode failure propagates", func(t *testing.T) {
		_, err := GenerateGrid(&stubIndex{centerErr: errors.New("boom")}, "jakarta", ScaleCity)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode cell")
	})
}

func TestCellBoundary(t *testing.T) {
	t.Run("vertices carry terrain altitude", func(t *testing.T) {
		points, err := CellBoundary(&stubIndex{}, "cell-3@7")

		require.NoError(t, err)
		require.Len(t, points, 7)
		for _, p := range points {
			assert.Equal(t, AltitudeAt(LatLng{Lat: p.Lat, Lng: p.Lng}), p.Altitude)
		}
	})

	t.Run("boundary failure propagates", func(t *testing.T) {
		_, err := CellBoundary(&stubIndex{centerErr: errors.New("boom")}, "cell-3@7")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boundary of")
	})
}
