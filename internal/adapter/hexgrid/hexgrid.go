// Package hexgrid implements domain.SpatialIndex on a pointy-top axial
// hexagonal lattice in plate-carree degree space. Cell identifiers encode
// (resolution, q, r) directly, so decoding never needs a lookup table and
// every operation is a closed-form computation.
package hexgrid

import (
	"fmt"
	"math"

	"github.com/hexsight/contextspace/internal/domain"
)

const (
	minResolution = 0
	maxResolution = 12

	// baseEdgeDegrees is the hex edge length in degrees at resolution 0.
	// Each resolution level halves the edge, so resolution 7 cells span
	// roughly a tenth of a degree.
	baseEdgeDegrees = 12.0
)

// Axial neighbor offsets in clockwise order starting east.
var neighborDirections = [6][2]int{
	{1, 0}, {1, -1}, {0, -1}, {-1, 0}, {-1, 1}, {0, 1},
}

// Index is a stateless spatial index. The zero value is ready to use.
type Index struct{}

// New returns a hexagonal spatial index.
func New() *Index {
	return &Index{}
}

func edgeLength(resolution int) float64 {
	return baseEdgeDegrees / math.Pow(2, float64(clampResolution(resolution)))
}

func clampResolution(resolution int) int {
	if resolution < minResolution {
		return minResolution
	}
	if resolution > maxResolution {
		return maxResolution
	}
	return resolution
}

// ResolveCell maps a coordinate to the identifier of its containing cell.
func (x *Index) ResolveCell(coord domain.LatLng, resolution int) string {
	resolution = clampResolution(resolution)
	s := edgeLength(resolution)

	// Planar axial transform with x=longitude, y=latitude.
	q := (math.Sqrt(3)/3*coord.Lng - coord.Lat/3) / s
	r := (2.0 / 3.0 * coord.Lat) / s

	qi, ri := roundAxial(q, r)
	return formatID(resolution, qi, ri)
}

// Center decodes a cell identifier to its center coordinate.
func (x *Index) Center(cellID string) (domain.LatLng, error) {
	resolution, q, r, err := parseID(cellID)
	if err != nil {
		return domain.LatLng{}, err
	}
	s := edgeLength(resolution)
	return domain.LatLng{
		Lng: s * (math.Sqrt(3)*float64(q) + math.Sqrt(3)/2*float64(r)),
		Lat: s * 1.5 * float64(r),
	}, nil
}

// Boundary returns the six corners of the cell followed by a repeat of the
// first corner, closing the ring.
func (x *Index) Boundary(cellID string) ([]domain.LatLng, error) {
	resolution, _, _, err := parseID(cellID)
	if err != nil {
		return nil, err
	}
	center, err := x.Center(cellID)
	if err != nil {
		return nil, err
	}

	s := edgeLength(resolution)
	ring := make([]domain.LatLng, 0, 7)
	for i := 0; i < 6; i++ {
		// Pointy-top corners sit at 30, 90, ..., 330 degrees.
		angle := math.Pi / 180 * (60*float64(i) - 30)
		ring = append(ring, domain.LatLng{
			Lat: center.Lat + s*math.Sin(angle),
			Lng: center.Lng + s*math.Cos(angle),
		})
	}
	ring = append(ring, ring[0])
	return ring, nil
}

// Ring returns the cell and every cell within the given graph distance,
// ordered center first and then ring by ring, each ring walked clockwise
// from its south-west corner. The order is a pure function of the inputs.
func (x *Index) Ring(cellID string, radius int) ([]string, error) {
	resolution, q, r, err := parseID(cellID)
	if err != nil {
		return nil, err
	}
	if radius < 0 {
		return nil, fmt.Errorf("hexgrid: negative ring radius %d", radius)
	}

	out := make([]string, 0, 1+3*radius*(radius+1))
	out = append(out, cellID)

	for k := 1; k <= radius; k++ {
		// Start each ring k steps along direction 4 from the origin, then
		// walk k cells along each of the six sides.
		cq := q + neighborDirections[4][0]*k
		cr := r + neighborDirections[4][1]*k
		for side := 0; side < 6; side++ {
			for step := 0; step < k; step++ {
				out = append(out, formatID(resolution, cq, cr))
				cq += neighborDirections[side][0]
				cr += neighborDirections[side][1]
			}
		}
	}
	return out, nil
}

// roundAxial snaps fractional axial coordinates to the containing cell using
// cube rounding, which keeps q+r+s summing to zero.
func roundAxial(q, r float64) (int, int) {
	s := -q - r

	rq := math.Round(q)
	rr := math.Round(r)
	rs := math.Round(s)

	dq := math.Abs(rq - q)
	dr := math.Abs(rr - r)
	ds := math.Abs(rs - s)

	switch {
	case dq > dr && dq > ds:
		rq = -rr - rs
	case dr > ds:
		rr = -rq - rs
	}
	return int(rq), int(rr)
}

func formatID(resolution, q, r int) string {
	return fmt.Sprintf("hx%d:%d:%d", resolution, q, r)
}

func parseID(cellID string) (resolution, q, r int, err error) {
	n, err := fmt.Sscanf(cellID, "hx%d:%d:%d", &resolution, &q, &r)
	if err != nil || n != 3 {
		return 0, 0, 0, fmt.Errorf("hexgrid: malformed cell id %q", cellID)
	}
	if resolution < minResolution || resolution > maxResolution {
		return 0, 0, 0, fmt.Errorf("hexgrid: cell id %q has resolution outside [%d,%d]", cellID, minResolution, maxResolution)
	}
	return resolution, q, r, nil
}
