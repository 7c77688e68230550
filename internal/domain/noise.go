package domain

import "math"

// Seeds for the independent procedural fields. Each field hashes the same
// coordinates under a different seed so the fields never correlate.
const (
	terrainSeed uint64 = 0x7465727261696e // "terrain"
	densitySeed uint64 = 0x64656e73697479 // "density"
	extremeSeed uint64 = 0x65787472656d65 // "extreme"
)

// noiseOctaves is the number of fractal octaves summed per field.
const noiseOctaves = 4

// hashUnit maps an integer lattice point to [0, 1) with a splitmix64-style
// finalizer. The explicit seed keeps every field reproducible across
// platforms and processes; no language-level random state is involved.
func hashUnit(seed uint64, xi, yi int64) float64 {
	h := seed
	h ^= uint64(xi) * 0x9e3779b97f4a7c15
	h = (h ^ (h >> 30)) * 0xbf58476d1ce4e5b9
	h ^= uint64(yi) * 0x94d049bb133111eb
	h = (h ^ (h >> 27)) * 0xff51afd7ed558ccd
	h ^= h >> 31
	return float64(h>>11) / float64(uint64(1)<<53)
}

// valueNoise interpolates the four surrounding lattice hashes with a
// smoothstep fade, yielding a continuous field over the plane in [0, 1).
func valueNoise(seed uint64, x, y float64) float64 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	tx := x - x0
	ty := y - y0
	xi := int64(x0)
	yi := int64(y0)

	c00 := hashUnit(seed, xi, yi)
	c10 := hashUnit(seed, xi+1, yi)
	c01 := hashUnit(seed, xi, yi+1)
	c11 := hashUnit(seed, xi+1, yi+1)

	sx := tx * tx * (3 - 2*tx)
	sy := ty * ty * (3 - 2*ty)

	top := c00 + (c10-c00)*sx
	bottom := c01 + (c11-c01)*sx
	return top + (bottom-top)*sy
}

// fbm sums noiseOctaves octaves of value noise. Each octave halves the
// amplitude and doubles the frequency of the previous one; the sum is
// normalized back into [0, 1).
func fbm(seed uint64, x, y float64) float64 {
	var sum, norm float64
	amp := 1.0
	freq := 1.0
	for o := 0; o < noiseOctaves; o++ {
		sum += amp * valueNoise(seed+uint64(o), x*freq, y*freq)
		norm += amp
		amp /= 2
		freq *= 2
	}
	return sum / norm
}
