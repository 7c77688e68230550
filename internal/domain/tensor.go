package domain

import "math"

// Tuning constants of the procedural model. Frequencies are cycles per
// degree; thresholds operate on the [0,1) noise fields.
const (
	terrainFrequency = 8.0
	densityFrequency = 6.0
	extremeFrequency = 3.0

	// waterThreshold classifies terrain below it as open water; the band of
	// coastalBand above it is flagged coastal.
	waterThreshold = 0.32
	coastalBand    = 0.06

	// Urbanization cut points on the blended distance/density signal.
	urbanCut    = 0.62
	suburbanCut = 0.42

	// maxElevation is the altitude in meters at terrain value 1.0.
	maxElevation = 480.0

	// urbanHeatIsland is the temperature offset (deg C) for urban cells.
	urbanHeatIsland = 2.5
)

// TerrainAt evaluates the terrain field at a coordinate.
func TerrainAt(c LatLng) float64 {
	return fbm(terrainSeed, c.Lat*terrainFrequency, c.Lng*terrainFrequency)
}

// AltitudeAt maps the terrain field to meters above sea level. Water is sea
// level; land scales linearly from the water threshold up to maxElevation.
func AltitudeAt(c LatLng) float64 {
	t := TerrainAt(c)
	if t < waterThreshold {
		return 0
	}
	return (t - waterThreshold) / (1 - waterThreshold) * maxElevation
}

// SynthesizeDimensions builds the five-dimension record for a cell as a pure
// function of (cell center, grid center, scale). Identical inputs produce
// bit-identical output.
func SynthesizeDimensions(cell, gridCenter LatLng, scale Scale) Dimensions {
	dist := normalizedDistance(cell, gridCenter, scale)
	terrain := TerrainAt(cell)
	density := fbm(densitySeed, cell.Lat*densityFrequency, cell.Lng*densityFrequency)

	land := classifyLandUse(terrain, density, dist)
	water := land == LandUseWaterbody

	geography := Geography{
		Elevation:   AltitudeAt(cell),
		LandUse:     land,
		IsCoastal:   !water && terrain < waterThreshold+coastalBand,
		IsWaterBody: water,
	}

	temperature := 29.0 - 0.45*math.Abs(cell.Lat)
	if land == LandUseUrban {
		temperature += urbanHeatIsland
	}
	tropical := math.Max(0, 1-math.Abs(cell.Lat)/35)
	extreme := fbm(extremeSeed, cell.Lat*extremeFrequency, cell.Lng*extremeFrequency)
	climate := Climate{
		Temperature:       temperature,
		Precipitation:     60 + terrain*140,
		ExtremeEventIndex: clamp(tropical*60+extreme*40, 0, 100),
	}

	// Per-class base ranges, perturbed by the density field: urban highest,
	// rural lowest, water near-zero infrastructure and zero population.
	var socioeconomic Socioeconomic
	var infrastructure Infrastructure
	switch land {
	case LandUseUrban:
		socioeconomic = Socioeconomic{PopulationDensity: 60 + density*35, EconomicIndex: 55 + density*35}
		infrastructure = Infrastructure{RoadDensity: 65 + density*30, WaterAccess: 70 + density*25}
	case LandUseSuburban:
		socioeconomic = Socioeconomic{PopulationDensity: 30 + density*30, EconomicIndex: 40 + density*30}
		infrastructure = Infrastructure{RoadDensity: 45 + density*30, WaterAccess: 55 + density*30}
	case LandUseRural:
		socioeconomic = Socioeconomic{PopulationDensity: 5 + density*25, EconomicIndex: 25 + density*25}
		infrastructure = Infrastructure{RoadDensity: 15 + density*30, WaterAccess: 35 + density*30}
	case LandUseWaterbody:
		socioeconomic = Socioeconomic{PopulationDensity: 0, EconomicIndex: 5}
		infrastructure = Infrastructure{RoadDensity: 0, WaterAccess: 5}
	}

	vulnerability := Vulnerability{
		SocialIndex:     clamp(100-socioeconomic.EconomicIndex*0.75, 0, 100),
		GovernanceIndex: clamp(30+socioeconomic.EconomicIndex*0.55, 0, 100),
	}

	return Dimensions{
		Climate:        climate,
		Geography:      geography,
		Socioeconomic:  socioeconomic,
		Infrastructure: infrastructure,
		Vulnerability:  vulnerability,
	}
}

// SynthesizeTensor builds the fully scored tensor for a cell procedurally.
func SynthesizeTensor(cell, gridCenter LatLng, scale Scale) ContextTensor {
	dims := SynthesizeDimensions(cell, gridCenter, scale)
	return ContextTensor{
		Dimensions: dims,
		Scores:     ComputeScores(dims),
		Source:     TensorSourceProcedural,
	}
}

// normalizedDistance is the Euclidean distance in degrees between cell and
// grid center, divided by the scale's reference radius and clamped to [0,1].
// This is the primary "distance from urban core" signal.
func normalizedDistance(cell, gridCenter LatLng, scale Scale) float64 {
	d := math.Hypot(cell.Lat-gridCenter.Lat, cell.Lng-gridCenter.Lng)
	return clamp(d/scale.ReferenceRadius(), 0, 1)
}

// classifyLandUse assigns the land-use class. Water wins outright on the
// terrain field; otherwise urbanization blends proximity to the core with
// the density field and is thresholded into the three land classes.
func classifyLandUse(terrain, density, normDist float64) LandUse {
	if terrain < waterThreshold {
		return LandUseWaterbody
	}
	urbanization := 0.55*(1-normDist) + 0.45*density
	switch {
	case urbanization >= urbanCut:
		return LandUseUrban
	case urbanization >= suburbanCut:
		return LandUseSuburban
	default:
		return LandUseRural
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
