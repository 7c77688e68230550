package domain

import "math"

// Fixed parameters of the risk decomposition.
const (
	hazardBaseline      = 30.0
	hazardWaterBonus    = 20.0
	hazardUrbanBonus    = 15.0
	hazardTropicalBonus = 15.0

	// tropicalTempThreshold marks the tropical temperature band. The scorer
	// sees only the dimensions record, which carries no latitude, so the
	// low-latitude hazard bonus keys off temperature, itself a pure
	// function of absolute latitude plus the urban heat-island offset.
	tropicalTempThreshold = 24.0

	riskExponent = 0.7

	// WaterbodyRiskOverride replaces the computed composite on open-water
	// cells. Nothing lives on open water, so the raw decomposition is not
	// meaningful there; this is a policy override, not a clamp.
	WaterbodyRiskOverride = 15.0
)

// ComputeScores derives hazard, exposure, vulnerability, and the composite
// risk from a fully populated dimensions record. It is deliberately separable
// from synthesis so risk can be recomputed against provider-supplied
// dimensions without re-deriving geography.
func ComputeScores(d Dimensions) RiskScores {
	infrastructure := (d.Infrastructure.RoadDensity + d.Infrastructure.WaterAccess) / 2

	hazard := hazardBaseline
	if d.Geography.IsWaterBody {
		hazard += hazardWaterBonus
	}
	if d.Geography.LandUse == LandUseUrban {
		hazard += hazardUrbanBonus
	}
	if d.Climate.Temperature >= tropicalTempThreshold {
		hazard += hazardTropicalBonus
	}

	exposure := clamp((d.Socioeconomic.PopulationDensity+infrastructure)/2, 0, 100)
	vulnerability := math.Max(0, 100-0.8*infrastructure)

	total := math.Min(100, math.Pow(hazard*exposure*vulnerability/10000, riskExponent)*100)
	if d.Geography.IsWaterBody {
		total = WaterbodyRiskOverride
	}

	return RiskScores{
		Hazard:        hazard,
		Exposure:      exposure,
		Vulnerability: vulnerability,
		TotalRisk:     total,
	}
}
