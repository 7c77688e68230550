package domain

import (
	"fmt"
	"math"
	"strings"
)

// Scaling constants for the region-level estimates.
const (
	// populationScaling converts a cell's 0-100 density score into heads.
	populationScaling = 100.0
	// costScaling converts a cell's 0-100 risk score into currency units.
	costScaling = 1000.0
	// highRiskThreshold marks a cell as high risk for reporting purposes.
	highRiskThreshold = 75.0
)

// AggregateStats reduces per-cell results into region-level statistics.
// Water cells are excluded from the risk average and the land-use vote but
// still contribute their population and cost terms.
func AggregateStats(cells []HexCell) GlobalStats {
	var riskSum, popSum, costSum float64
	var landCells, highRisk int
	votes := make(map[LandUse]int, 3)

	for _, c := range cells {
		t := c.Tensor
		popSum += t.Dimensions.Socioeconomic.PopulationDensity * populationScaling
		costSum += t.Scores.TotalRisk * costScaling
		if t.Scores.TotalRisk > highRiskThreshold {
			highRisk++
		}
		if t.Dimensions.Geography.LandUse == LandUseWaterbody {
			continue
		}
		riskSum += t.Scores.TotalRisk
		landCells++
		votes[t.Dimensions.Geography.LandUse]++
	}

	stats := GlobalStats{
		HighRiskCells:      highRisk,
		AffectedPopulation: int64(math.Floor(popSum)),
		TotalCost:          costSum,
		DominantLandUse:    dominantLandUse(votes),
	}
	if landCells > 0 {
		stats.AvgRisk = riskSum / float64(landCells)
	}
	return stats
}

// dominantLandUse picks the majority class. Ties break in a fixed class
// order so the result is deterministic; an all-water grid reports Waterbody.
func dominantLandUse(votes map[LandUse]int) LandUse {
	best := LandUseWaterbody
	bestVotes := 0
	for _, land := range []LandUse{LandUseUrban, LandUseSuburban, LandUseRural} {
		if votes[land] > bestVotes {
			best = land
			bestVotes = votes[land]
		}
	}
	return best
}

// Summarize renders the caller-facing text for a completed analysis.
func Summarize(a GridAnalysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Context analysis for %s under scenario %s, target year %d.\n",
		a.RegionName, a.Scenario, a.TargetYear)
	fmt.Fprintf(&b, "%d cells at %s scale around (%.4f, %.4f); dominant land use %s.\n",
		len(a.Cells), a.Scale, a.GridCenter.Lat, a.GridCenter.Lng, a.Stats.DominantLandUse)
	fmt.Fprintf(&b, "Average risk %.1f/100 with %d high-risk cells (>%.0f).\n",
		a.Stats.AvgRisk, a.Stats.HighRiskCells, highRiskThreshold)
	fmt.Fprintf(&b, "Estimated affected population %d; indicative adaptation cost %.0f.",
		a.Stats.AffectedPopulation, a.Stats.TotalCost)
	return b.String()
}
