package domain

import (
	"time"

	"github.com/google/uuid"
)

// LatLng is a WGS-84 coordinate pair in degrees.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// BoundaryPoint is one vertex of a cell polygon, carrying the synthetic
// terrain altitude (meters) at that vertex so renderers can extrude cells.
type BoundaryPoint struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Altitude float64 `json:"altitude"`
}

// LandUse classifies a cell's dominant land cover.
type LandUse string

const (
	LandUseUrban     LandUse = "Urban"
	LandUseSuburban  LandUse = "Suburban"
	LandUseRural     LandUse = "Rural"
	LandUseWaterbody LandUse = "Waterbody"
)

// Climate holds the per-cell climate record. Temperature is degrees Celsius,
// precipitation is an mm/month-shaped quantity, the extreme-event index is a
// 0-100 propensity score.
type Climate struct {
	Temperature       float64 `json:"temperature"`
	Precipitation     float64 `json:"precipitation"`
	ExtremeEventIndex float64 `json:"extreme_event_index"`
}

// Geography holds terrain-derived attributes. Elevation is meters.
type Geography struct {
	Elevation   float64 `json:"elevation"`
	LandUse     LandUse `json:"land_use"`
	IsCoastal   bool    `json:"is_coastal"`
	IsWaterBody bool    `json:"is_water_body"`
}

// Socioeconomic scores are on a 0-100 scale.
type Socioeconomic struct {
	PopulationDensity float64 `json:"population_density"`
	EconomicIndex     float64 `json:"economic_index"`
}

// Infrastructure scores are on a 0-100 scale.
type Infrastructure struct {
	RoadDensity float64 `json:"road_density"`
	WaterAccess float64 `json:"water_access"`
}

// Vulnerability scores are on a 0-100 scale; higher means more vulnerable
// (social) or better governed (governance).
type Vulnerability struct {
	SocialIndex     float64 `json:"social_index"`
	GovernanceIndex float64 `json:"governance_index"`
}

// Dimensions is the five-dimension feature record of a context tensor.
type Dimensions struct {
	Climate        Climate        `json:"climate"`
	Geography      Geography      `json:"geography"`
	Socioeconomic  Socioeconomic  `json:"socioeconomic"`
	Infrastructure Infrastructure `json:"infrastructure"`
	Vulnerability  Vulnerability  `json:"vulnerability"`
}

// RiskScores is the hazard x exposure x vulnerability decomposition plus the
// composite. TotalRisk is always within [0, 100].
type RiskScores struct {
	Hazard        float64 `json:"hazard"`
	Exposure      float64 `json:"exposure"`
	Vulnerability float64 `json:"vulnerability"`
	TotalRisk     float64 `json:"total_risk"`
}

// ContextTensor pairs a cell's dimensions with its derived risk scores.
// Source records where the dimensions came from: "procedural" or "provider".
type ContextTensor struct {
	Dimensions Dimensions `json:"dimensions"`
	Scores     RiskScores `json:"scores"`
	Source     string     `json:"source"`
}

// HexCell is one fully resolved cell of a grid analysis. Cells are
// request-local value objects: built once, never mutated, discarded with the
// request.
type HexCell struct {
	ID         string          `json:"id"`
	Resolution int             `json:"resolution"`
	Center     LatLng          `json:"center"`
	Boundary   []BoundaryPoint `json:"boundary"`
	Tensor     ContextTensor   `json:"tensor"`
	Actions    []ActionItem    `json:"actions"`
}

// GlobalStats is the region-level reduction over all cells of an analysis.
type GlobalStats struct {
	// AvgRisk is the mean TotalRisk over non-water cells only.
	AvgRisk float64 `json:"avg_risk"`
	// HighRiskCells counts cells with TotalRisk above the reporting threshold.
	HighRiskCells int `json:"high_risk_cells"`
	// AffectedPopulation is a head-count estimate summed over every cell.
	AffectedPopulation int64 `json:"affected_population"`
	// TotalCost is an adaptation-cost estimate in currency units.
	TotalCost float64 `json:"total_cost"`
	// DominantLandUse is the majority land-use class over non-water cells.
	DominantLandUse LandUse `json:"dominant_land_use"`
}

// GridAnalysis is the aggregate result of one analysis request. It is fully
// determined by its inputs apart from ID and GeneratedAt, and is never
// persisted by this engine.
type GridAnalysis struct {
	ID          uuid.UUID   `json:"id"`
	RegionName  string      `json:"region_name"`
	Scenario    string      `json:"scenario"`
	TargetYear  int         `json:"target_year"`
	Scale       Scale       `json:"scale"`
	GridCenter  LatLng      `json:"grid_center"`
	Cells       []HexCell   `json:"cells"`
	Stats       GlobalStats `json:"global_stats"`
	GeneratedAt time.Time   `json:"generated_at"`
}

// RenderPayload is the shape handed to the renderer callback. The renderer
// projects boundary rings and tensor-derived color/height onto a map; this
// engine only guarantees the payload shape.
type RenderPayload struct {
	Location     string       `json:"location"`
	GridAnalysis GridAnalysis `json:"gridAnalysis"`
}
