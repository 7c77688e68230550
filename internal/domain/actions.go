package domain

import "fmt"

// ActionCategory splits the catalog into the two standard response families.
type ActionCategory string

const (
	ActionMitigation ActionCategory = "Mitigation"
	ActionAdaptation ActionCategory = "Adaptation"
)

// ActionItem is one read-only entry of the static action catalog.
type ActionItem struct {
	ID           string         `json:"id"`
	Category     ActionCategory `json:"category"`
	Icon         string         `json:"icon"`
	Title        string         `json:"title"`
	Measures     []string       `json:"measures"`
	CostEstimate float64        `json:"cost_estimate"`
	Timeline     string         `json:"timeline"`
}

// CatalogVersion identifies the action-catalog revision embedded in this
// build. Bump it whenever an entry changes.
const CatalogVersion = "2026.1"

// Catalog entry IDs. Recommendation rules reference these.
const (
	actionWaterTransport = "water-transport"
	actionUrbanFlood     = "urban-flood-management"
	actionCoastalDefense = "coastal-defense"
	actionReforestation  = "reforestation-buffer"
	actionFoodSecurity   = "food-security"
	actionHeatPlan       = "heat-action-plan"
	actionGridDecentral  = "grid-decentralization"
)

// A cell receives at most this many recommendations.
const maxActionsPerCell = 3

// highRiskActionThreshold triggers the defensive-infrastructure rule.
const highRiskActionThreshold = 70.0

var actionCatalog = []ActionItem{
	{
		ID:       actionWaterTransport,
		Category: ActionAdaptation,
		Icon:     "ferry",
		Title:    "Water-based transport corridors",
		Measures: []string{
			"Designate ferry and water-bus routes",
			"Build amphibious docking infrastructure",
			"Integrate waterway schedules with land transit",
		},
		CostEstimate: 8_500_000,
		Timeline:     "medium-term (3-7y)",
	},
	{
		ID:       actionUrbanFlood,
		Category: ActionAdaptation,
		Icon:     "droplet",
		Title:    "Urban flood management",
		Measures: []string{
			"Expand stormwater retention basins",
			"Deploy permeable pavement in flood-prone blocks",
			"Install early-warning river gauges",
		},
		CostEstimate: 12_000_000,
		Timeline:     "short-term (1-3y)",
	},
	{
		ID:       actionCoastalDefense,
		Category: ActionAdaptation,
		Icon:     "shield",
		Title:    "Coastal defense works",
		Measures: []string{
			"Reinforce sea walls and surge barriers",
			"Restore mangrove and wetland buffers",
			"Zone new construction away from the surge line",
		},
		CostEstimate: 45_000_000,
		Timeline:     "long-term (7-15y)",
	},
	{
		ID:       actionReforestation,
		Category: ActionMitigation,
		Icon:     "tree",
		Title:    "Reforestation buffer zones",
		Measures: []string{
			"Plant native-species shelter belts",
			"Contract landholders for buffer maintenance",
			"Monitor canopy cover by satellite",
		},
		CostEstimate: 3_200_000,
		Timeline:     "medium-term (3-7y)",
	},
	{
		ID:       actionFoodSecurity,
		Category: ActionAdaptation,
		Icon:     "wheat",
		Title:    "Food security program",
		Measures: []string{
			"Diversify staple crops toward drought-tolerant varieties",
			"Build community grain reserves",
			"Subsidize drip irrigation conversion",
		},
		CostEstimate: 5_600_000,
		Timeline:     "short-term (1-3y)",
	},
	{
		ID:       actionHeatPlan,
		Category: ActionAdaptation,
		Icon:     "thermometer",
		Title:    "Urban heat action plan",
		Measures: []string{
			"Open cooling centers in high-density districts",
			"Mandate cool-roof standards for new builds",
			"Expand street-tree canopy on arterial roads",
		},
		CostEstimate: 4_100_000,
		Timeline:     "short-term (1-3y)",
	},
	{
		ID:       actionGridDecentral,
		Category: ActionMitigation,
		Icon:     "zap",
		Title:    "Grid decentralization",
		Measures: []string{
			"Deploy neighborhood-scale solar microgrids",
			"Add battery storage at substation level",
			"Islanding controls for critical facilities",
		},
		CostEstimate: 18_000_000,
		Timeline:     "medium-term (3-7y)",
	},
}

var actionByID = func() map[string]ActionItem {
	m := make(map[string]ActionItem, len(actionCatalog))
	for _, a := range actionCatalog {
		m[a.ID] = a
	}
	return m
}()

// CatalogActions returns a copy of the full catalog in definition order.
func CatalogActions() []ActionItem {
	out := make([]ActionItem, len(actionCatalog))
	copy(out, actionCatalog)
	return out
}

// ValidateCatalog checks the static catalog for duplicate IDs and incomplete
// entries. Call once at startup, not per request.
func ValidateCatalog() error {
	seen := make(map[string]struct{}, len(actionCatalog))
	for _, a := range actionCatalog {
		if a.ID == "" {
			return fmt.Errorf("action catalog %s: entry %q has no id", CatalogVersion, a.Title)
		}
		if _, dup := seen[a.ID]; dup {
			return fmt.Errorf("action catalog %s: duplicate id %q", CatalogVersion, a.ID)
		}
		seen[a.ID] = struct{}{}
		if a.Category != ActionMitigation && a.Category != ActionAdaptation {
			return fmt.Errorf("action catalog %s: %q has invalid category %q", CatalogVersion, a.ID, a.Category)
		}
		if len(a.Measures) == 0 {
			return fmt.Errorf("action catalog %s: %q has no measures", CatalogVersion, a.ID)
		}
		if a.CostEstimate <= 0 {
			return fmt.Errorf("action catalog %s: %q has non-positive cost", CatalogVersion, a.ID)
		}
	}
	return nil
}

// RecommendActions selects at most three catalog entries for a cell. Rules
// fire in a fixed order; the water rule and the high-risk rule are mutually
// exclusive, the land-use rule fires independently. Duplicates are collapsed
// by ID before the list is truncated.
func RecommendActions(t ContextTensor) []ActionItem {
	var picks []string

	switch {
	case t.Dimensions.Geography.IsWaterBody:
		picks = append(picks, actionWaterTransport, actionUrbanFlood)
	case t.Scores.TotalRisk > highRiskActionThreshold:
		picks = append(picks, actionCoastalDefense, actionUrbanFlood)
	}

	switch t.Dimensions.Geography.LandUse {
	case LandUseRural:
		picks = append(picks, actionReforestation, actionFoodSecurity)
	case LandUseUrban:
		picks = append(picks, actionHeatPlan, actionGridDecentral)
	}

	seen := make(map[string]struct{}, len(picks))
	out := make([]ActionItem, 0, maxActionsPerCell)
	for _, id := range picks {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, actionByID[id])
		if len(out) == maxActionsPerCell {
			break
		}
	}
	return out
}
