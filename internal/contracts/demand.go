package contracts

import "time"

// DemandRecord is one day of demand history for a part.
// A part's history is ordered by date, one record per day.
type DemandRecord struct {
	PartName string    `json:"part_name"`
	Date     time.Time `json:"date"`
	Demand   int       `json:"demand"`
	LeadTime int       `json:"lead_time"` // supplier lead time in days
}

// PartConfig describes the demand characteristics of one catalog part.
type PartConfig struct {
	Name                string  `json:"name"`
	BaseDemand          float64 `json:"base_demand"`
	TrendSlope          float64 `json:"trend_slope"` // units per year
	SeasonalityStrength float64 `json:"seasonality_strength"`
	NoiseLevel          float64 `json:"noise_level"`
}

// DefaultCatalog returns the fixed EV part catalog with realistic
// demand parameters per part.
func DefaultCatalog() []PartConfig {
	return []PartConfig{
		{Name: "Battery Pack", BaseDemand: 500, TrendSlope: 25, SeasonalityStrength: 150, NoiseLevel: 50},
		{Name: "Electric Motor", BaseDemand: 800, TrendSlope: 40, SeasonalityStrength: 200, NoiseLevel: 80},
		{Name: "Charging Port", BaseDemand: 1200, TrendSlope: 60, SeasonalityStrength: 300, NoiseLevel: 120},
		{Name: "Control Unit", BaseDemand: 600, TrendSlope: 30, SeasonalityStrength: 180, NoiseLevel: 60},
		{Name: "Cooling System", BaseDemand: 400, TrendSlope: 20, SeasonalityStrength: 120, NoiseLevel: 40},
	}
}

// BaseLeadTime returns the typical supplier lead time for a part.
// Unknown parts default to 10 days.
func BaseLeadTime(partName string) float64 {
	switch partName {
	case "Battery Pack":
		return 14
	case "Electric Motor":
		return 10
	case "Charging Port":
		return 7
	case "Control Unit":
		return 12
	case "Cooling System":
		return 8
	default:
		return 10
	}
}

// FilterPart returns the records belonging to one part, in input order.
func FilterPart(records []DemandRecord, partName string) []DemandRecord {
	var out []DemandRecord
	for _, r := range records {
		if r.PartName == partName {
			out = append(out, r)
		}
	}
	return out
}

// PartNames returns the distinct part names in first-seen order.
func PartNames(records []DemandRecord) []string {
	seen := make(map[string]bool)
	var names []string
	for _, r := range records {
		if !seen[r.PartName] {
			seen[r.PartName] = true
			names = append(names, r.PartName)
		}
	}
	return names
}

// Demands extracts the demand column as floats.
func Demands(records []DemandRecord) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = float64(r.Demand)
	}
	return out
}
