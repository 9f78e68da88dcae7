package contracts

import "fmt"

// SortMetric selects the leaderboard ranking column.
type SortMetric string

const (
	SortByAvgDemand    SortMetric = "avg_demand"
	SortByGrowthRate   SortMetric = "growth_rate"
	SortByVolatility   SortMetric = "volatility"
	SortByQualityScore SortMetric = "quality_score"
)

// ParseSortMetric validates a user-supplied sort key.
func ParseSortMetric(s string) (SortMetric, error) {
	switch SortMetric(s) {
	case SortByAvgDemand, SortByGrowthRate, SortByVolatility, SortByQualityScore:
		return SortMetric(s), nil
	case "":
		return SortByAvgDemand, nil
	default:
		return "", fmt.Errorf("unknown sort metric %q", s)
	}
}

// LeaderboardEntry is one ranked row of the part performance board.
type LeaderboardEntry struct {
	Rank          int     `json:"rank"`
	Medal         string  `json:"medal"` // 🥇🥈🥉 for the top three, else empty
	PartName      string  `json:"part_name"`
	AvgDemand     float64 `json:"avg_demand"`
	GrowthRate    float64 `json:"growth_rate"`
	Volatility    float64 `json:"volatility"`
	QualityScore  float64 `json:"quality_score"`
	TrendStrength float64 `json:"trend_strength"` // R² of the demand trend fit
	DataPoints    int     `json:"data_points"`
}
