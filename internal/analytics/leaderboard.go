package analytics

import (
	"math"
	"sort"

	"github.com/TejaswiBhavani/EVStockMaster/internal/contracts"
)

// medals mark the top three leaderboard positions.
var medals = []string{"🥇", "🥈", "🥉"}

// Leaderboard analyzes every part in the combined history and ranks
// them by the chosen metric. Volatility ranks ascending (lower is
// better); every other metric ranks descending. Parts whose analysis
// fails are skipped.
func (a *Analyzer) Leaderboard(records []contracts.DemandRecord, sortBy contracts.SortMetric) []contracts.LeaderboardEntry {
	var entries []contracts.LeaderboardEntry

	for _, part := range contracts.PartNames(records) {
		report, err := a.Analyze(contracts.FilterPart(records, part))
		if err != nil {
			a.log.Warn().Str("part", part).Err(err).Msg("skipping part in leaderboard")
			continue
		}

		entries = append(entries, contracts.LeaderboardEntry{
			PartName:      part,
			AvgDemand:     roundTo(report.Basic.Mean, 1),
			GrowthRate:    roundTo(report.Trend.AnnualGrowthRate, 2),
			Volatility:    roundTo(report.Volatility.OverallCV, 3),
			QualityScore:  roundTo(report.Quality.QualityScore, 3),
			TrendStrength: roundTo(report.Trend.RSquared, 3),
			DataPoints:    report.Basic.Count,
		})
	}

	ascending := sortBy == contracts.SortByVolatility
	sort.SliceStable(entries, func(i, j int) bool {
		vi, vj := metricValue(entries[i], sortBy), metricValue(entries[j], sortBy)
		if ascending {
			return vi < vj
		}
		return vi > vj
	})

	for i := range entries {
		entries[i].Rank = i + 1
		if i < len(medals) {
			entries[i].Medal = medals[i]
		}
	}

	if len(entries) > 0 {
		a.log.Info().
			Int("parts", len(entries)).
			Str("sort_by", string(sortBy)).
			Str("top_part", entries[0].PartName).
			Msg("leaderboard generated")
	}

	return entries
}

// metricValue extracts the sort column from an entry.
func metricValue(e contracts.LeaderboardEntry, sortBy contracts.SortMetric) float64 {
	switch sortBy {
	case contracts.SortByGrowthRate:
		return e.GrowthRate
	case contracts.SortByVolatility:
		return e.Volatility
	case contracts.SortByQualityScore:
		return e.QualityScore
	default:
		return e.AvgDemand
	}
}

// roundTo rounds to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
