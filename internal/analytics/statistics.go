// Package analytics computes per-part statistical reports (descriptive,
// trend, seasonality, volatility, data quality) and derives the cross-part
// performance leaderboard.
package analytics

import (
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/TejaswiBhavani/EVStockMaster/internal/contracts"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/mathx"
)

const (
	minTrendRecords       = 2
	minSeasonalityRecords = 30
	recentWindow          = 30
	daysPerYear           = 365
)

// Analyzer computes statistics reports over demand history.
type Analyzer struct {
	log zerolog.Logger
	now func() time.Time
}

// NewAnalyzer creates an analyzer.
func NewAnalyzer(log zerolog.Logger) *Analyzer {
	return &Analyzer{
		log: log.With().Str("component", "analytics").Logger(),
		now: time.Now,
	}
}

// Analyze produces the full statistics report for one part's history.
// It returns ErrNoData when the history is empty; every other degraded
// condition is reported inside the result, never as an error.
func (a *Analyzer) Analyze(history []contracts.DemandRecord) (*contracts.StatisticsReport, error) {
	if len(history) == 0 {
		return nil, contracts.ErrNoData
	}

	sorted := make([]contracts.DemandRecord, len(history))
	copy(sorted, history)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	demand := contracts.Demands(sorted)

	report := &contracts.StatisticsReport{
		PartName:     sorted[0].PartName,
		AnalysisDate: a.now(),
		Period: contracts.DataPeriod{
			StartDate: sorted[0].Date,
			EndDate:   sorted[len(sorted)-1].Date,
			TotalDays: int(sorted[len(sorted)-1].Date.Sub(sorted[0].Date).Hours()/24) + 1,
		},
		Basic:       basicStatistics(demand),
		Seasonality: analyzeSeasonality(sorted),
		Volatility:  analyzeVolatility(demand),
		Quality:     analyzeDataQuality(demand),
	}
	report.Trend = analyzeTrend(demand, report.Basic.Mean)
	report.Recent = analyzeRecent(demand)

	a.log.Debug().
		Str("part", report.PartName).
		Int("records", report.Basic.Count).
		Float64("mean", report.Basic.Mean).
		Str("volatility", report.Volatility.Level).
		Str("quality", report.Quality.Grade).
		Msg("statistics computed")

	return report, nil
}

// basicStatistics computes descriptive statistics over the demand column.
func basicStatistics(demand []float64) contracts.BasicStatistics {
	mean := mathx.Mean(demand)
	std := mathx.Std(demand)
	q25 := mathx.Quantile(demand, 0.25)
	q75 := mathx.Quantile(demand, 0.75)

	stats := contracts.BasicStatistics{
		Count:  len(demand),
		Mean:   mean,
		Median: mathx.Median(demand),
		Std:    std,
		Min:    mathx.Min(demand),
		Max:    mathx.Max(demand),
		Q25:    q25,
		Q75:    q75,
		IQR:    q75 - q25,
	}
	stats.Range = stats.Max - stats.Min
	if mean > 0 {
		stats.CV = std / mean
	}
	return stats
}

// analyzeTrend fits demand against a 0..N-1 index. Fewer than two
// records degrade to an insufficient-data marker.
func analyzeTrend(demand []float64, mean float64) contracts.TrendAnalysis {
	if len(demand) < minTrendRecords {
		return contracts.TrendAnalysis{Insufficient: true}
	}

	x := make([]float64, len(demand))
	for i := range x {
		x[i] = float64(i)
	}
	fit := mathx.Linregress(x, demand)

	trend := contracts.TrendAnalysis{
		Slope:     fit.Slope,
		Intercept: fit.Intercept,
		RSquared:  fit.RValue * fit.RValue,
		PValue:    fit.PValue,
	}

	switch {
	case fit.Slope > 0:
		trend.Direction = "increasing"
	case fit.Slope < 0:
		trend.Direction = "decreasing"
	default:
		trend.Direction = "stable"
	}

	if mean > 0 {
		trend.AnnualGrowthRate = fit.Slope * daysPerYear / mean * 100
	}

	return trend
}

// analyzeRecent summarizes the trailing 30 records. The trend label
// comes from the sign of a one-degree fit over that window.
func analyzeRecent(demand []float64) contracts.RecentPerformance {
	recent := demand
	if len(recent) > recentWindow {
		recent = recent[len(recent)-recentWindow:]
	}

	perf := contracts.RecentPerformance{
		Mean:  mathx.Mean(recent),
		Std:   mathx.Std(recent),
		Trend: "declining",
	}

	if len(recent) > 1 {
		x := make([]float64, len(recent))
		for i := range x {
			x[i] = float64(i)
		}
		if mathx.Linregress(x, recent).Slope > 0 {
			perf.Trend = "improving"
		}
	}

	return perf
}
