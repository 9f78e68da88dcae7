package analytics

import (
	"math"

	"github.com/TejaswiBhavani/EVStockMaster/internal/contracts"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/mathx"
)

// rollingCVWindows are the window sizes for rolling volatility buckets.
// A bucket is only computed when the series is at least that long.
var rollingCVWindows = []int{7, 14, 30}

// analyzeVolatility measures demand variability: overall CV with a
// Low/Medium/High classification, rolling CV at several windows, and
// day-over-day change statistics.
func analyzeVolatility(demand []float64) contracts.VolatilityAnalysis {
	mean := mathx.Mean(demand)

	var overallCV float64
	if mean > 0 {
		overallCV = mathx.Std(demand) / mean
	}

	result := contracts.VolatilityAnalysis{
		OverallCV: overallCV,
		Level:     classifyVolatility(overallCV),
		Rolling:   make(map[int]contracts.RollingVolatility),
	}

	for _, window := range rollingCVWindows {
		if len(demand) < window {
			continue
		}
		cvs := rollingCV(demand, window)
		if len(cvs) == 0 {
			continue
		}
		result.Rolling[window] = contracts.RollingVolatility{
			AvgCV:     mathx.Mean(cvs),
			MaxCV:     mathx.Max(cvs),
			MinCV:     mathx.Min(cvs),
			CurrentCV: cvs[len(cvs)-1],
		}
	}

	result.DailyChange = dailyChangeStats(demand, mean)

	return result
}

// classifyVolatility maps overall CV to a level.
func classifyVolatility(cv float64) string {
	switch {
	case cv < 0.2:
		return "Low"
	case cv < 0.5:
		return "Medium"
	default:
		return "High"
	}
}

// rollingCV computes std/mean over full trailing windows only.
func rollingCV(demand []float64, window int) []float64 {
	var cvs []float64
	for i := window - 1; i < len(demand); i++ {
		win := demand[i-window+1 : i+1]
		m := mathx.Mean(win)
		if m == 0 {
			continue
		}
		cvs = append(cvs, mathx.Std(win)/m)
	}
	return cvs
}

// dailyChangeStats summarizes first differences of the demand series.
func dailyChangeStats(demand []float64, mean float64) contracts.DailyChangeStats {
	if len(demand) < 2 {
		return contracts.DailyChangeStats{Insufficient: true}
	}

	diffs := make([]float64, len(demand)-1)
	for i := 1; i < len(demand); i++ {
		diffs[i-1] = demand[i] - demand[i-1]
	}

	stats := contracts.DailyChangeStats{
		AvgChange:   mathx.Mean(diffs),
		StdChange:   mathx.Std(diffs),
		MaxIncrease: mathx.Max(diffs),
		MaxDecrease: mathx.Min(diffs),
	}
	if mean > 0 {
		stats.VolatilityScore = math.Abs(stats.StdChange / mean)
	}
	return stats
}
