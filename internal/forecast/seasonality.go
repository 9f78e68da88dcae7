package forecast

import (
	"time"

	"github.com/TejaswiBhavani/EVStockMaster/internal/contracts"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/mathx"
)

// minSeasonalityRecords is the minimum history length for a meaningful
// seasonal read.
const minSeasonalityRecords = 30

// SeasonalityDetection reports whether a demand series shows a seasonal
// pattern, and which calendar cycle dominates.
type SeasonalityDetection struct {
	Insufficient bool    `json:"insufficient,omitempty"`
	Seasonal     bool    `json:"seasonal"`
	Pattern      string  `json:"pattern"` // monthly or weekly
	Strength     float64 `json:"strength"`
	MonthlyCV    float64 `json:"monthly_cv"`
	WeeklyCV     float64 `json:"weekly_cv"`
}

// DetectSeasonality tests a part's history for monthly and weekly
// seasonality using the variation of calendar-group means.
func DetectSeasonality(history []contracts.DemandRecord) SeasonalityDetection {
	if len(history) < minSeasonalityRecords {
		return SeasonalityDetection{Insufficient: true}
	}

	monthlyMeans := groupMeans(history, func(d time.Time) int { return int(d.Month()) })
	weeklyMeans := groupMeans(history, func(d time.Time) int { return int(d.Weekday()) })

	monthlyCV := meansCV(monthlyMeans)
	weeklyCV := meansCV(weeklyMeans)

	det := SeasonalityDetection{
		Seasonal:  monthlyCV > 0.1 || weeklyCV > 0.05,
		MonthlyCV: monthlyCV,
		WeeklyCV:  weeklyCV,
	}
	if monthlyCV > weeklyCV {
		det.Pattern = "monthly"
		det.Strength = monthlyCV
	} else {
		det.Pattern = "weekly"
		det.Strength = weeklyCV
	}
	return det
}

// groupMeans buckets demand by a calendar key and returns each bucket's
// mean, in key order.
func groupMeans(history []contracts.DemandRecord, key func(time.Time) int) []float64 {
	groups := make(map[int][]float64)
	var keys []int
	for _, r := range history {
		k := key(r.Date)
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], float64(r.Demand))
	}

	means := make([]float64, 0, len(keys))
	for _, k := range keys {
		means = append(means, mathx.Mean(groups[k]))
	}
	return means
}

// meansCV is the coefficient of variation across group means.
func meansCV(means []float64) float64 {
	m := mathx.Mean(means)
	if m == 0 {
		return 0
	}
	return mathx.Std(means) / m
}
