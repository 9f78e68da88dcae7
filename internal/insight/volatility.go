package insight

import (
	"math"

	"github.com/TejaswiBhavani/EVStockMaster/internal/contracts"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/mathx"
)

// baseSafetyStockDays is the safety-stock coverage for a perfectly
// stable part; the volatility multiplier scales it up.
const baseSafetyStockDays = 14

// VolatilityProfile classifies how erratic a part's demand is and what
// that implies for safety-stock sizing.
type VolatilityProfile struct {
	Insufficient               bool    `json:"insufficient_data,omitempty"`
	Level                      string  `json:"volatility_level"`
	RecentCV                   float64 `json:"recent_cv"`
	OverallCV                  float64 `json:"overall_cv"`
	SafetyMultiplier           float64 `json:"safety_stock_multiplier"`
	RecommendedSafetyStockDays int     `json:"recommended_safety_stock_days"`
}

// DemandVolatility grades recent demand variability for one part and
// recommends a safety-stock coverage in days. Window is the rolling CV
// window; series shorter than the window are reported as insufficient.
func (e *Engine) DemandVolatility(history []contracts.DemandRecord, window int) VolatilityProfile {
	if window < 2 {
		window = 30
	}
	demand := contracts.Demands(history)
	if len(demand) < window {
		return VolatilityProfile{Insufficient: true, Level: "Unknown", SafetyMultiplier: 1.5, RecommendedSafetyStockDays: baseSafetyStockDays}
	}

	var cvs []float64
	for i := window - 1; i < len(demand); i++ {
		win := demand[i-window+1 : i+1]
		m := mathx.Mean(win)
		if m == 0 {
			continue
		}
		cvs = append(cvs, mathx.Std(win)/m)
	}
	if len(cvs) == 0 {
		return VolatilityProfile{Insufficient: true, Level: "Unknown", SafetyMultiplier: 1.5, RecommendedSafetyStockDays: baseSafetyStockDays}
	}

	recent := cvs
	if len(recent) > 30 {
		recent = recent[len(recent)-30:]
	}
	recentCV := mathx.Mean(recent)

	var overallCV float64
	if m := mathx.Mean(demand); m > 0 {
		overallCV = mathx.Std(demand) / m
	}

	level, multiplier := gradeVolatility(recentCV)

	return VolatilityProfile{
		Level:                      level,
		RecentCV:                   roundTo(recentCV, 3),
		OverallCV:                  roundTo(overallCV, 3),
		SafetyMultiplier:           multiplier,
		RecommendedSafetyStockDays: int(math.Round(baseSafetyStockDays * multiplier)),
	}
}

// gradeVolatility maps a recent CV to a level and safety multiplier.
func gradeVolatility(cv float64) (string, float64) {
	switch {
	case cv < 0.2:
		return "Low", 1.2
	case cv < 0.4:
		return "Medium", 1.5
	default:
		return "High", 2.0
	}
}
