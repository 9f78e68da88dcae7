// Package insight turns forecast output and current stock levels into
// rule-based inventory recommendations.
package insight

import (
	"fmt"
	"math"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/TejaswiBhavani/EVStockMaster/internal/contracts"
	"github.com/TejaswiBhavani/EVStockMaster/internal/forecast"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/mathx"
)

// safetyFactor sizes the safety stock relative to the demand expected
// over the reorder window.
const safetyFactor = 1.5

// Engine applies stock-level business rules to forecast output.
type Engine struct {
	forecaster *forecast.Forecaster
	log        zerolog.Logger
}

// NewEngine creates an insight engine.
func NewEngine(forecaster *forecast.Forecaster, log zerolog.Logger) *Engine {
	return &Engine{
		forecaster: forecaster,
		log:        log.With().Str("component", "insight").Logger(),
	}
}

// Recommend classifies the stock position for one part given its
// forecast frame. The result is recomputed from scratch on every call.
func (e *Engine) Recommend(f *contracts.ForecastResult, currentStock float64, reorderThresholdDays int) contracts.InsightResult {
	if f.Empty() {
		return contracts.InsightResult{
			Status:         contracts.StatusUnknown,
			Recommendation: "No data available for analysis",
			Details:        "Please check data availability and try again.",
		}
	}

	var avgDailyDemand, totalForecasted float64

	forecastValues := f.ForecastValues()
	if len(forecastValues) == 0 {
		// Fall back to recent history when the frame has no projections
		historical := f.HistoricalDemand()
		if len(historical) == 0 {
			return contracts.InsightResult{
				Status:         contracts.StatusUnknown,
				Recommendation: "Insufficient data for analysis",
				Details:        "No historical or forecast data available.",
			}
		}
		if len(historical) > 30 {
			historical = historical[len(historical)-30:]
		}
		avgDailyDemand = mathx.Mean(historical)
		totalForecasted = avgDailyDemand * float64(reorderThresholdDays)
	} else {
		period := len(forecastValues)
		if period > reorderThresholdDays {
			period = reorderThresholdDays
		}
		window := forecastValues[:period]
		avgDailyDemand = mathx.Mean(window)
		totalForecasted = mathx.Sum(window)
	}

	daysOfStock := currentStock / math.Max(avgDailyDemand, 1)
	safetyStock := avgDailyDemand * float64(reorderThresholdDays) * safetyFactor

	status, recommendation, details := determineStatus(
		currentStock, totalForecasted, daysOfStock, float64(reorderThresholdDays), safetyStock)

	result := contracts.InsightResult{
		Status:         status,
		Recommendation: recommendation,
		Details:        details,
		Metrics: contracts.InsightMetrics{
			CurrentStock:          currentStock,
			AvgDailyDemand:        roundTo(avgDailyDemand, 2),
			TotalForecastedDemand: roundTo(totalForecasted, 2),
			DaysOfStock:           roundTo(daysOfStock, 1),
			SafetyStock:           roundTo(safetyStock, 2),
			ReorderThresholdDays:  reorderThresholdDays,
			// The numeric metric tracks the safety-stock gap only; the
			// Critical recommendation text intentionally adds the
			// shortage on top. The two figures differ on purpose.
			RecommendedOrderQuantity: math.Max(0, math.Round(safetyStock-currentStock)),
		},
	}

	e.log.Debug().
		Str("part", f.PartName).
		Str("status", string(status)).
		Float64("current_stock", currentStock).
		Float64("avg_daily_demand", avgDailyDemand).
		Float64("days_of_stock", daysOfStock).
		Msg("insight computed")

	return result
}

// determineStatus applies the business rules in priority order:
// Critical beats Warning beats Healthy.
func determineStatus(currentStock, totalForecasted, daysOfStock, thresholdDays, safetyStock float64) (contracts.StockStatus, string, string) {
	if currentStock < totalForecasted {
		shortage := totalForecasted - currentStock
		return contracts.StatusCritical,
			fmt.Sprintf("URGENT: Order %d units immediately", int(shortage+safetyStock)),
			fmt.Sprintf("Current stock (%s units) is insufficient to meet forecasted demand (%s units) over the next %d days. Risk of stockout in %.1f days.",
				groupThousands(currentStock), groupThousands(totalForecasted), int(thresholdDays), daysOfStock)
	}

	if currentStock < safetyStock {
		recommended := safetyStock - currentStock
		return contracts.StatusWarning,
			fmt.Sprintf("Reorder recommended: %d units", int(recommended)),
			fmt.Sprintf("Stock level (%s units) is below safety stock (%s units). Consider reordering to maintain adequate buffer for demand variability.",
				groupThousands(currentStock), groupThousands(safetyStock))
	}

	return contracts.StatusHealthy,
		"No immediate action required",
		fmt.Sprintf("Stock level (%s units) is adequate for current demand patterns. Sufficient inventory for %.1f days at current consumption rate.",
			groupThousands(currentStock), daysOfStock)
}

// groupThousands renders a rounded value with comma separators, e.g.
// 12345.6 -> "12,346".
func groupThousands(v float64) string {
	s := strconv.FormatInt(int64(math.Round(v)), 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// roundTo rounds to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
