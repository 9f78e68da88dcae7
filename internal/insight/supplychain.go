package insight

import (
	"github.com/TejaswiBhavani/EVStockMaster/internal/contracts"
	"github.com/TejaswiBhavani/EVStockMaster/internal/forecast"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/mathx"
)

// SupplyChainReport bundles the stock insight with volatility,
// seasonality and lead-time exposure for one part.
type SupplyChainReport struct {
	PartName       string                        `json:"part_name"`
	Insight        contracts.InsightResult       `json:"insight"`
	Volatility     VolatilityProfile             `json:"volatility"`
	Seasonality    forecast.SeasonalityDetection `json:"seasonality"`
	LeadTimeDays   int                           `json:"lead_time_days"`
	LeadTimeDemand float64                       `json:"lead_time_demand"`
	LeadTimeRisk   string                        `json:"lead_time_risk"`
	OverallRisk    string                        `json:"overall_risk"`
}

// SupplyChain builds the full risk picture for one part: can current
// stock cover demand until a replenishment order would arrive, and how
// fragile is that position.
func (e *Engine) SupplyChain(history []contracts.DemandRecord, currentStock float64, leadTimeDays int) SupplyChainReport {
	if leadTimeDays < 1 {
		leadTimeDays = 1
	}

	frame := e.forecaster.Forecast(history, 30, leadTimeDays*2)
	insight := e.Recommend(frame, currentStock, leadTimeDays)
	volatility := e.DemandVolatility(history, 30)
	seasonality := forecast.DetectSeasonality(history)

	forecastValues := frame.ForecastValues()
	if len(forecastValues) > leadTimeDays {
		forecastValues = forecastValues[:leadTimeDays]
	}
	leadTimeDemand := mathx.Sum(forecastValues)

	leadTimeRisk := "Low"
	if currentStock < leadTimeDemand {
		leadTimeRisk = "High"
	}

	report := SupplyChainReport{
		PartName:       frame.PartName,
		Insight:        insight,
		Volatility:     volatility,
		Seasonality:    seasonality,
		LeadTimeDays:   leadTimeDays,
		LeadTimeDemand: roundTo(leadTimeDemand, 2),
		LeadTimeRisk:   leadTimeRisk,
		OverallRisk:    overallRisk(insight.Status, volatility.Level, leadTimeRisk),
	}

	e.log.Info().
		Str("part", report.PartName).
		Int("lead_time_days", leadTimeDays).
		Str("lead_time_risk", leadTimeRisk).
		Str("overall_risk", report.OverallRisk).
		Msg("supply chain report generated")

	return report
}

// overallRisk combines the three risk axes into a single grade.
func overallRisk(status contracts.StockStatus, volatilityLevel, leadTimeRisk string) string {
	score := 0

	switch status {
	case contracts.StatusCritical:
		score += 3
	case contracts.StatusWarning:
		score += 2
	default:
		score++
	}

	switch volatilityLevel {
	case "High":
		score += 3
	case "Medium":
		score += 2
	default:
		score++
	}

	if leadTimeRisk == "High" {
		score += 3
	} else {
		score++
	}

	switch {
	case score >= 7:
		return "High Risk"
	case score >= 5:
		return "Medium Risk"
	default:
		return "Low Risk"
	}
}
