package insight

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TejaswiBhavani/EVStockMaster/internal/contracts"
	"github.com/TejaswiBhavani/EVStockMaster/internal/forecast"
)

func makeHistory(part string, days int, demand func(i int) int) []contracts.DemandRecord {
	start := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	records := make([]contracts.DemandRecord, 0, days)
	for i := 0; i < days; i++ {
		records = append(records, contracts.DemandRecord{
			PartName: part,
			Date:     start.AddDate(0, 0, i),
			Demand:   demand(i),
			LeadTime: 10,
		})
	}
	return records
}

func newTestEngine() *Engine {
	return NewEngine(forecast.New(zerolog.Nop()), zerolog.Nop())
}

func constantFrame(t *testing.T, demand, days, horizon int) *contracts.ForecastResult {
	t.Helper()
	f := forecast.New(zerolog.Nop())
	history := makeHistory("Battery Pack", days, func(i int) int { return demand })
	return f.Forecast(history, 30, horizon)
}

func TestEngine_Recommend_Critical(t *testing.T) {
	e := newTestEngine()
	frame := constantFrame(t, 500, 90, 14)

	result := e.Recommend(frame, 0, 14)

	assert.Equal(t, contracts.StatusCritical, result.Status)
	assert.True(t, strings.HasPrefix(result.Recommendation, "URGENT: Order "))
	assert.Contains(t, result.Details, "insufficient to meet forecasted demand")
	assert.Contains(t, result.Details, "next 14 days")

	// With zero stock the safety-stock gap is the whole safety stock
	assert.InDelta(t, math.Round(result.Metrics.SafetyStock), result.Metrics.RecommendedOrderQuantity, 1e-9)
	assert.Zero(t, result.Metrics.DaysOfStock)
	assert.Equal(t, 14, result.Metrics.ReorderThresholdDays)
	assert.Greater(t, result.Metrics.TotalForecastedDemand, 0.0)
}

func TestEngine_Recommend_CriticalOrderExceedsMetric(t *testing.T) {
	e := newTestEngine()
	frame := constantFrame(t, 500, 90, 14)

	result := e.Recommend(frame, 100, 14)
	require.Equal(t, contracts.StatusCritical, result.Status)

	// The urgent order covers shortage plus safety stock, so the number
	// in the text exceeds the safety-stock gap metric.
	shortage := result.Metrics.TotalForecastedDemand - result.Metrics.CurrentStock
	urgent := int(shortage + result.Metrics.SafetyStock)
	assert.Contains(t, result.Recommendation, "Order")
	assert.Greater(t, float64(urgent), result.Metrics.RecommendedOrderQuantity)
}

func TestEngine_Recommend_Warning(t *testing.T) {
	e := newTestEngine()
	frame := constantFrame(t, 500, 90, 14)

	// Above forecasted demand (~7000) but below safety stock (~10500)
	result := e.Recommend(frame, 8000, 14)

	assert.Equal(t, contracts.StatusWarning, result.Status)
	assert.True(t, strings.HasPrefix(result.Recommendation, "Reorder recommended: "))
	assert.Contains(t, result.Details, "below safety stock")
	assert.InDelta(t, math.Round(result.Metrics.SafetyStock-8000), result.Metrics.RecommendedOrderQuantity, 1.0)
}

func TestEngine_Recommend_Healthy(t *testing.T) {
	e := newTestEngine()
	frame := constantFrame(t, 500, 90, 14)

	result := e.Recommend(frame, 50000, 14)

	assert.Equal(t, contracts.StatusHealthy, result.Status)
	assert.Equal(t, "No immediate action required", result.Recommendation)
	assert.Contains(t, result.Details, "adequate for current demand patterns")
	assert.Contains(t, result.Details, "50,000 units")

	// Stock above safety stock means nothing to order
	assert.Zero(t, result.Metrics.RecommendedOrderQuantity)

	// Roughly 100 days of cover at ~500 units/day
	assert.Greater(t, result.Metrics.DaysOfStock, 90.0)
	assert.Less(t, result.Metrics.DaysOfStock, 105.0)
}

func TestEngine_Recommend_EmptyFrame(t *testing.T) {
	e := newTestEngine()

	result := e.Recommend(&contracts.ForecastResult{}, 5000, 14)

	assert.Equal(t, contracts.StatusUnknown, result.Status)
	assert.Equal(t, "No data available for analysis", result.Recommendation)
	assert.Equal(t, "Please check data availability and try again.", result.Details)
}

func TestEngine_Recommend_HistoricalFallback(t *testing.T) {
	e := newTestEngine()

	// A frame with history but no projected rows falls back to the
	// trailing 30-day average.
	frame := &contracts.ForecastResult{PartName: "Battery Pack"}
	for i := 0; i < 60; i++ {
		frame.Points = append(frame.Points, contracts.ForecastPoint{
			PartName: "Battery Pack",
			Date:     time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Demand:   contracts.Float(100),
		})
	}

	result := e.Recommend(frame, 0, 14)

	assert.Equal(t, contracts.StatusCritical, result.Status)
	assert.InDelta(t, 100.0, result.Metrics.AvgDailyDemand, 1e-9)
	assert.InDelta(t, 1400.0, result.Metrics.TotalForecastedDemand, 1e-9)
	assert.InDelta(t, 2100.0, result.Metrics.SafetyStock, 1e-9)
}

func TestEngine_Recommend_NoUsableData(t *testing.T) {
	e := newTestEngine()

	// Rows exist but carry neither demand nor forecast values
	frame := &contracts.ForecastResult{
		PartName: "Battery Pack",
		Points:   []contracts.ForecastPoint{{PartName: "Battery Pack"}},
	}

	result := e.Recommend(frame, 5000, 14)

	assert.Equal(t, contracts.StatusUnknown, result.Status)
	assert.Equal(t, "Insufficient data for analysis", result.Recommendation)
	assert.Equal(t, "No historical or forecast data available.", result.Details)
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{5000, "5,000"},
		{1234567.4, "1,234,567"},
		{999.6, "1,000"},
		{-12345, "-12,345"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, groupThousands(tt.in), "in=%v", tt.in)
	}
}
