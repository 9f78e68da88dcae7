package analytics

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TejaswiBhavani/EVStockMaster/internal/contracts"
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

func TestAnalyzer_Analyze_NoData(t *testing.T) {
	a := NewAnalyzer(zerolog.Nop())

	_, err := a.Analyze(nil)
	assert.ErrorIs(t, err, contracts.ErrNoData)
}

func TestAnalyzer_Analyze_ConstantSeries(t *testing.T) {
	a := NewAnalyzer(zerolog.Nop())
	history := makeHistory("Battery Pack", 90, func(i int) int { return 500 })

	report, err := a.Analyze(history)
	require.NoError(t, err)

	assert.Equal(t, "Battery Pack", report.PartName)
	assert.Equal(t, 90, report.Basic.Count)
	assert.Equal(t, 90, report.Period.TotalDays)

	assert.InDelta(t, 500.0, report.Basic.Mean, 1e-9)
	assert.InDelta(t, 500.0, report.Basic.Median, 1e-9)
	assert.Zero(t, report.Basic.Std)
	assert.Zero(t, report.Basic.CV)
	assert.Zero(t, report.Basic.Range)
	assert.Zero(t, report.Basic.IQR)

	assert.Zero(t, report.Trend.Slope)
	assert.Equal(t, "stable", report.Trend.Direction)
	assert.Zero(t, report.Trend.AnnualGrowthRate)

	assert.Equal(t, "Low", report.Volatility.Level)
	assert.Zero(t, report.Volatility.OverallCV)

	assert.Equal(t, "Excellent", report.Quality.Grade)
	assert.InDelta(t, 1.0, report.Quality.QualityScore, 1e-9)
}

func TestAnalyzer_Analyze_LinearGrowth(t *testing.T) {
	a := NewAnalyzer(zerolog.Nop())
	history := makeHistory("Electric Motor", 100, func(i int) int { return 100 + 2*i })

	report, err := a.Analyze(history)
	require.NoError(t, err)

	assert.Equal(t, "increasing", report.Trend.Direction)
	assert.InDelta(t, 2.0, report.Trend.Slope, 1e-9)
	assert.InDelta(t, 1.0, report.Trend.RSquared, 1e-9)
	assert.Greater(t, report.Trend.AnnualGrowthRate, 0.0)
	assert.Equal(t, "improving", report.Recent.Trend)
}

func TestAnalyzer_Analyze_Declining(t *testing.T) {
	a := NewAnalyzer(zerolog.Nop())
	history := makeHistory("Cooling System", 100, func(i int) int { return 1000 - 3*i })

	report, err := a.Analyze(history)
	require.NoError(t, err)

	assert.Equal(t, "decreasing", report.Trend.Direction)
	assert.Less(t, report.Trend.AnnualGrowthRate, 0.0)
	assert.Equal(t, "declining", report.Recent.Trend)
}

func TestAnalyzer_Analyze_SingleRecord(t *testing.T) {
	a := NewAnalyzer(zerolog.Nop())
	history := makeHistory("Control Unit", 1, func(i int) int { return 600 })

	report, err := a.Analyze(history)
	require.NoError(t, err)

	assert.True(t, report.Trend.Insufficient)
	assert.True(t, report.Seasonality.Insufficient)
	assert.True(t, report.Volatility.DailyChange.Insufficient)
	assert.Zero(t, report.Basic.Std)
}

func TestAnalyzer_Analyze_WeeklySeasonality(t *testing.T) {
	a := NewAnalyzer(zerolog.Nop())
	history := makeHistory("Charging Port", 90, func(i int) int { return 200 })
	for i := range history {
		wd := history[i].Date.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			history[i].Demand = 80
		}
	}

	report, err := a.Analyze(history)
	require.NoError(t, err)

	require.False(t, report.Seasonality.Insufficient)
	assert.Greater(t, report.Seasonality.Weekly.CV, 0.05)
	assert.NotEqual(t, report.Seasonality.Weekly.PeakWeekday, time.Saturday)
	assert.NotEqual(t, report.Seasonality.Weekly.PeakWeekday, time.Sunday)

	low := report.Seasonality.Weekly.LowWeekday
	assert.True(t, low == time.Saturday || low == time.Sunday)
}

func TestClassifyVolatility(t *testing.T) {
	tests := []struct {
		cv   float64
		want string
	}{
		{0.0, "Low"},
		{0.19, "Low"},
		{0.2, "Medium"},
		{0.49, "Medium"},
		{0.5, "High"},
		{1.5, "High"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyVolatility(tt.cv), "cv=%v", tt.cv)
	}
}

func TestAnalyzer_Analyze_VolatilityWindows(t *testing.T) {
	a := NewAnalyzer(zerolog.Nop())

	t.Run("long series gets all windows", func(t *testing.T) {
		history := makeHistory("Battery Pack", 60, func(i int) int { return 500 + (i%5)*20 })
		report, err := a.Analyze(history)
		require.NoError(t, err)

		assert.Contains(t, report.Volatility.Rolling, 7)
		assert.Contains(t, report.Volatility.Rolling, 14)
		assert.Contains(t, report.Volatility.Rolling, 30)
	})

	t.Run("short series skips large windows", func(t *testing.T) {
		history := makeHistory("Battery Pack", 10, func(i int) int { return 500 + (i%5)*20 })
		report, err := a.Analyze(history)
		require.NoError(t, err)

		assert.Contains(t, report.Volatility.Rolling, 7)
		assert.NotContains(t, report.Volatility.Rolling, 14)
		assert.NotContains(t, report.Volatility.Rolling, 30)
	})
}

func TestAnalyzeDataQuality(t *testing.T) {
	t.Run("clean series", func(t *testing.T) {
		demand := make([]float64, 100)
		for i := range demand {
			demand[i] = 500 + float64(i%10)
		}

		q := analyzeDataQuality(demand)

		assert.InDelta(t, 1.0, q.CompletenessRate, 1e-9)
		assert.Zero(t, q.NegativeValues)
		assert.Zero(t, q.ZeroDemandRate)
		assert.Equal(t, "Excellent", q.Grade)
	})

	t.Run("zero heavy series", func(t *testing.T) {
		demand := make([]float64, 100)
		for i := 0; i < 50; i++ {
			demand[i] = 500
		}
		// Remaining half stays zero

		q := analyzeDataQuality(demand)

		assert.InDelta(t, 0.5, q.ZeroDemandRate, 1e-9)
		assert.Less(t, q.QualityScore, 1.0)
	})

	t.Run("empty series", func(t *testing.T) {
		q := analyzeDataQuality(nil)
		assert.Equal(t, "Poor", q.Grade)
	})
}
