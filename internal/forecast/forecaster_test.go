package forecast

import (
	"math"
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

func TestForecaster_Forecast_Shape(t *testing.T) {
	f := New(zerolog.Nop())
	history := makeHistory("Battery Pack", 120, func(i int) int { return 500 + i })

	result := f.Forecast(history, 30, 14)

	require.Len(t, result.Points, 120+14)
	assert.Equal(t, "Battery Pack", result.PartName)
	assert.Equal(t, 30, result.WindowSize)
	assert.Equal(t, 14, result.Horizon)

	// Historical rows carry demand, projected rows carry forecasts
	for i, p := range result.Points {
		if i < 120 {
			assert.NotNil(t, p.Demand, "row %d should be historical", i)
			assert.Nil(t, p.Forecast)
		} else {
			assert.Nil(t, p.Demand, "row %d should be projected", i)
			assert.NotNil(t, p.Forecast)
			assert.NotNil(t, p.ForecastUpper)
			assert.NotNil(t, p.ForecastLower)
		}
	}

	// The projection continues the date axis with no gap
	lastHist := result.Points[119].Date
	assert.Equal(t, lastHist.AddDate(0, 0, 1), result.Points[120].Date)
	assert.Equal(t, lastHist.AddDate(0, 0, 14), result.Points[len(result.Points)-1].Date)
}

func TestForecaster_Forecast_WindowClamping(t *testing.T) {
	f := New(zerolog.Nop())
	history := makeHistory("Battery Pack", 100, func(i int) int { return 500 })

	tests := []struct {
		name           string
		window, wantW  int
		horizon, wantH int
	}{
		{"below minimum", 3, MinWindow, 1, MinWindow},
		{"above maximum", 500, MaxWindow, 365, MaxWindow},
		{"in range", 30, 30, 14, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := f.Forecast(history, tt.window, tt.horizon)
			assert.Equal(t, tt.wantW, result.WindowSize)
			assert.Equal(t, tt.wantH, result.Horizon)
			assert.Len(t, result.Points, 100+tt.wantH)
		})
	}
}

func TestForecaster_Forecast_MinPeriods(t *testing.T) {
	f := New(zerolog.Nop())
	history := makeHistory("Battery Pack", 10, func(i int) int { return (i + 1) * 10 })

	result := f.Forecast(history, 30, 7)

	// With min period 1 the first SMA equals the first observation and
	// every historical row has numeric smoothing values.
	first := result.Points[0]
	require.NotNil(t, first.SMA)
	assert.InDelta(t, 10.0, *first.SMA, 1e-9)
	assert.Zero(t, first.RollingStd, "a single observation has no spread")

	second := result.Points[1]
	require.NotNil(t, second.SMA)
	assert.InDelta(t, 15.0, *second.SMA, 1e-9)
	assert.Greater(t, second.RollingStd, 0.0)

	for i, p := range result.Points[:10] {
		assert.NotNil(t, p.SMA, "row %d", i)
		assert.NotNil(t, p.SMAShort, "row %d", i)
		assert.NotNil(t, p.SMALong, "row %d", i)
		assert.False(t, math.IsNaN(p.RollingStd), "row %d", i)
	}
}

func TestForecaster_Forecast_ConstantSeries(t *testing.T) {
	f := New(zerolog.Nop())
	history := makeHistory("Battery Pack", 90, func(i int) int { return 500 })

	result := f.Forecast(history, 30, 10)

	assert.Zero(t, result.TrendSlope)
	assert.Zero(t, result.TrendStrength)
	assert.InDelta(t, 0.1, result.ForecastConfidence, 1e-9, "confidence floors at 0.1")

	// First projected day has no seasonal offset, so it equals the SMA
	firstForecast := result.Points[90]
	require.NotNil(t, firstForecast.Forecast)
	assert.InDelta(t, 500.0, *firstForecast.Forecast, 1e-9)

	for _, p := range result.Points[90:] {
		assert.GreaterOrEqual(t, *p.ForecastLower, 0.0)
		assert.LessOrEqual(t, *p.ForecastLower, *p.Forecast)
		assert.GreaterOrEqual(t, *p.ForecastUpper, *p.Forecast)
	}
}

func TestForecaster_Forecast_ConfidenceBounds(t *testing.T) {
	f := New(zerolog.Nop())
	history := makeHistory("Battery Pack", 100, func(i int) int {
		if i%2 == 0 {
			return 400
		}
		return 600
	})

	result := f.Forecast(history, 30, 5)

	lastStd := result.Points[99].RollingStd
	require.Greater(t, lastStd, 0.0)

	for _, p := range result.Points[100:] {
		assert.InDelta(t, *p.Forecast+1.96*lastStd, *p.ForecastUpper, 1e-9)
		assert.InDelta(t, math.Max(*p.Forecast-1.96*lastStd, 0), *p.ForecastLower, 1e-9)
		assert.Equal(t, lastStd, p.RollingStd)
	}
}

func TestForecaster_Forecast_EmptyHistory(t *testing.T) {
	f := New(zerolog.Nop())

	result := f.Forecast(nil, 30, 14)

	assert.True(t, result.Empty())
	assert.Empty(t, result.ForecastValues())
}

func TestForecaster_Forecast_UnsortedInput(t *testing.T) {
	f := New(zerolog.Nop())
	history := makeHistory("Battery Pack", 50, func(i int) int { return 500 + i })

	// Reverse the input; output must still be date ordered
	reversed := make([]contracts.DemandRecord, len(history))
	for i, r := range history {
		reversed[len(history)-1-i] = r
	}

	result := f.Forecast(reversed, 30, 5)

	for i := 1; i < len(result.Points); i++ {
		assert.True(t, result.Points[i-1].Date.Before(result.Points[i].Date))
	}
}

func TestBacktest(t *testing.T) {
	f := New(zerolog.Nop())

	t.Run("constant series", func(t *testing.T) {
		history := makeHistory("Battery Pack", 120, func(i int) int { return 500 })

		m, err := f.Backtest(history, 30, 14)
		require.NoError(t, err)

		// A constant series forecasts almost perfectly; the residual
		// error comes from the seasonal projection factor.
		require.True(t, m.Valid)
		assert.Less(t, m.MAE, 10.0)
		assert.GreaterOrEqual(t, m.RMSE, m.MAE)
		assert.Less(t, m.MAPE, 3.0)
	})

	t.Run("holdout too large", func(t *testing.T) {
		history := makeHistory("Battery Pack", 20, func(i int) int { return 500 })

		_, err := f.Backtest(history, 30, 20)
		assert.Error(t, err)
	})

	t.Run("holdout below one", func(t *testing.T) {
		history := makeHistory("Battery Pack", 120, func(i int) int { return 500 })

		_, err := f.Backtest(history, 30, 0)
		assert.Error(t, err)
	})
}

func TestAccuracy(t *testing.T) {
	t.Run("perfect forecast", func(t *testing.T) {
		actual := []float64{10, 20, 30, 40}
		m := Accuracy(actual, actual)

		require.True(t, m.Valid)
		assert.Zero(t, m.MAE)
		assert.Zero(t, m.RMSE)
		assert.Zero(t, m.MAPE)
		assert.InDelta(t, 1.0, m.RSquared, 1e-12)
	})

	t.Run("constant offset", func(t *testing.T) {
		actual := []float64{10, 20, 30, 40}
		predicted := []float64{12, 22, 32, 42}
		m := Accuracy(actual, predicted)

		require.True(t, m.Valid)
		assert.InDelta(t, 2.0, m.MAE, 1e-12)
		assert.InDelta(t, 2.0, m.RMSE, 1e-12)
		assert.Less(t, m.RSquared, 1.0)
	})

	t.Run("nan pairs dropped", func(t *testing.T) {
		actual := []float64{10, math.NaN(), 30}
		predicted := []float64{10, 20, 30}
		m := Accuracy(actual, predicted)

		require.True(t, m.Valid)
		assert.Zero(t, m.MAE)
	})

	t.Run("empty", func(t *testing.T) {
		m := Accuracy(nil, nil)
		assert.False(t, m.Valid)
	})
}

func TestDetectSeasonality(t *testing.T) {
	t.Run("insufficient data", func(t *testing.T) {
		history := makeHistory("Battery Pack", 10, func(i int) int { return 500 })
		det := DetectSeasonality(history)
		assert.True(t, det.Insufficient)
	})

	t.Run("weekly pattern", func(t *testing.T) {
		history := makeHistory("Battery Pack", 70, func(i int) int { return 100 })
		for i := range history {
			wd := history[i].Date.Weekday()
			if wd == time.Saturday || wd == time.Sunday {
				history[i].Demand = 40
			}
		}

		det := DetectSeasonality(history)

		require.False(t, det.Insufficient)
		assert.True(t, det.Seasonal)
		assert.Equal(t, "weekly", det.Pattern)
		assert.Greater(t, det.WeeklyCV, 0.05)
	})

	t.Run("flat series", func(t *testing.T) {
		history := makeHistory("Battery Pack", 60, func(i int) int { return 500 })
		det := DetectSeasonality(history)

		require.False(t, det.Insufficient)
		assert.False(t, det.Seasonal)
	})
}
