// Package forecast implements simple-moving-average demand forecasting
// with trend and seasonal projection, plus forecast accuracy metrics and
// seasonality detection.
package forecast

import (
	"math"
	"sort"

	"github.com/rs/zerolog"

	"github.com/TejaswiBhavani/EVStockMaster/internal/contracts"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/mathx"
)

const (
	// MinWindow and MaxWindow bound the moving-average window and the
	// forecast horizon. Out-of-range values are clamped, never rejected:
	// a forecasting utility favors availability over strict validation.
	MinWindow = 7
	MaxWindow = 90

	confidenceZ = 1.96 // 95% interval
)

// Forecaster computes SMA forecasts over demand history.
type Forecaster struct {
	log zerolog.Logger
}

// New creates a forecaster.
func New(log zerolog.Logger) *Forecaster {
	return &Forecaster{
		log: log.With().Str("component", "forecast").Logger(),
	}
}

// Forecast builds the combined historical + projected frame for one
// part's history. The result has len(history)+horizon rows: historical
// rows carry demand and rolling means, projected rows carry forecast
// values with 95% confidence bounds. Empty history yields an empty
// result.
func (f *Forecaster) Forecast(history []contracts.DemandRecord, windowSize, horizon int) *contracts.ForecastResult {
	windowSize = clampWindow(windowSize)
	horizon = clampWindow(horizon)

	result := &contracts.ForecastResult{
		WindowSize: windowSize,
		Horizon:    horizon,
	}
	if len(history) == 0 {
		return result
	}

	sorted := make([]contracts.DemandRecord, len(history))
	copy(sorted, history)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	result.PartName = sorted[0].PartName
	demand := contracts.Demands(sorted)

	shortWindow := windowSize / 2
	if shortWindow < MinWindow {
		shortWindow = MinWindow
	}
	longWindow := windowSize * 2
	if longWindow > MaxWindow {
		longWindow = MaxWindow
	}

	sma := rollingMean(demand, windowSize)
	smaShort := rollingMean(demand, shortWindow)
	smaLong := rollingMean(demand, longWindow)
	rollingStd := rollingSampleStd(demand, windowSize)

	points := make([]contracts.ForecastPoint, 0, len(sorted)+horizon)
	for i, rec := range sorted {
		points = append(points, contracts.ForecastPoint{
			PartName:   rec.PartName,
			Date:       rec.Date,
			Demand:     contracts.Float(demand[i]),
			SMA:        contracts.Float(sma[i]),
			SMAShort:   contracts.Float(smaShort[i]),
			SMALong:    contracts.Float(smaLong[i]),
			RollingStd: rollingStd[i],
		})
	}

	lastSMA := sma[len(sma)-1]
	lastStd := rollingStd[len(rollingStd)-1]

	// Fit a trend line over the trailing window of smoothed values
	var trendSlope, rValue float64
	if len(sorted) >= windowSize {
		recent := sma[len(sma)-windowSize:]
		x := make([]float64, len(recent))
		for i := range x {
			x[i] = float64(i)
		}
		fit := mathx.Linregress(x, recent)
		trendSlope = fit.Slope
		rValue = fit.RValue
	}

	lastDate := sorted[len(sorted)-1].Date
	for i := 0; i < horizon; i++ {
		base := lastSMA + trendSlope*float64(i)
		seasonal := 0.1 * math.Sin(2*math.Pi*float64(i)/365.25)
		value := math.Max(base*(1+seasonal), 0)

		upper := value + confidenceZ*lastStd
		lower := math.Max(value-confidenceZ*lastStd, 0)

		points = append(points, contracts.ForecastPoint{
			PartName:      result.PartName,
			Date:          lastDate.AddDate(0, 0, i+1),
			RollingStd:    lastStd,
			Forecast:      contracts.Float(value),
			ForecastUpper: contracts.Float(upper),
			ForecastLower: contracts.Float(lower),
		})
	}

	result.Points = points
	result.TrendSlope = trendSlope
	result.TrendStrength = math.Abs(rValue)
	result.ForecastConfidence = math.Min(1.0, math.Max(0.1, math.Abs(rValue)))

	f.log.Debug().
		Str("part", result.PartName).
		Int("window", windowSize).
		Int("horizon", horizon).
		Float64("trend_slope", trendSlope).
		Float64("last_sma", lastSMA).
		Time("last_date", lastDate).
		Msg("forecast generated")

	return result
}

// clampWindow forces a window/horizon into [MinWindow, MaxWindow].
func clampWindow(w int) int {
	if w < MinWindow {
		return MinWindow
	}
	if w > MaxWindow {
		return MaxWindow
	}
	return w
}

// rollingMean computes a trailing moving average with minimum period 1:
// the first window-1 values average over the observations seen so far.
func rollingMean(xs []float64, window int) []float64 {
	out := make([]float64, len(xs))
	var sum float64
	for i := range xs {
		sum += xs[i]
		if i >= window {
			sum -= xs[i-window]
		}
		n := i + 1
		if n > window {
			n = window
		}
		out[i] = sum / float64(n)
	}
	return out
}

// rollingSampleStd computes a trailing sample standard deviation with
// minimum period 1. A window holding a single observation reports 0 so
// every row carries a numeric value.
func rollingSampleStd(xs []float64, window int) []float64 {
	out := make([]float64, len(xs))
	for i := range xs {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		out[i] = mathx.Std(xs[start : i+1])
	}
	return out
}
