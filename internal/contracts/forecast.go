package contracts

import "time"

// ForecastPoint is one row of a forecast frame. Historical rows carry
// Demand/SMA values and nil forecast fields; projected rows carry
// forecast values and nil Demand/SMA fields. RollingStd is always set.
type ForecastPoint struct {
	PartName      string    `json:"part_name"`
	Date          time.Time `json:"date"`
	Demand        *float64  `json:"demand,omitempty"`
	SMA           *float64  `json:"sma,omitempty"`
	SMAShort      *float64  `json:"sma_short,omitempty"`
	SMALong       *float64  `json:"sma_long,omitempty"`
	RollingStd    float64   `json:"rolling_std"`
	Forecast      *float64  `json:"forecast,omitempty"`
	ForecastUpper *float64  `json:"forecast_upper,omitempty"`
	ForecastLower *float64  `json:"forecast_lower,omitempty"`
}

// ForecastResult is the combined historical + projected frame for one
// part, ordered by date with no gap at the boundary.
type ForecastResult struct {
	PartName           string          `json:"part_name"`
	WindowSize         int             `json:"window_size"`
	Horizon            int             `json:"horizon"`
	Points             []ForecastPoint `json:"points"`
	TrendSlope         float64         `json:"trend_slope"`
	TrendStrength      float64         `json:"trend_strength"`      // |r| of the SMA trend fit
	ForecastConfidence float64         `json:"forecast_confidence"` // clamped to [0.1, 1.0]
}

// Empty reports whether the result carries no rows at all.
func (f *ForecastResult) Empty() bool {
	return f == nil || len(f.Points) == 0
}

// HistoricalCount returns the number of rows with observed demand.
func (f *ForecastResult) HistoricalCount() int {
	n := 0
	for _, p := range f.Points {
		if p.Demand != nil {
			n++
		}
	}
	return n
}

// ForecastValues returns the non-nil forecast values in date order.
func (f *ForecastResult) ForecastValues() []float64 {
	if f == nil {
		return nil
	}
	var out []float64
	for _, p := range f.Points {
		if p.Forecast != nil {
			out = append(out, *p.Forecast)
		}
	}
	return out
}

// HistoricalDemand returns the non-nil observed demand values in date order.
func (f *ForecastResult) HistoricalDemand() []float64 {
	if f == nil {
		return nil
	}
	var out []float64
	for _, p := range f.Points {
		if p.Demand != nil {
			out = append(out, *p.Demand)
		}
	}
	return out
}

// Float returns a pointer to v, for building nullable point fields.
func Float(v float64) *float64 {
	return &v
}
