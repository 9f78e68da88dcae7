package contracts

import (
	"errors"
	"time"
)

// ErrNoData is returned when a part has no historical records at all.
var ErrNoData = errors.New("no data available for the specified part")

// StatisticsReport is a per-part analytical snapshot. Sub-analyses that
// lack enough data degrade independently via their Insufficient flag;
// the report as a whole is still usable.
type StatisticsReport struct {
	PartName     string              `json:"part_name"`
	AnalysisDate time.Time           `json:"analysis_date"`
	Period       DataPeriod          `json:"data_period"`
	Basic        BasicStatistics     `json:"basic_statistics"`
	Trend        TrendAnalysis       `json:"trend_analysis"`
	Seasonality  SeasonalityAnalysis `json:"seasonality_analysis"`
	Volatility   VolatilityAnalysis  `json:"volatility_analysis"`
	Quality      DataQuality         `json:"data_quality"`
	Recent       RecentPerformance   `json:"recent_performance"`
}

// DataPeriod describes the covered date range.
type DataPeriod struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	TotalDays int       `json:"total_days"`
}

// BasicStatistics holds descriptive statistics over the demand column.
type BasicStatistics struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Range  float64 `json:"range"`
	Q25    float64 `json:"q25"`
	Q75    float64 `json:"q75"`
	IQR    float64 `json:"iqr"`
	CV     float64 `json:"cv"` // std/mean, 0 when mean is 0
}

// TrendAnalysis holds the OLS regression of demand against time.
// Insufficient is set when fewer than two records exist.
type TrendAnalysis struct {
	Insufficient     bool    `json:"insufficient,omitempty"`
	Slope            float64 `json:"slope"`
	Intercept        float64 `json:"intercept"`
	RSquared         float64 `json:"r_squared"`
	PValue           float64 `json:"p_value"`
	Direction        string  `json:"trend_direction"` // increasing, decreasing, stable
	AnnualGrowthRate float64 `json:"annual_growth_rate"`
}

// SeasonalityAnalysis groups demand by calendar buckets.
// Insufficient is set when fewer than 30 records exist.
type SeasonalityAnalysis struct {
	Insufficient bool               `json:"insufficient,omitempty"`
	Monthly      MonthlySeasonality `json:"monthly_seasonality"`
	Weekly       WeeklySeasonality  `json:"weekly_seasonality"`
	Quarterly    QuarterlyPatterns  `json:"quarterly_patterns"`
}

// MonthlySeasonality summarizes the month-of-year demand pattern.
type MonthlySeasonality struct {
	CV        float64    `json:"coefficient_of_variation"`
	PeakMonth time.Month `json:"peak_month"`
	LowMonth  time.Month `json:"low_month"`
	Amplitude float64    `json:"seasonal_amplitude"`
}

// WeeklySeasonality summarizes the day-of-week demand pattern.
type WeeklySeasonality struct {
	CV          float64      `json:"coefficient_of_variation"`
	PeakWeekday time.Weekday `json:"peak_weekday"`
	LowWeekday  time.Weekday `json:"low_weekday"`
	Amplitude   float64      `json:"weekly_amplitude"`
}

// QuarterlyPatterns holds the average demand per calendar quarter.
// A quarter absent from the data is nil.
type QuarterlyPatterns struct {
	Q1 *float64 `json:"q1_avg"`
	Q2 *float64 `json:"q2_avg"`
	Q3 *float64 `json:"q3_avg"`
	Q4 *float64 `json:"q4_avg"`
}

// VolatilityAnalysis describes demand variability.
type VolatilityAnalysis struct {
	OverallCV   float64                   `json:"overall_coefficient_of_variation"`
	Level       string                    `json:"volatility_level"` // Low, Medium, High
	Rolling     map[int]RollingVolatility `json:"rolling_volatility"`
	DailyChange DailyChangeStats          `json:"daily_change_analysis"`
}

// RollingVolatility summarizes the rolling CV at one window size.
type RollingVolatility struct {
	AvgCV     float64 `json:"avg_cv"`
	MaxCV     float64 `json:"max_cv"`
	MinCV     float64 `json:"min_cv"`
	CurrentCV float64 `json:"current_cv"`
}

// DailyChangeStats summarizes day-over-day demand differences.
type DailyChangeStats struct {
	Insufficient    bool    `json:"insufficient,omitempty"`
	AvgChange       float64 `json:"avg_daily_change"`
	StdChange       float64 `json:"std_daily_change"`
	MaxIncrease     float64 `json:"max_daily_increase"`
	MaxDecrease     float64 `json:"max_daily_decrease"`
	VolatilityScore float64 `json:"volatility_score"`
}

// DataQuality scores the usability of a part's history.
type DataQuality struct {
	CompletenessRate float64 `json:"completeness_rate"`
	OutlierRate      float64 `json:"outlier_rate"`
	ZeroDemandRate   float64 `json:"zero_demand_rate"`
	NegativeValues   int     `json:"negative_values"`
	ExtremeValues    int     `json:"extremely_high_values"`
	QualityScore     float64 `json:"quality_score"`
	Grade            string  `json:"quality_grade"` // Excellent, Good, Fair, Poor
}

// RecentPerformance summarizes the trailing 30 records.
type RecentPerformance struct {
	Mean  float64 `json:"recent_mean"`
	Std   float64 `json:"recent_std"`
	Trend string  `json:"recent_trend"` // improving, declining
}
