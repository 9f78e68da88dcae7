package contracts

// StockStatus classifies the inventory position of a part.
type StockStatus string

const (
	StatusCritical StockStatus = "Critical"
	StatusWarning  StockStatus = "Warning"
	StatusHealthy  StockStatus = "Healthy"
	StatusUnknown  StockStatus = "Unknown"
)

// Priority returns a numeric urgency score, higher is more urgent.
func (s StockStatus) Priority() int {
	switch s {
	case StatusCritical:
		return 3
	case StatusWarning:
		return 2
	case StatusHealthy:
		return 1
	default:
		return 0
	}
}

// InsightMetrics holds the numeric inputs and outputs of a stock
// recommendation.
type InsightMetrics struct {
	CurrentStock             float64 `json:"current_stock"`
	AvgDailyDemand           float64 `json:"avg_daily_demand"`
	TotalForecastedDemand    float64 `json:"total_forecasted_demand"`
	DaysOfStock              float64 `json:"days_of_stock"`
	SafetyStock              float64 `json:"safety_stock"`
	ReorderThresholdDays     int     `json:"reorder_threshold_days"`
	RecommendedOrderQuantity float64 `json:"recommended_order_quantity"`
}

// InsightResult is a stock-status recommendation for one part. It is
// recomputed on every request and never persisted.
type InsightResult struct {
	Status         StockStatus    `json:"status"`
	Recommendation string         `json:"recommendation"`
	Details        string         `json:"details"`
	Metrics        InsightMetrics `json:"metrics"`
}

// ReorderRecommendation is one row of the multi-part reorder report.
type ReorderRecommendation struct {
	PartName         string      `json:"part_name"`
	CurrentStock     float64     `json:"current_stock"`
	Status           StockStatus `json:"status"`
	Recommendation   string      `json:"recommendation"`
	DaysOfStock      float64     `json:"days_of_stock"`
	RecommendedOrder float64     `json:"recommended_order"`
	Priority         int         `json:"priority"`
}
