package forecast

import (
	"fmt"
	"math"
	"sort"

	"github.com/TejaswiBhavani/EVStockMaster/internal/contracts"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/mathx"
)

// AccuracyMetrics holds forecast error metrics over an evaluation window.
type AccuracyMetrics struct {
	Valid    bool    `json:"valid"` // false when no comparable pairs exist
	MAE      float64 `json:"mae"`
	MSE      float64 `json:"mse"`
	RMSE     float64 `json:"rmse"`
	MAPE     float64 `json:"mape"` // percent, denominator floored at 1
	RSquared float64 `json:"r_squared"`
}

// Accuracy compares actual observations against predicted values,
// pairwise. Pairs where either side is NaN are dropped; mismatched
// lengths compare up to the shorter slice.
func Accuracy(actual, predicted []float64) AccuracyMetrics {
	n := len(actual)
	if len(predicted) < n {
		n = len(predicted)
	}

	var a, p []float64
	for i := 0; i < n; i++ {
		if math.IsNaN(actual[i]) || math.IsNaN(predicted[i]) {
			continue
		}
		a = append(a, actual[i])
		p = append(p, predicted[i])
	}

	if len(a) == 0 {
		return AccuracyMetrics{}
	}

	var sumAbs, sumSq, sumPct float64
	for i := range a {
		diff := a[i] - p[i]
		sumAbs += math.Abs(diff)
		sumSq += diff * diff
		sumPct += math.Abs(diff / math.Max(a[i], 1))
	}

	count := float64(len(a))
	mae := sumAbs / count
	mse := sumSq / count

	mean := mathx.Mean(a)
	var ssTot float64
	for _, v := range a {
		d := v - mean
		ssTot += d * d
	}

	return AccuracyMetrics{
		Valid:    true,
		MAE:      mae,
		MSE:      mse,
		RMSE:     math.Sqrt(mse),
		MAPE:     sumPct / count * 100,
		RSquared: 1 - sumSq/math.Max(ssTot, 1),
	}
}

// Backtest withholds the trailing holdout days of a part's history,
// forecasts them from the remaining records and scores the projection
// against what actually happened.
func (f *Forecaster) Backtest(history []contracts.DemandRecord, windowSize, holdout int) (AccuracyMetrics, error) {
	if holdout < 1 {
		return AccuracyMetrics{}, fmt.Errorf("holdout must be at least 1")
	}
	if len(history) <= holdout {
		return AccuracyMetrics{}, fmt.Errorf("need more than %d records to hold out %d days", holdout, holdout)
	}

	sorted := make([]contracts.DemandRecord, len(history))
	copy(sorted, history)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	train := sorted[:len(sorted)-holdout]
	actual := contracts.Demands(sorted[len(sorted)-holdout:])

	// The horizon may be clamped above the holdout; Accuracy compares
	// up to the shorter slice either way.
	frame := f.Forecast(train, windowSize, holdout)
	predicted := frame.ForecastValues()
	if len(predicted) > holdout {
		predicted = predicted[:holdout]
	}

	return Accuracy(actual, predicted), nil
}
