package insight

import (
	"sort"

	"github.com/TejaswiBhavani/EVStockMaster/internal/contracts"
)

// StockPosition is the per-part input to the batch reorder report.
type StockPosition struct {
	CurrentStock         float64 `json:"current_stock"`
	ReorderThresholdDays int     `json:"reorder_threshold_days"`
}

// ReorderRecommendations evaluates every part with a known stock
// position and returns recommendations ordered most urgent first. Parts
// absent from either the history or the positions map are skipped.
func (e *Engine) ReorderRecommendations(records []contracts.DemandRecord, positions map[string]StockPosition) []contracts.ReorderRecommendation {
	var out []contracts.ReorderRecommendation

	for _, part := range contracts.PartNames(records) {
		pos, ok := positions[part]
		if !ok {
			continue
		}
		threshold := pos.ReorderThresholdDays
		if threshold < 1 {
			threshold = 14
		}

		frame := e.forecaster.Forecast(contracts.FilterPart(records, part), 30, threshold)
		result := e.Recommend(frame, pos.CurrentStock, threshold)

		out = append(out, contracts.ReorderRecommendation{
			PartName:         part,
			CurrentStock:     pos.CurrentStock,
			Status:           result.Status,
			Recommendation:   result.Recommendation,
			DaysOfStock:      result.Metrics.DaysOfStock,
			RecommendedOrder: result.Metrics.RecommendedOrderQuantity,
			Priority:         result.Status.Priority(),
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority > out[j].Priority })

	if len(out) > 0 {
		e.log.Info().Int("parts", len(out)).Msg("reorder recommendations generated")
	}

	return out
}
