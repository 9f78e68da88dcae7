package analytics

import (
	"math"

	"github.com/TejaswiBhavani/EVStockMaster/internal/contracts"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/mathx"
)

// Comparison contrasts two parts on demand level, growth and stability.
type Comparison struct {
	Parts                [2]string `json:"parts_compared"`
	HigherAvgDemand      string    `json:"higher_avg_demand"`
	DemandDifference     float64   `json:"demand_difference"`
	DemandRatio          float64   `json:"demand_ratio"`
	FasterGrowing        string    `json:"faster_growing"`
	GrowthDifference     float64   `json:"growth_difference"`
	MoreStable           string    `json:"more_stable"`
	VolatilityDifference float64   `json:"volatility_difference"`
}

// Compare analyzes two parts and reports which wins on each axis.
func (a *Analyzer) Compare(records []contracts.DemandRecord, part1, part2 string) (*Comparison, error) {
	stats1, err := a.Analyze(contracts.FilterPart(records, part1))
	if err != nil {
		return nil, err
	}
	stats2, err := a.Analyze(contracts.FilterPart(records, part2))
	if err != nil {
		return nil, err
	}

	cmp := &Comparison{
		Parts:                [2]string{part1, part2},
		HigherAvgDemand:      part2,
		DemandDifference:     math.Abs(stats1.Basic.Mean - stats2.Basic.Mean),
		DemandRatio:          stats1.Basic.Mean / math.Max(stats2.Basic.Mean, 1),
		FasterGrowing:        part2,
		GrowthDifference:     math.Abs(stats1.Trend.AnnualGrowthRate - stats2.Trend.AnnualGrowthRate),
		MoreStable:           part2,
		VolatilityDifference: math.Abs(stats1.Volatility.OverallCV - stats2.Volatility.OverallCV),
	}

	if stats1.Basic.Mean > stats2.Basic.Mean {
		cmp.HigherAvgDemand = part1
	}
	if stats1.Trend.AnnualGrowthRate > stats2.Trend.AnnualGrowthRate {
		cmp.FasterGrowing = part1
	}
	if stats1.Volatility.OverallCV < stats2.Volatility.OverallCV {
		cmp.MoreStable = part1
	}

	return cmp, nil
}

// EfficiencyMetrics holds inventory efficiency figures for one part
// given its current stock level.
type EfficiencyMetrics struct {
	PartName              string  `json:"part_name"`
	CurrentStock          float64 `json:"current_stock"`
	AvgDailyDemand        float64 `json:"avg_daily_demand"`
	InventoryTurnover     float64 `json:"inventory_turnover"`
	DaysOfInventory       float64 `json:"days_of_inventory"`
	EstimatedServiceLevel float64 `json:"estimated_service_level"`
	EfficiencyScore       float64 `json:"efficiency_score"`
}

// Efficiency computes turnover, days-of-inventory and an estimated
// service level for each part with a configured stock level. Parts
// absent from the history are skipped.
func (a *Analyzer) Efficiency(records []contracts.DemandRecord, stockLevels map[string]float64) []EfficiencyMetrics {
	var out []EfficiencyMetrics

	for _, part := range contracts.PartNames(records) {
		stock, ok := stockLevels[part]
		if !ok {
			continue
		}
		history := contracts.FilterPart(records, part)
		demand := contracts.Demands(history)
		avg := mathx.Mean(demand)

		turnover := avg * daysPerYear / math.Max(stock, 1)
		daysOfInventory := stock / math.Max(avg, 1)

		// Days where demand spikes beyond 1.5x the average are treated
		// as potential stockouts
		highDays := 0
		for _, d := range demand {
			if d > avg*1.5 {
				highDays++
			}
		}
		serviceLevel := 1 - float64(highDays)/float64(len(demand))

		out = append(out, EfficiencyMetrics{
			PartName:              part,
			CurrentStock:          stock,
			AvgDailyDemand:        roundTo(avg, 1),
			InventoryTurnover:     roundTo(turnover, 2),
			DaysOfInventory:       roundTo(daysOfInventory, 1),
			EstimatedServiceLevel: roundTo(serviceLevel, 3),
			EfficiencyScore:       roundTo(turnover*serviceLevel/math.Max(daysOfInventory, 1), 3),
		})
	}

	return out
}
