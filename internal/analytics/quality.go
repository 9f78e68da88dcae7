package analytics

import (
	"github.com/TejaswiBhavani/EVStockMaster/internal/contracts"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/mathx"
)

// analyzeDataQuality scores the usability of a demand series:
// completeness, Tukey-fence outliers, zero-demand days, negative and
// extreme values, combined into a weighted quality score.
func analyzeDataQuality(demand []float64) contracts.DataQuality {
	n := len(demand)
	if n == 0 {
		return contracts.DataQuality{Grade: "Poor"}
	}

	// Demand records are dense integers; a loaded row is never null, so
	// completeness only drops when the series itself is empty.
	completeness := 1.0

	q25 := mathx.Quantile(demand, 0.25)
	q75 := mathx.Quantile(demand, 0.75)
	iqr := q75 - q25
	lowerBound := q25 - 1.5*iqr
	upperBound := q75 + 1.5*iqr

	p99 := mathx.Quantile(demand, 0.99)

	var outliers, zeros, negatives, extremes int
	for _, d := range demand {
		if d < lowerBound || d > upperBound {
			outliers++
		}
		if d == 0 {
			zeros++
		}
		if d < 0 {
			negatives++
		}
		if d > p99*3 {
			extremes++
		}
	}

	outlierRate := float64(outliers) / float64(n)
	zeroRate := float64(zeros) / float64(n)
	negativeRate := float64(negatives) / float64(n)

	score := completeness*0.4 +
		(1-outlierRate)*0.3 +
		(1-zeroRate)*0.2 +
		(1-negativeRate)*0.1

	return contracts.DataQuality{
		CompletenessRate: completeness,
		OutlierRate:      outlierRate,
		ZeroDemandRate:   zeroRate,
		NegativeValues:   negatives,
		ExtremeValues:    extremes,
		QualityScore:     score,
		Grade:            qualityGrade(score),
	}
}

// qualityGrade maps a quality score to a letter grade.
func qualityGrade(score float64) string {
	switch {
	case score >= 0.9:
		return "Excellent"
	case score >= 0.7:
		return "Good"
	case score >= 0.5:
		return "Fair"
	default:
		return "Poor"
	}
}
