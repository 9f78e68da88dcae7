package analytics

import (
	"time"

	"github.com/TejaswiBhavani/EVStockMaster/internal/contracts"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/mathx"
)

// analyzeSeasonality groups demand by calendar month, weekday and
// quarter. Fewer than 30 records degrade to an insufficient marker.
func analyzeSeasonality(history []contracts.DemandRecord) contracts.SeasonalityAnalysis {
	if len(history) < minSeasonalityRecords {
		return contracts.SeasonalityAnalysis{Insufficient: true}
	}

	byMonth := make(map[int][]float64)
	byWeekday := make(map[int][]float64)
	byQuarter := make(map[int][]float64)

	for _, r := range history {
		d := float64(r.Demand)
		month := int(r.Date.Month())
		byMonth[month] = append(byMonth[month], d)
		byWeekday[int(r.Date.Weekday())] = append(byWeekday[int(r.Date.Weekday())], d)
		quarter := (month-1)/3 + 1
		byQuarter[quarter] = append(byQuarter[quarter], d)
	}

	monthMeans := bucketMeans(byMonth)
	weekdayMeans := bucketMeans(byWeekday)

	peakMonth, lowMonth := peakAndLow(monthMeans)
	peakWeekday, lowWeekday := peakAndLow(weekdayMeans)

	result := contracts.SeasonalityAnalysis{
		Monthly: contracts.MonthlySeasonality{
			CV:        avgBucketCV(byMonth),
			PeakMonth: time.Month(peakMonth),
			LowMonth:  time.Month(lowMonth),
			Amplitude: amplitude(monthMeans),
		},
		Weekly: contracts.WeeklySeasonality{
			CV:          avgBucketCV(byWeekday),
			PeakWeekday: time.Weekday(peakWeekday),
			LowWeekday:  time.Weekday(lowWeekday),
			Amplitude:   amplitude(weekdayMeans),
		},
	}

	quarters := []**float64{&result.Quarterly.Q1, &result.Quarterly.Q2, &result.Quarterly.Q3, &result.Quarterly.Q4}
	for q := 1; q <= 4; q++ {
		if vals, ok := byQuarter[q]; ok {
			*quarters[q-1] = contracts.Float(mathx.Mean(vals))
		}
	}

	return result
}

// bucketMeans returns each bucket's mean demand keyed by bucket id.
func bucketMeans(buckets map[int][]float64) map[int]float64 {
	means := make(map[int]float64, len(buckets))
	for k, vals := range buckets {
		means[k] = mathx.Mean(vals)
	}
	return means
}

// avgBucketCV averages the per-bucket coefficient of variation.
// Buckets with a single observation have no defined sample std and are
// skipped.
func avgBucketCV(buckets map[int][]float64) float64 {
	var cvs []float64
	for _, vals := range buckets {
		if len(vals) < 2 {
			continue
		}
		m := mathx.Mean(vals)
		if m == 0 {
			continue
		}
		cvs = append(cvs, mathx.Std(vals)/m)
	}
	return mathx.Mean(cvs)
}

// peakAndLow returns the bucket ids with the highest and lowest mean.
func peakAndLow(means map[int]float64) (peak, low int) {
	first := true
	for k, m := range means {
		if first {
			peak, low = k, k
			first = false
			continue
		}
		if m > means[peak] {
			peak = k
		}
		if m < means[low] {
			low = k
		}
	}
	return peak, low
}

// amplitude is (max bucket mean - min bucket mean) / overall bucket mean.
func amplitude(means map[int]float64) float64 {
	if len(means) == 0 {
		return 0
	}
	vals := make([]float64, 0, len(means))
	for _, m := range means {
		vals = append(vals, m)
	}
	overall := mathx.Mean(vals)
	if overall == 0 {
		return 0
	}
	return (mathx.Max(vals) - mathx.Min(vals)) / overall
}
