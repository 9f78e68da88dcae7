package generator

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TejaswiBhavani/EVStockMaster/internal/contracts"
)

func testParams() Params {
	return Params{
		PartName:            "Battery Pack",
		StartDate:           time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		Years:               2,
		BaseDemand:          500,
		TrendSlope:          25,
		SeasonalityStrength: 150,
		NoiseLevel:          50,
		Seed:                42,
	}
}

func TestGenerator_Generate_Deterministic(t *testing.T) {
	g := New(zerolog.Nop())

	first := g.Generate(testParams())
	second := g.Generate(testParams())

	require.Equal(t, len(first), len(second))
	assert.Equal(t, first, second, "same params must yield the same series")
}

func TestGenerator_Generate_SeedChangesSeries(t *testing.T) {
	g := New(zerolog.Nop())

	p := testParams()
	base := g.Generate(p)

	p.Seed = 7
	other := g.Generate(p)

	assert.NotEqual(t, base, other, "a different seed must change the series")
}

func TestGenerator_Generate_Shape(t *testing.T) {
	g := New(zerolog.Nop())
	p := testParams()

	records := g.Generate(p)

	require.Len(t, records, p.Years*365+1)
	assert.Equal(t, p.StartDate, records[0].Date)
	assert.Equal(t, p.StartDate.AddDate(0, 0, p.Years*365), records[len(records)-1].Date)

	for i := 1; i < len(records); i++ {
		assert.Equal(t, records[i-1].Date.AddDate(0, 0, 1), records[i].Date, "dates must be consecutive")
	}
}

func TestGenerator_Generate_Bounds(t *testing.T) {
	g := New(zerolog.Nop())

	// Strong noise so the raw signal would go negative without clamping
	p := testParams()
	p.BaseDemand = 40
	p.NoiseLevel = 200

	for _, r := range g.Generate(p) {
		assert.GreaterOrEqual(t, r.Demand, 0, "demand is never negative")
		assert.GreaterOrEqual(t, r.LeadTime, 1, "lead time is at least one day")
	}
}

func TestGenerator_Generate_WeekendDip(t *testing.T) {
	g := New(zerolog.Nop())

	p := testParams()
	p.NoiseLevel = 0

	var weekdaySum, weekendSum float64
	var weekdays, weekends int
	for _, r := range g.Generate(p) {
		wd := r.Date.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			weekendSum += float64(r.Demand)
			weekends++
		} else {
			weekdaySum += float64(r.Demand)
			weekdays++
		}
	}

	require.NotZero(t, weekdays)
	require.NotZero(t, weekends)
	assert.Greater(t, weekdaySum/float64(weekdays), weekendSum/float64(weekends),
		"weekend demand averages below weekday demand")
}

func TestGenerator_GenerateCatalog(t *testing.T) {
	g := New(zerolog.Nop())
	start := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

	records := g.GenerateCatalog(start, 1, 42)

	catalog := contracts.DefaultCatalog()
	require.Len(t, records, len(catalog)*(365+1))

	parts := contracts.PartNames(records)
	require.Len(t, parts, len(catalog))
	for i, part := range catalog {
		assert.Equal(t, part.Name, parts[i], "parts appear in catalog order")
	}

	again := g.GenerateCatalog(start, 1, 42)
	assert.Equal(t, records, again, "catalog generation is deterministic")
}
