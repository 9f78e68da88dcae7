package analytics

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TejaswiBhavani/EVStockMaster/internal/contracts"
)

func leaderboardFixture() []contracts.DemandRecord {
	var records []contracts.DemandRecord
	// High steady demand
	records = append(records, makeHistory("Charging Port", 60, func(i int) int { return 1200 })...)
	// Medium demand, growing
	records = append(records, makeHistory("Electric Motor", 60, func(i int) int { return 800 + 5*i })...)
	// Low demand, noisy
	records = append(records, makeHistory("Cooling System", 60, func(i int) int {
		if i%2 == 0 {
			return 200
		}
		return 600
	})...)
	return records
}

func TestAnalyzer_Leaderboard_AvgDemand(t *testing.T) {
	a := NewAnalyzer(zerolog.Nop())

	entries := a.Leaderboard(leaderboardFixture(), contracts.SortByAvgDemand)

	require.Len(t, entries, 3)
	assert.Equal(t, "Charging Port", entries[0].PartName)

	for i, e := range entries {
		assert.Equal(t, i+1, e.Rank)
		if i > 0 {
			assert.GreaterOrEqual(t, entries[i-1].AvgDemand, e.AvgDemand, "descending by avg demand")
		}
	}

	assert.Equal(t, "🥇", entries[0].Medal)
	assert.Equal(t, "🥈", entries[1].Medal)
	assert.Equal(t, "🥉", entries[2].Medal)
}

func TestAnalyzer_Leaderboard_GrowthRate(t *testing.T) {
	a := NewAnalyzer(zerolog.Nop())

	entries := a.Leaderboard(leaderboardFixture(), contracts.SortByGrowthRate)

	require.Len(t, entries, 3)
	assert.Equal(t, "Electric Motor", entries[0].PartName, "the growing part ranks first")
}

func TestAnalyzer_Leaderboard_VolatilityAscending(t *testing.T) {
	a := NewAnalyzer(zerolog.Nop())

	entries := a.Leaderboard(leaderboardFixture(), contracts.SortByVolatility)

	require.Len(t, entries, 3)
	assert.Equal(t, "Charging Port", entries[0].PartName, "the steadiest part ranks first")
	assert.Equal(t, "Cooling System", entries[2].PartName, "the noisiest part ranks last")

	for i := 1; i < len(entries); i++ {
		assert.LessOrEqual(t, entries[i-1].Volatility, entries[i].Volatility, "ascending by volatility")
	}
}

func TestAnalyzer_Leaderboard_Empty(t *testing.T) {
	a := NewAnalyzer(zerolog.Nop())
	assert.Empty(t, a.Leaderboard(nil, contracts.SortByAvgDemand))
}

func TestAnalyzer_Compare(t *testing.T) {
	a := NewAnalyzer(zerolog.Nop())
	records := leaderboardFixture()

	cmp, err := a.Compare(records, "Charging Port", "Cooling System")
	require.NoError(t, err)

	assert.Equal(t, "Charging Port", cmp.HigherAvgDemand)
	assert.Equal(t, "Charging Port", cmp.MoreStable)
	assert.Greater(t, cmp.DemandDifference, 0.0)
	assert.Greater(t, cmp.DemandRatio, 1.0)
}

func TestAnalyzer_Compare_UnknownPart(t *testing.T) {
	a := NewAnalyzer(zerolog.Nop())

	_, err := a.Compare(leaderboardFixture(), "Charging Port", "Flux Capacitor")
	assert.ErrorIs(t, err, contracts.ErrNoData)
}

func TestAnalyzer_Efficiency(t *testing.T) {
	a := NewAnalyzer(zerolog.Nop())
	records := leaderboardFixture()

	metrics := a.Efficiency(records, map[string]float64{
		"Charging Port":  10000,
		"Cooling System": 500,
	})

	require.Len(t, metrics, 2, "parts without a stock level are skipped")

	for _, m := range metrics {
		assert.Greater(t, m.InventoryTurnover, 0.0)
		assert.Greater(t, m.DaysOfInventory, 0.0)
		assert.GreaterOrEqual(t, m.EstimatedServiceLevel, 0.0)
		assert.LessOrEqual(t, m.EstimatedServiceLevel, 1.0)
	}
}
