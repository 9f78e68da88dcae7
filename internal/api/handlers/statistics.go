package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/TejaswiBhavani/EVStockMaster/internal/analytics"
	"github.com/TejaswiBhavani/EVStockMaster/internal/contracts"
	"github.com/TejaswiBhavani/EVStockMaster/internal/store"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/logger"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/redis"
)

// StatsHandler serves statistics reports and the parts leaderboard.
// Responses are cached in Redis when it is enabled; statistics only
// change when the dataset is regenerated, so cache keys carry the
// dataset generation.
type StatsHandler struct {
	source   store.DemandSource
	analyzer *analytics.Analyzer
	cache    *redis.Cache
	logger   *logger.Logger
}

// NewStatsHandler creates a new statistics handler.
func NewStatsHandler(source store.DemandSource, analyzer *analytics.Analyzer, cache *redis.Cache, log *logger.Logger) *StatsHandler {
	return &StatsHandler{
		source:   source,
		analyzer: analyzer,
		cache:    cache,
		logger:   log,
	}
}

// GetStatistics returns the full statistics report for one part.
// GET /api/parts/{part}/statistics
func (h *StatsHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	part := mux.Vars(r)["part"]

	var report contracts.StatisticsReport
	key := statisticsCacheKey(h.source.Generation(), part)
	err := h.cache.GetOrSet(r.Context(), key, &report, redis.TTLMedium, func() (interface{}, error) {
		history, err := h.source.Part(r.Context(), part)
		if err != nil {
			return nil, err
		}
		rep, err := h.analyzer.Analyze(history)
		if err != nil {
			return nil, err
		}
		return rep, nil
	})
	if err != nil {
		if errors.Is(err, contracts.ErrNoData) {
			respondError(w, http.StatusNotFound, "Unknown part: "+part)
			return
		}
		h.logger.WithError(err).WithField("part", part).Error("Failed to compute statistics")
		respondError(w, http.StatusInternalServerError, "Failed to compute statistics")
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// GetLeaderboard ranks all parts by the requested metric.
// GET /api/leaderboard?sort_by=avg_demand
func (h *StatsHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	sortBy, err := contracts.ParseSortMetric(r.URL.Query().Get("sort_by"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var entries []contracts.LeaderboardEntry
	key := leaderboardCacheKey(h.source.Generation(), sortBy)
	err = h.cache.GetOrSet(r.Context(), key, &entries, redis.TTLMedium, func() (interface{}, error) {
		records, err := h.source.All(r.Context())
		if err != nil {
			return nil, err
		}
		return h.analyzer.Leaderboard(records, sortBy), nil
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to build leaderboard")
		respondError(w, http.StatusInternalServerError, "Failed to build leaderboard")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"sort_by": string(sortBy),
		"count":   len(entries),
		"entries": entries,
	})
}

// GetCompare contrasts two parts on demand level, growth and stability.
// GET /api/compare?part1=Battery+Pack&part2=Electric+Motor
func (h *StatsHandler) GetCompare(w http.ResponseWriter, r *http.Request) {
	part1 := r.URL.Query().Get("part1")
	part2 := r.URL.Query().Get("part2")
	if part1 == "" || part2 == "" {
		respondError(w, http.StatusBadRequest, "part1 and part2 are required")
		return
	}

	records, err := h.source.All(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to load demand")
		respondError(w, http.StatusInternalServerError, "Failed to load demand")
		return
	}

	cmp, err := h.analyzer.Compare(records, part1, part2)
	if err != nil {
		if errors.Is(err, contracts.ErrNoData) {
			respondError(w, http.StatusNotFound, "Unknown part in comparison")
			return
		}
		h.logger.WithError(err).Error("Failed to compare parts")
		respondError(w, http.StatusInternalServerError, "Failed to compare parts")
		return
	}

	respondJSON(w, http.StatusOK, cmp)
}

// EfficiencyRequest maps part names to their current stock levels.
type EfficiencyRequest struct {
	StockLevels map[string]float64 `json:"stock_levels"`
}

// PostEfficiency computes inventory efficiency metrics for the posted
// stock levels. Parts absent from the history are skipped.
// POST /api/efficiency
func (h *StatsHandler) PostEfficiency(w http.ResponseWriter, r *http.Request) {
	var req EfficiencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(req.StockLevels) == 0 {
		respondError(w, http.StatusBadRequest, "stock_levels is required")
		return
	}

	records, err := h.source.All(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to load demand")
		respondError(w, http.StatusInternalServerError, "Failed to load demand")
		return
	}

	metrics := h.analyzer.Efficiency(records, req.StockLevels)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":   len(metrics),
		"metrics": metrics,
	})
}

// Cache keys carry the dataset generation: regenerating the dataset
// moves every reader to fresh keys, and the old entries age out via
// their TTL without explicit deletes.
func statisticsCacheKey(generation uint64, part string) string {
	return fmt.Sprintf("statistics:%d:%s", generation, part)
}

func leaderboardCacheKey(generation uint64, sortBy contracts.SortMetric) string {
	return fmt.Sprintf("leaderboard:%d:%s", generation, sortBy)
}
