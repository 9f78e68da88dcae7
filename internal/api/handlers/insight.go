package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/TejaswiBhavani/EVStockMaster/internal/contracts"
	"github.com/TejaswiBhavani/EVStockMaster/internal/forecast"
	"github.com/TejaswiBhavani/EVStockMaster/internal/insight"
	"github.com/TejaswiBhavani/EVStockMaster/internal/store"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/logger"
)

// InsightHandler serves stock recommendations and supply-chain reports.
type InsightHandler struct {
	source     store.DemandSource
	forecaster *forecast.Forecaster
	engine     *insight.Engine
	logger     *logger.Logger
}

// NewInsightHandler creates a new insight handler.
func NewInsightHandler(source store.DemandSource, forecaster *forecast.Forecaster, engine *insight.Engine, log *logger.Logger) *InsightHandler {
	return &InsightHandler{
		source:     source,
		forecaster: forecaster,
		engine:     engine,
		logger:     log,
	}
}

// GetInsight returns the stock recommendation for one part.
// GET /api/parts/{part}/insight?stock=5000&threshold=14&window=30
func (h *InsightHandler) GetInsight(w http.ResponseWriter, r *http.Request) {
	part := mux.Vars(r)["part"]

	stock, ok := queryFloat(r, "stock", 5000)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid stock")
		return
	}
	threshold, ok := queryInt(r, "threshold", 14)
	if !ok || threshold < 1 {
		respondError(w, http.StatusBadRequest, "Invalid threshold")
		return
	}
	window, ok := queryInt(r, "window", 30)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid window")
		return
	}

	history, err := h.source.Part(r.Context(), part)
	if err != nil {
		h.logger.WithError(err).WithField("part", part).Error("Failed to load demand")
		respondError(w, http.StatusInternalServerError, "Failed to load demand")
		return
	}
	if len(history) == 0 {
		respondError(w, http.StatusNotFound, "Unknown part: "+part)
		return
	}

	frame := h.forecaster.Forecast(history, window, threshold)
	result := h.engine.Recommend(frame, stock, threshold)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"part_name": part,
		"insight":   result,
	})
}

// GetSupplyChain returns the full risk picture for one part.
// GET /api/parts/{part}/supply-chain?stock=5000&lead_time=14
func (h *InsightHandler) GetSupplyChain(w http.ResponseWriter, r *http.Request) {
	part := mux.Vars(r)["part"]

	stock, ok := queryFloat(r, "stock", 5000)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid stock")
		return
	}
	leadTime, ok := queryInt(r, "lead_time", int(contracts.BaseLeadTime(part)))
	if !ok || leadTime < 1 {
		respondError(w, http.StatusBadRequest, "Invalid lead_time")
		return
	}

	history, err := h.source.Part(r.Context(), part)
	if err != nil {
		h.logger.WithError(err).WithField("part", part).Error("Failed to load demand")
		respondError(w, http.StatusInternalServerError, "Failed to load demand")
		return
	}
	if len(history) == 0 {
		respondError(w, http.StatusNotFound, "Unknown part: "+part)
		return
	}

	report := h.engine.SupplyChain(history, stock, leadTime)
	respondJSON(w, http.StatusOK, report)
}

// ReorderRequest carries the per-part stock positions to evaluate.
type ReorderRequest struct {
	Positions map[string]insight.StockPosition `json:"positions"`
}

// PostReorder evaluates every posted stock position and returns reorder
// recommendations ordered most urgent first.
// POST /api/reorder
func (h *InsightHandler) PostReorder(w http.ResponseWriter, r *http.Request) {
	var req ReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(req.Positions) == 0 {
		respondError(w, http.StatusBadRequest, "positions is required")
		return
	}

	records, err := h.source.All(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to load demand")
		respondError(w, http.StatusInternalServerError, "Failed to load demand")
		return
	}

	recommendations := h.engine.ReorderRecommendations(records, req.Positions)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":           len(recommendations),
		"recommendations": recommendations,
	})
}
