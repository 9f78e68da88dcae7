package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/TejaswiBhavani/EVStockMaster/internal/forecast"
	"github.com/TejaswiBhavani/EVStockMaster/internal/store"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/logger"
)

// ForecastHandler serves per-part SMA forecasts.
type ForecastHandler struct {
	source     store.DemandSource
	forecaster *forecast.Forecaster
	logger     *logger.Logger
}

// NewForecastHandler creates a new forecast handler.
func NewForecastHandler(source store.DemandSource, forecaster *forecast.Forecaster, log *logger.Logger) *ForecastHandler {
	return &ForecastHandler{
		source:     source,
		forecaster: forecaster,
		logger:     log,
	}
}

// GetForecast returns the combined historical + projected frame.
// GET /api/parts/{part}/forecast?window=30&horizon=30
func (h *ForecastHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	part := mux.Vars(r)["part"]

	window, ok := queryInt(r, "window", 30)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid window")
		return
	}
	horizon, ok := queryInt(r, "horizon", 30)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid horizon")
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

	result := h.forecaster.Forecast(history, window, horizon)
	respondJSON(w, http.StatusOK, result)
}

// GetAccuracy backtests the forecast against the trailing holdout days.
// GET /api/parts/{part}/accuracy?window=30&holdout=30
func (h *ForecastHandler) GetAccuracy(w http.ResponseWriter, r *http.Request) {
	part := mux.Vars(r)["part"]

	window, ok := queryInt(r, "window", 30)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid window")
		return
	}
	holdout, ok := queryInt(r, "holdout", 30)
	if !ok || holdout < 1 {
		respondError(w, http.StatusBadRequest, "Invalid holdout")
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

	metrics, err := h.forecaster.Backtest(history, window, holdout)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"part_name": part,
		"window":    window,
		"holdout":   holdout,
		"accuracy":  metrics,
	})
}
