package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/TejaswiBhavani/EVStockMaster/internal/contracts"
	"github.com/TejaswiBhavani/EVStockMaster/internal/generator"
	"github.com/TejaswiBhavani/EVStockMaster/internal/store"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/config"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/logger"
)

// DataHandler serves the demand dataset and its regeneration endpoint.
type DataHandler struct {
	source *store.MemorySource
	gen    *generator.Generator
	csv    *store.CSVStore
	repo   *store.DemandRepository // nil when Postgres is not configured
	cfg    *config.Config
	logger *logger.Logger
}

// NewDataHandler creates a new data handler.
func NewDataHandler(source *store.MemorySource, gen *generator.Generator, csv *store.CSVStore, repo *store.DemandRepository, cfg *config.Config, log *logger.Logger) *DataHandler {
	return &DataHandler{
		source: source,
		gen:    gen,
		csv:    csv,
		repo:   repo,
		cfg:    cfg,
		logger: log,
	}
}

// GetParts returns the known part names.
// GET /api/parts
func (h *DataHandler) GetParts(w http.ResponseWriter, r *http.Request) {
	parts, err := h.source.Parts(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list parts")
		respondError(w, http.StatusInternalServerError, "Failed to list parts")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"parts": parts,
		"count": len(parts),
	})
}

// GetDemand returns the raw demand history for one part.
// GET /api/parts/{part}/demand
func (h *DataHandler) GetDemand(w http.ResponseWriter, r *http.Request) {
	part := mux.Vars(r)["part"]

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

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"part_name": part,
		"count":     len(history),
		"records":   history,
	})
}

// GenerateRequest optionally overrides the configured generation
// parameters.
type GenerateRequest struct {
	Seed      *int64  `json:"seed,omitempty"`
	Years     *int    `json:"years,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
}

// Generate rebuilds the synthetic dataset and persists it.
// POST /api/data/generate
func (h *DataHandler) Generate(w http.ResponseWriter, r *http.Request) {
	seed := h.cfg.Generator.Seed
	years := h.cfg.Generator.Years
	startDate := h.cfg.Generator.StartDate

	if r.Body != nil && r.ContentLength != 0 {
		var req GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}
		if req.Seed != nil {
			seed = *req.Seed
		}
		if req.Years != nil {
			years = *req.Years
		}
		if req.StartDate != nil {
			startDate = *req.StartDate
		}
	}

	if years < 1 {
		respondError(w, http.StatusBadRequest, "years must be at least 1")
		return
	}
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid start_date (expected YYYY-MM-DD)")
		return
	}

	records := h.gen.GenerateCatalog(start, years, seed)

	if err := h.csv.Save(records); err != nil {
		h.logger.WithError(err).Error("Failed to save demand cache")
		respondError(w, http.StatusInternalServerError, "Failed to save demand cache")
		return
	}
	if h.repo != nil {
		if err := h.repo.ReplaceAll(r.Context(), records); err != nil {
			h.logger.WithError(err).Warn("Failed to persist demand to Postgres")
		}
	}

	h.source.Replace(records)

	h.logger.WithFields(map[string]interface{}{
		"records": len(records),
		"seed":    seed,
		"years":   years,
	}).Info("Demand dataset regenerated")

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "success",
		"records":    len(records),
		"parts":      contracts.PartNames(records),
		"seed":       seed,
		"years":      years,
		"start_date": startDate,
	})
}
