package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/TejaswiBhavani/EVStockMaster/pkg/logger"
)

// MarketHandler serves the market-feed endpoints. These return
// placeholder payloads until the upstream feeds are integrated.
type MarketHandler struct {
	logger *logger.Logger
}

// NewMarketHandler creates a new market handler.
func NewMarketHandler(log *logger.Logger) *MarketHandler {
	return &MarketHandler{logger: log}
}

// Alert is one market alert item.
type Alert struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Symbol   string `json:"symbol,omitempty"`
	Region   string `json:"region,omitempty"`
	Title    string `json:"title"`
	Severity string `json:"severity"`
	TS       int64  `json:"ts"`
}

// GetAlerts returns the current market alerts.
// GET /api/alerts
func (h *MarketHandler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	now := time.Now().Unix()
	respondJSON(w, http.StatusOK, []Alert{
		{ID: "a1", Type: "delivery", Symbol: "TSLA", Title: "Delivery beat", Severity: "info", TS: now},
		{ID: "a2", Type: "policy", Region: "EU", Title: "Battery subsidy update", Severity: "medium", TS: now},
	})
}

// GetSentiment returns a sentiment snapshot for a symbol.
// GET /api/sentiment?symbol=TSLA
func (h *MarketHandler) GetSentiment(w http.ResponseWriter, r *http.Request) {
	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		respondError(w, http.StatusBadRequest, "symbol is required")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"symbol":   strings.ToUpper(symbol),
		"score":    0.12,
		"trend":    "rising",
		"keywords": []string{"LFP", "NACS", "4680"},
	})
}

// PostCorrelations returns a correlation matrix for the given symbols.
// POST /api/correlations
func (h *MarketHandler) PostCorrelations(w http.ResponseWriter, r *http.Request) {
	var symbols []string
	if err := json.NewDecoder(r.Body).Decode(&symbols); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: expected a JSON array of symbols")
		return
	}

	n := len(symbols)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		for j := range matrix[i] {
			if i == j {
				matrix[i][j] = 1.0
			} else {
				matrix[i][j] = 0.3
			}
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"symbols": symbols,
		"matrix":  matrix,
	})
}
