package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/TejaswiBhavani/EVStockMaster/internal/api/handlers"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/logger"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(
	dataHandler *handlers.DataHandler,
	forecastHandler *handlers.ForecastHandler,
	statsHandler *handlers.StatsHandler,
	insightHandler *handlers.InsightHandler,
	marketHandler *handlers.MarketHandler,
	streamHandler *handlers.StreamHandler,
	log *logger.Logger,
) http.Handler {
	r := mux.NewRouter()

	// Health check
	r.HandleFunc("/health", healthCheckHandler).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// Parts and demand data
	api.HandleFunc("/parts", dataHandler.GetParts).Methods("GET")
	api.HandleFunc("/parts/{part}/demand", dataHandler.GetDemand).Methods("GET")
	api.HandleFunc("/data/generate", dataHandler.Generate).Methods("POST")

	// Forecasting and analytics
	api.HandleFunc("/parts/{part}/forecast", forecastHandler.GetForecast).Methods("GET")
	api.HandleFunc("/parts/{part}/accuracy", forecastHandler.GetAccuracy).Methods("GET")
	api.HandleFunc("/parts/{part}/statistics", statsHandler.GetStatistics).Methods("GET")
	api.HandleFunc("/parts/{part}/insight", insightHandler.GetInsight).Methods("GET")
	api.HandleFunc("/parts/{part}/supply-chain", insightHandler.GetSupplyChain).Methods("GET")
	api.HandleFunc("/leaderboard", statsHandler.GetLeaderboard).Methods("GET")
	api.HandleFunc("/compare", statsHandler.GetCompare).Methods("GET")
	api.HandleFunc("/efficiency", statsHandler.PostEfficiency).Methods("POST")
	api.HandleFunc("/reorder", insightHandler.PostReorder).Methods("POST")

	// Market feed
	api.HandleFunc("/alerts", marketHandler.GetAlerts).Methods("GET")
	api.HandleFunc("/alerts/stream", streamHandler.StreamSSE).Methods("GET")
	api.HandleFunc("/alerts/ws", streamHandler.StreamWS).Methods("GET")
	api.HandleFunc("/sentiment", marketHandler.GetSentiment).Methods("GET")
	api.HandleFunc("/correlations", marketHandler.PostCorrelations).Methods("POST")

	r.Use(loggingMiddleware(log))
	r.Use(recoveryMiddleware(log))
	r.Use(rateLimitMiddleware(rate.NewLimiter(rate.Limit(50), 100)))

	return r
}

// healthCheckHandler returns server health status
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "ok",
		"service": "evstockmaster-api",
	})
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			next.ServeHTTP(w, r)

			log.WithFields(map[string]interface{}{
				"method":   r.Method,
				"path":     r.URL.Path,
				"duration": time.Since(start),
			}).Debug("HTTP request")
		})
	}
}

// recoveryMiddleware recovers from panics
func recoveryMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.WithFields(map[string]interface{}{
						"error": err,
						"path":  r.URL.Path,
					}).Error("Panic recovered")

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(map[string]string{
						"error": "Internal server error",
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// rateLimitMiddleware rejects requests beyond the shared budget.
func rateLimitMiddleware(limiter *rate.Limiter) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{
					"error": "Too many requests",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
