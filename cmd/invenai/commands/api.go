package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/TejaswiBhavani/EVStockMaster/internal/analytics"
	"github.com/TejaswiBhavani/EVStockMaster/internal/api"
	"github.com/TejaswiBhavani/EVStockMaster/internal/api/handlers"
	"github.com/TejaswiBhavani/EVStockMaster/internal/forecast"
	"github.com/TejaswiBhavani/EVStockMaster/internal/generator"
	"github.com/TejaswiBhavani/EVStockMaster/internal/insight"
	"github.com/TejaswiBhavani/EVStockMaster/internal/store"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/config"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/database"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/logger"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/redis"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the API server",
	Long: `Starts the REST API server.

This command:
- Loads (or generates) the demand dataset
- Serves forecasts, statistics, insights and the leaderboard
- Streams alert heartbeats over SSE and WebSocket

Endpoints:
  GET  /health
  GET  /api/parts
  GET  /api/parts/{part}/forecast
  GET  /api/parts/{part}/statistics
  GET  /api/parts/{part}/insight
  GET  /api/parts/{part}/supply-chain
  GET  /api/leaderboard
  POST /api/data/generate

Example:
  go run ./cmd/invenai api
  go run ./cmd/invenai api --port 8080`,
	RunE: runAPIServer,
}

var (
	apiPort string
)

func init() {
	rootCmd.AddCommand(apiCmd)

	// Flags
	apiCmd.Flags().StringVar(&apiPort, "port", "", "API server port (overrides PORT)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== EVStockMaster API Server ===")

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if apiPort != "" {
		cfg.Port = apiPort
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	log.WithFields(map[string]interface{}{
		"port": cfg.Port,
		"env":  cfg.Env,
	}).Info("Initializing API server")

	// 3. Connect to Postgres when configured
	var repo *store.DemandRepository
	if cfg.Database.URL != "" {
		db, err := database.New(cfg)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()

		repo = store.NewDemandRepository(db.Pool)
		if err := repo.EnsureSchema(context.Background()); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
		log.Info("Connected to database")
	}

	// 4. Connect to Redis (no-op client when disabled)
	redisClient, err := redis.New(cfg)
	if err != nil {
		log.WithError(err).Warn("Redis unavailable, caching disabled")
		redisClient = redis.Disabled()
	}
	defer redisClient.Close()
	cache := redis.NewCache(redisClient, "evstockmaster")

	// 5. Load the demand dataset
	records, err := loadDataset(cfg, log)
	if err != nil {
		return err
	}
	source := store.NewMemorySource(records)
	csvStore := store.NewCSVStore(cfg.Data.CachePath, log.Zerolog())

	// 6. Create the domain components
	gen := generator.New(log.Zerolog())
	forecaster := forecast.New(log.Zerolog())
	analyzer := analytics.NewAnalyzer(log.Zerolog())
	engine := insight.NewEngine(forecaster, log.Zerolog())

	// 7. Create handlers
	dataHandler := handlers.NewDataHandler(source, gen, csvStore, repo, cfg, log)
	forecastHandler := handlers.NewForecastHandler(source, forecaster, log)
	statsHandler := handlers.NewStatsHandler(source, analyzer, cache, log)
	insightHandler := handlers.NewInsightHandler(source, forecaster, engine, log)
	marketHandler := handlers.NewMarketHandler(log)
	streamHandler := handlers.NewStreamHandler(log)

	// 8. Create router and server
	router := api.NewRouter(dataHandler, forecastHandler, statsHandler, insightHandler, marketHandler, streamHandler, log)
	server := api.New(cfg, log, router)

	// 9. Start server with graceful shutdown
	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	log.Info("API server started successfully")
	fmt.Printf("\nServer running on http://localhost:%s\n", cfg.Port)
	fmt.Println("Press Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
