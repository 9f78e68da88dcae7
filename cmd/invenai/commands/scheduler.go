package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/TejaswiBhavani/EVStockMaster/internal/generator"
	"github.com/TejaswiBhavani/EVStockMaster/internal/scheduler"
	"github.com/TejaswiBhavani/EVStockMaster/internal/scheduler/jobs"
	"github.com/TejaswiBhavani/EVStockMaster/internal/store"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/config"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/database"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/logger"
)

// schedulerCmd represents the scheduler command
var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "Run the maintenance scheduler",
	Long: `Starts the scheduler daemon with the registered jobs.

Registered jobs:
- demand_refresh: every day at 02:00 (regenerate the demand dataset)

Example:
  go run ./cmd/invenai scheduler
  go run ./cmd/invenai scheduler --run-now`,
	RunE: runScheduler,
}

var schedulerRunNow bool

func init() {
	rootCmd.AddCommand(schedulerCmd)

	schedulerCmd.Flags().BoolVar(&schedulerRunNow, "run-now", false, "run the refresh job immediately on startup")
}

func runScheduler(cmd *cobra.Command, args []string) error {
	fmt.Println("=== EVStockMaster Scheduler ===")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg)

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

	records, err := loadDataset(cfg, log)
	if err != nil {
		return err
	}
	source := store.NewMemorySource(records)
	csvStore := store.NewCSVStore(cfg.Data.CachePath, log.Zerolog())
	gen := generator.New(log.Zerolog())

	sched := scheduler.New(log)
	refreshJob := jobs.NewRefreshJob(gen, csvStore, repo, source, cfg, log)
	if err := sched.AddJob(refreshJob); err != nil {
		return fmt.Errorf("register refresh job: %w", err)
	}

	sched.Start()
	defer sched.Stop()

	if schedulerRunNow {
		if err := sched.RunJob(refreshJob.Name()); err != nil {
			return err
		}
	}

	fmt.Println("Scheduler running. Press Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down scheduler...")
	return nil
}
