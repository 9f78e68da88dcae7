// Package jobs holds the concrete scheduled jobs.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/TejaswiBhavani/EVStockMaster/internal/generator"
	"github.com/TejaswiBhavani/EVStockMaster/internal/store"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/config"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/logger"
)

// RefreshJob regenerates the synthetic demand dataset and rewrites the
// caches so long-running servers pick up configuration changes.
type RefreshJob struct {
	gen    *generator.Generator
	csv    *store.CSVStore
	repo   *store.DemandRepository // nil when Postgres is not configured
	source *store.MemorySource
	cfg    *config.Config
	logger *logger.Logger
}

// NewRefreshJob creates the refresh job.
func NewRefreshJob(gen *generator.Generator, csv *store.CSVStore, repo *store.DemandRepository, source *store.MemorySource, cfg *config.Config, log *logger.Logger) *RefreshJob {
	return &RefreshJob{
		gen:    gen,
		csv:    csv,
		repo:   repo,
		source: source,
		cfg:    cfg,
		logger: log,
	}
}

// Name returns the job name.
func (j *RefreshJob) Name() string {
	return "demand_refresh"
}

// Schedule runs every day at 02:00.
func (j *RefreshJob) Schedule() string {
	return "0 0 2 * * *"
}

// Run regenerates the dataset and persists it.
func (j *RefreshJob) Run(ctx context.Context) error {
	start, err := time.Parse("2006-01-02", j.cfg.Generator.StartDate)
	if err != nil {
		return fmt.Errorf("parse start date: %w", err)
	}

	records := j.gen.GenerateCatalog(start, j.cfg.Generator.Years, j.cfg.Generator.Seed)

	if err := j.csv.Save(records); err != nil {
		return fmt.Errorf("save demand cache: %w", err)
	}
	if j.repo != nil {
		if err := j.repo.ReplaceAll(ctx, records); err != nil {
			return fmt.Errorf("persist demand to postgres: %w", err)
		}
	}

	j.source.Replace(records)

	j.logger.WithField("records", len(records)).Info("Demand dataset refreshed")
	return nil
}
