package commands

import (
	"fmt"
	"time"

	"github.com/TejaswiBhavani/EVStockMaster/internal/contracts"
	"github.com/TejaswiBhavani/EVStockMaster/internal/generator"
	"github.com/TejaswiBhavani/EVStockMaster/internal/store"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/config"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/logger"
)

// loadDataset returns the demand history, generating and caching it
// when the CSV cache is missing. Every analysis command goes through
// this so they all see the same dataset.
func loadDataset(cfg *config.Config, log *logger.Logger) ([]contracts.DemandRecord, error) {
	csvStore := store.NewCSVStore(cfg.Data.CachePath, log.Zerolog())

	if csvStore.Exists() {
		records, err := csvStore.Load()
		if err != nil {
			return nil, fmt.Errorf("load demand cache: %w", err)
		}
		return records, nil
	}

	start, err := time.Parse("2006-01-02", cfg.Generator.StartDate)
	if err != nil {
		return nil, fmt.Errorf("parse start date: %w", err)
	}

	gen := generator.New(log.Zerolog())
	records := gen.GenerateCatalog(start, cfg.Generator.Years, cfg.Generator.Seed)

	if err := csvStore.Save(records); err != nil {
		return nil, fmt.Errorf("save demand cache: %w", err)
	}

	return records, nil
}
