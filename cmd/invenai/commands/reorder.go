package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TejaswiBhavani/EVStockMaster/internal/forecast"
	"github.com/TejaswiBhavani/EVStockMaster/internal/insight"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/config"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/logger"
)

// reorderCmd represents the reorder command
var reorderCmd = &cobra.Command{
	Use:   "reorder",
	Short: "Batch reorder recommendations",
	Long: `Evaluates the stock position of every given part and prints reorder
recommendations ordered most urgent first.

Positions are given as "part=stock" pairs, one per --position flag.

Example:
  go run ./cmd/invenai reorder --position "Battery Pack=5000" --position "Electric Motor=0"
  go run ./cmd/invenai reorder --position "Charging Port=20000" --threshold 21`,
	RunE: runReorder,
}

var (
	reorderPositions []string
	reorderThreshold int
)

func init() {
	rootCmd.AddCommand(reorderCmd)

	reorderCmd.Flags().StringArrayVar(&reorderPositions, "position", nil, `part stock position as "part=stock" (repeatable, required)`)
	reorderCmd.Flags().IntVar(&reorderThreshold, "threshold", 14, "reorder threshold in days")
	reorderCmd.MarkFlagRequired("position")
}

func runReorder(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg)

	if reorderThreshold < 1 {
		return fmt.Errorf("threshold must be at least 1")
	}

	positions := make(map[string]insight.StockPosition, len(reorderPositions))
	for _, p := range reorderPositions {
		name, stockStr, ok := strings.Cut(p, "=")
		if !ok {
			return fmt.Errorf("invalid position %q (expected \"part=stock\")", p)
		}
		stock, err := strconv.ParseFloat(strings.TrimSpace(stockStr), 64)
		if err != nil {
			return fmt.Errorf("invalid stock in position %q: %w", p, err)
		}
		positions[strings.TrimSpace(name)] = insight.StockPosition{
			CurrentStock:         stock,
			ReorderThresholdDays: reorderThreshold,
		}
	}

	records, err := loadDataset(cfg, log)
	if err != nil {
		return err
	}

	forecaster := forecast.New(log.Zerolog())
	engine := insight.NewEngine(forecaster, log.Zerolog())
	recs := engine.ReorderRecommendations(records, positions)

	if len(recs) == 0 {
		fmt.Println("No recommendations: none of the given parts have demand history")
		return nil
	}

	fmt.Printf("Reorder recommendations (threshold %d days)\n\n", reorderThreshold)
	fmt.Println("  status    part             stock     days  order")
	for _, rec := range recs {
		fmt.Printf("  %-8s  %-16s %8.0f  %6.1f  %5.0f  %s\n",
			rec.Status, rec.PartName, rec.CurrentStock, rec.DaysOfStock, rec.RecommendedOrder, rec.Recommendation)
	}

	return nil
}
