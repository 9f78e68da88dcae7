package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TejaswiBhavani/EVStockMaster/internal/analytics"
	"github.com/TejaswiBhavani/EVStockMaster/internal/contracts"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/config"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/logger"
)

// leaderboardCmd represents the leaderboard command
var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Rank all parts by a metric",
	Long: `Analyzes every part and ranks them by the chosen metric.

Metrics:
  avg_demand     average daily demand (default)
  growth_rate    annualized growth rate
  volatility     overall CV (lower ranks higher)
  quality_score  data quality score

Example:
  go run ./cmd/invenai leaderboard
  go run ./cmd/invenai leaderboard --sort-by growth_rate`,
	RunE: runLeaderboard,
}

var leaderboardSortBy string

func init() {
	rootCmd.AddCommand(leaderboardCmd)

	leaderboardCmd.Flags().StringVar(&leaderboardSortBy, "sort-by", "avg_demand", "ranking metric")
}

func runLeaderboard(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg)

	records, err := loadDataset(cfg, log)
	if err != nil {
		return err
	}

	sortBy, err := contracts.ParseSortMetric(leaderboardSortBy)
	if err != nil {
		return err
	}
	analyzer := analytics.NewAnalyzer(log.Zerolog())
	entries := analyzer.Leaderboard(records, sortBy)

	fmt.Printf("Parts leaderboard (sorted by %s)\n\n", sortBy)
	fmt.Println("  rank  part             avg demand  growth %  volatility  quality")
	for _, e := range entries {
		medal := e.Medal
		if medal == "" {
			medal = "  "
		}
		fmt.Printf("  %2d %s  %-16s %10.1f  %8.2f  %10.3f  %7.3f\n",
			e.Rank, medal, e.PartName, e.AvgDemand, e.GrowthRate, e.Volatility, e.QualityScore)
	}

	return nil
}
