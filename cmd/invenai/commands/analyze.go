package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/TejaswiBhavani/EVStockMaster/internal/analytics"
	"github.com/TejaswiBhavani/EVStockMaster/internal/contracts"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/config"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/logger"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Statistical analysis of a part's demand",
	Long: `Computes the full statistics report for one part: basic statistics,
trend, seasonality, volatility, data quality and recent performance.

Example:
  go run ./cmd/invenai analyze --part "Battery Pack"
  go run ./cmd/invenai analyze --part "Cooling System" --json`,
	RunE: runAnalyze,
}

var (
	analyzePart string
	analyzeJSON bool
)

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzePart, "part", "", "part name (required)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the full report as JSON")
	analyzeCmd.MarkFlagRequired("part")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg)

	records, err := loadDataset(cfg, log)
	if err != nil {
		return err
	}

	history := contracts.FilterPart(records, analyzePart)
	if len(history) == 0 {
		return fmt.Errorf("unknown part: %s", analyzePart)
	}

	analyzer := analytics.NewAnalyzer(log.Zerolog())
	report, err := analyzer.Analyze(history)
	if err != nil {
		return fmt.Errorf("analyze %s: %w", analyzePart, err)
	}

	if analyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Printf("Statistics for %s (%d days, %s to %s)\n",
		report.PartName, report.Basic.Count,
		report.Period.StartDate.Format("2006-01-02"), report.Period.EndDate.Format("2006-01-02"))
	fmt.Printf("  mean demand:     %.1f (std %.1f, CV %.3f)\n",
		report.Basic.Mean, report.Basic.Std, report.Basic.CV)
	fmt.Printf("  range:           %.0f to %.0f (IQR %.1f)\n",
		report.Basic.Min, report.Basic.Max, report.Basic.IQR)
	if !report.Trend.Insufficient {
		fmt.Printf("  trend:           %s (%.2f%%/year, R2 %.3f)\n",
			report.Trend.Direction, report.Trend.AnnualGrowthRate, report.Trend.RSquared)
	}
	fmt.Printf("  volatility:      %s (CV %.3f)\n",
		report.Volatility.Level, report.Volatility.OverallCV)
	fmt.Printf("  data quality:    %s (score %.3f)\n",
		report.Quality.Grade, report.Quality.QualityScore)
	fmt.Printf("  recent 30 days:  avg %.1f, %s\n",
		report.Recent.Mean, report.Recent.Trend)

	return nil
}
