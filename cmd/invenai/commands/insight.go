package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TejaswiBhavani/EVStockMaster/internal/contracts"
	"github.com/TejaswiBhavani/EVStockMaster/internal/forecast"
	"github.com/TejaswiBhavani/EVStockMaster/internal/insight"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/config"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/logger"
)

// insightCmd represents the insight command
var insightCmd = &cobra.Command{
	Use:   "insight",
	Short: "Stock recommendation for a part",
	Long: `Forecasts demand for one part and classifies the current stock
position as Critical, Warning or Healthy.

Example:
  go run ./cmd/invenai insight --part "Battery Pack" --stock 5000
  go run ./cmd/invenai insight --part "Control Unit" --stock 800 --threshold 21`,
	RunE: runInsight,
}

var (
	insightPart      string
	insightStock     float64
	insightThreshold int
	insightWindow    int
)

func init() {
	rootCmd.AddCommand(insightCmd)

	insightCmd.Flags().StringVar(&insightPart, "part", "", "part name (required)")
	insightCmd.Flags().Float64Var(&insightStock, "stock", 5000, "current stock in units")
	insightCmd.Flags().IntVar(&insightThreshold, "threshold", 14, "reorder threshold in days")
	insightCmd.Flags().IntVar(&insightWindow, "window", 30, "moving average window in days")
	insightCmd.MarkFlagRequired("part")
}

func runInsight(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg)

	if insightThreshold < 1 {
		return fmt.Errorf("threshold must be at least 1")
	}

	records, err := loadDataset(cfg, log)
	if err != nil {
		return err
	}

	history := contracts.FilterPart(records, insightPart)
	if len(history) == 0 {
		return fmt.Errorf("unknown part: %s", insightPart)
	}

	forecaster := forecast.New(log.Zerolog())
	engine := insight.NewEngine(forecaster, log.Zerolog())

	frame := forecaster.Forecast(history, insightWindow, insightThreshold)
	result := engine.Recommend(frame, insightStock, insightThreshold)

	fmt.Printf("Insight for %s\n", insightPart)
	fmt.Printf("  status:          %s\n", result.Status)
	fmt.Printf("  recommendation:  %s\n", result.Recommendation)
	fmt.Printf("  details:         %s\n", result.Details)
	fmt.Println()
	fmt.Printf("  avg daily demand:   %.2f\n", result.Metrics.AvgDailyDemand)
	fmt.Printf("  forecasted demand:  %.2f over %d days\n", result.Metrics.TotalForecastedDemand, result.Metrics.ReorderThresholdDays)
	fmt.Printf("  days of stock:      %.1f\n", result.Metrics.DaysOfStock)
	fmt.Printf("  safety stock:       %.2f\n", result.Metrics.SafetyStock)
	fmt.Printf("  recommended order:  %.0f\n", result.Metrics.RecommendedOrderQuantity)

	return nil
}
