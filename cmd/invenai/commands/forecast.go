package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TejaswiBhavani/EVStockMaster/internal/contracts"
	"github.com/TejaswiBhavani/EVStockMaster/internal/forecast"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/config"
	"github.com/TejaswiBhavani/EVStockMaster/pkg/logger"
)

// forecastCmd represents the forecast command
var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Forecast demand for a part",
	Long: `Computes the SMA forecast for one part and prints the projected
values with confidence bounds.

Example:
  go run ./cmd/invenai forecast --part "Battery Pack"
  go run ./cmd/invenai forecast --part "Electric Motor" --window 14 --horizon 60`,
	RunE: runForecast,
}

var (
	forecastPart    string
	forecastWindow  int
	forecastHorizon int
)

func init() {
	rootCmd.AddCommand(forecastCmd)

	forecastCmd.Flags().StringVar(&forecastPart, "part", "", "part name (required)")
	forecastCmd.Flags().IntVar(&forecastWindow, "window", 30, "moving average window in days")
	forecastCmd.Flags().IntVar(&forecastHorizon, "horizon", 30, "forecast horizon in days")
	forecastCmd.MarkFlagRequired("part")
}

func runForecast(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg)

	records, err := loadDataset(cfg, log)
	if err != nil {
		return err
	}

	history := contracts.FilterPart(records, forecastPart)
	if len(history) == 0 {
		return fmt.Errorf("unknown part: %s", forecastPart)
	}

	forecaster := forecast.New(log.Zerolog())
	result := forecaster.Forecast(history, forecastWindow, forecastHorizon)

	fmt.Printf("Forecast for %s (window=%d, horizon=%d)\n", result.PartName, result.WindowSize, result.Horizon)
	fmt.Printf("  trend slope:     %+.3f units/day\n", result.TrendSlope)
	fmt.Printf("  trend strength:  %.3f\n", result.TrendStrength)
	fmt.Printf("  confidence:      %.3f\n", result.ForecastConfidence)
	fmt.Println()
	fmt.Println("  date        forecast    lower      upper")

	for _, p := range result.Points {
		if p.Forecast == nil {
			continue
		}
		fmt.Printf("  %s  %8.1f  %8.1f  %8.1f\n",
			p.Date.Format("2006-01-02"), *p.Forecast, *p.ForecastLower, *p.ForecastUpper)
	}

	return nil
}
