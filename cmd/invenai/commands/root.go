// Package commands wires the CLI subcommands.
package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
	env        string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "invenai",
	Short: "EVStockMaster - EV parts demand forecasting and inventory insights",
	Long: `EVStockMaster Unified CLI

Demand forecasting and inventory analysis for EV manufactured parts:
synthetic series generation, SMA forecasting, statistics, stock
insights and the parts leaderboard.

Usage:
  go run ./cmd/invenai [command]

Examples:
  go run ./cmd/invenai api
  go run ./cmd/invenai generate
  go run ./cmd/invenai forecast --part "Battery Pack"
  go run ./cmd/invenai leaderboard --sort-by growth_rate`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().StringVar(&env, "env", "development", "environment (development|staging|production)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
