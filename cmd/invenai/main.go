package main

import (
	"os"

	"github.com/TejaswiBhavani/EVStockMaster/cmd/invenai/commands"
)

// main is the entry point for the InvenAI CLI
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
