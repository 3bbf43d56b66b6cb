// Package cmd holds the coanalyst command tree
package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coanalyst",
	Short: "Co-Analyst: browser-based exploratory data analysis prototype",
	Long: `Co-Analyst serves a single-page frontend for uploading a CSV or Excel
dataset, running one of a fixed set of analysis methods against it and viewing
the structured result. The analyze subcommand runs the same pipeline once from
the terminal.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	// A missing .env file is fine; the environment may be set directly
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
