package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "adjudicator",
	Short: "AutoLife Adjudicator - automated claims decision engine",
	Long: `AutoLife Adjudicator evaluates free-text insurance claim submissions
and produces approve, deny, or review recommendations.

Each claim runs through an iterative analysis loop in which an LLM
collaborator directs deterministic tools:
  - Claim information extraction (policy number, type, amount, date)
  - Policy coverage validation against the active catalog
  - Fraud risk scoring over the claim narrative
  - Settlement calculation with coverage limits and deductibles

The final recommendation, the structured tool results, and a full
processing log are returned for every claim.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
