// Package main provides the entry point for the matching engine CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "matchengine",
	Short: "Resume-job matching and skills-gap analysis engine",
	Long:  "Matchengine scores resumes against job postings, reports missing skills per category, and analyzes resume completeness, via CLI or REST API.",
}

// rootVerbose is shared by every subcommand; config files can also set it.
var rootVerbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Show full output without list truncation")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
