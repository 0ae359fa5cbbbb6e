package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Samtech361/Jobupdates-cs-project/internal/analysis"
	"github.com/Samtech361/Jobupdates-cs-project/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume on its own",
	Long:  "Analyze a resume text file without a job posting: detected skills, experience and education signals, shape metrics, and a completeness score.",
	RunE:  runAnalyze,
}

var (
	analyzeResumeFile string
	analyzeConfigFile string
	analyzeJSON       bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResumeFile, "resume", "r", "", "Path to resume text file")
	analyzeCmd.Flags().StringVar(&analyzeConfigFile, "config", "", "Path to config JSON file")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print raw JSON instead of formatted output")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	var unusedJob, unusedTaxonomy string
	if err := applyConfig(analyzeConfigFile, &unusedJob, &analyzeResumeFile, &unusedTaxonomy, &rootVerbose); err != nil {
		return err
	}

	resume, err := loadResume(analyzeResumeFile)
	if err != nil {
		return err
	}

	result := analysis.New(nil).AnalyzeResume(resume)

	if analyzeJSON {
		return printJSON(result)
	}
	observability.NewPrinter(os.Stdout).WithVerbose(rootVerbose).PrintResumeAnalysis(&result)
	return nil
}
