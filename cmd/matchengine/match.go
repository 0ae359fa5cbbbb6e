package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Samtech361/Jobupdates-cs-project/internal/matching"
	"github.com/Samtech361/Jobupdates-cs-project/internal/observability"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a resume against a job posting",
	Long:  "Score a resume text file against a job posting JSON file and print the overall match score with its sub-scores.",
	RunE:  runMatch,
}

var (
	matchJobFile      string
	matchResumeFile   string
	matchTaxonomyFile string
	matchConfigFile   string
	matchJSON         bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchJobFile, "job", "j", "", "Path to job posting JSON file")
	matchCmd.Flags().StringVarP(&matchResumeFile, "resume", "r", "", "Path to resume text file")
	matchCmd.Flags().StringVar(&matchTaxonomyFile, "taxonomy", "", "Path to custom taxonomy JSON file")
	matchCmd.Flags().StringVar(&matchConfigFile, "config", "", "Path to config JSON file")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "Print raw JSON instead of formatted output")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	if err := applyConfig(matchConfigFile, &matchJobFile, &matchResumeFile, &matchTaxonomyFile, &rootVerbose); err != nil {
		return err
	}

	job, err := loadJob(matchJobFile)
	if err != nil {
		return err
	}
	resume, err := loadResume(matchResumeFile)
	if err != nil {
		return err
	}
	tax, err := loadTaxonomy(matchTaxonomyFile)
	if err != nil {
		return err
	}

	result, err := matching.New(tax).CalculateMatchScore(job, resume)
	if err != nil {
		return err
	}

	if matchJSON {
		return printJSON(result)
	}
	observability.NewPrinter(os.Stdout).WithVerbose(rootVerbose).PrintMatchResult(&result)
	return nil
}
