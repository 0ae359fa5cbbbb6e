package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Samtech361/Jobupdates-cs-project/internal/gap"
	"github.com/Samtech361/Jobupdates-cs-project/internal/observability"
)

var gapCmd = &cobra.Command{
	Use:   "gap",
	Short: "Report the skills a job asks for that a resume lacks",
	Long:  "Diff the skills extracted from a job posting against a resume and print the missing skills per category with learning recommendations.",
	RunE:  runGap,
}

var (
	gapJobFile      string
	gapResumeFile   string
	gapTaxonomyFile string
	gapConfigFile   string
	gapJSON         bool
)

func init() {
	gapCmd.Flags().StringVarP(&gapJobFile, "job", "j", "", "Path to job posting JSON file")
	gapCmd.Flags().StringVarP(&gapResumeFile, "resume", "r", "", "Path to resume text file")
	gapCmd.Flags().StringVar(&gapTaxonomyFile, "taxonomy", "", "Path to custom taxonomy JSON file")
	gapCmd.Flags().StringVar(&gapConfigFile, "config", "", "Path to config JSON file")
	gapCmd.Flags().BoolVar(&gapJSON, "json", false, "Print raw JSON instead of formatted output")

	rootCmd.AddCommand(gapCmd)
}

func runGap(_ *cobra.Command, _ []string) error {
	if err := applyConfig(gapConfigFile, &gapJobFile, &gapResumeFile, &gapTaxonomyFile, &rootVerbose); err != nil {
		return err
	}

	job, err := loadJob(gapJobFile)
	if err != nil {
		return err
	}
	resume, err := loadResume(gapResumeFile)
	if err != nil {
		return err
	}
	tax, err := loadTaxonomy(gapTaxonomyFile)
	if err != nil {
		return err
	}

	report, err := gap.New(tax).AnalyzeGap(job, resume)
	if err != nil {
		return err
	}

	if gapJSON {
		return printJSON(report)
	}
	observability.NewPrinter(os.Stdout).WithVerbose(rootVerbose).PrintGapReport(&report)
	return nil
}
