// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/Samtech361/Jobupdates-cs-project/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out     io.Writer
	verbose bool
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// WithVerbose toggles verbose output, which lifts list truncation so full
// results are shown. Returns the printer for chaining.
func (p *Printer) WithVerbose(verbose bool) *Printer {
	p.verbose = verbose
	return p
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchResult outputs a human-readable summary of a match score.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:       %d%%\n", result.Overall))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Skills:        %d%%\n", result.Details.Skills))
	sb.WriteString(fmt.Sprintf("Requirements:  %d%%\n", result.Details.Requirements))
	sb.WriteString(fmt.Sprintf("Experience:    %d%%\n", result.Details.Experience))
	sb.WriteString(fmt.Sprintf("Education:     %d%%", result.Details.Education))

	if len(result.Degraded) > 0 {
		sb.WriteString("\n\nDegraded:\n")
		for dimension, reason := range result.Degraded {
			sb.WriteString(fmt.Sprintf("  • %s: %s\n", dimension, reason))
		}
	}

	p.printBox("MATCH SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGapReport outputs the missing skills per category with suggestions.
func (p *Printer) PrintGapReport(report *types.GapReport) {
	if report == nil {
		return
	}

	var sb strings.Builder

	if len(report.Missing) == 0 {
		sb.WriteString("No missing skills detected.")
	} else {
		sb.WriteString("Missing skills:\n")
		for category, skills := range report.Missing {
			line := strings.Join(skills, ", ")
			sb.WriteString(fmt.Sprintf("  • %s: %s\n", category, line))
		}
	}

	if len(report.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		count := len(report.Recommendations)
		if !p.verbose {
			count = min(count, maxItemsToShow)
		}
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  - %s\n", report.Recommendations[i]))
		}
		if hidden := len(report.Recommendations) - count; hidden > 0 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", hidden))
		}
	}

	p.printBox("SKILLS GAP", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResumeAnalysis outputs the standalone resume analysis summary.
func (p *Printer) PrintResumeAnalysis(result *types.ResumeAnalysis) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Completeness:  %d%%\n", result.CompletenessScore))
	sb.WriteString(fmt.Sprintf("Words:         %d\n", result.Metrics.WordCount))
	sb.WriteString(fmt.Sprintf("Sentences:     %d\n", result.Metrics.SentenceCount))
	sb.WriteString("\n")

	if len(result.TechnicalSkills.Found) > 0 {
		skills := strings.Join(result.TechnicalSkills.Found, ", ")
		sb.WriteString(fmt.Sprintf("Technical: %s\n", skills))
	}
	if len(result.SoftSkills.Found) > 0 {
		skills := strings.Join(result.SoftSkills.Found, ", ")
		sb.WriteString(fmt.Sprintf("Soft:      %s\n", skills))
	}
	if result.Experience.TotalYears != nil {
		sb.WriteString(fmt.Sprintf("Years:     %d\n", *result.Experience.TotalYears))
	}
	if result.Education.HighestDegree != "" {
		sb.WriteString(fmt.Sprintf("Degree:    %s\n", result.Education.HighestDegree))
	}

	p.printBox("RESUME ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}
