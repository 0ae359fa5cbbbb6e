// Package gap diffs the skills a job posting asks for against the skills a
// resume demonstrates and turns the difference into a report.
package gap

import (
	"errors"
	"strings"

	"github.com/Samtech361/Jobupdates-cs-project/internal/extract"
	"github.com/Samtech361/Jobupdates-cs-project/internal/taxonomy"
	"github.com/Samtech361/Jobupdates-cs-project/internal/types"
)

// ErrNilJob is returned when AnalyzeGap is called without a job.
var ErrNilJob = errors.New("gap: job posting is required")

// Analyzer computes skills-gap reports against a fixed taxonomy.
type Analyzer struct {
	tax *taxonomy.Taxonomy
}

// New returns an Analyzer over the given taxonomy, or the default technical
// taxonomy when tax is nil.
func New(tax *taxonomy.Taxonomy) *Analyzer {
	if tax == nil {
		tax = taxonomy.Default()
	}
	return &Analyzer{tax: tax}
}

// AnalyzeGap extracts skills from the job text (description plus
// requirement lines) and from the resume independently, then diffs them per
// category. Categories where the resume covers everything required are
// omitted from Missing.
func (a *Analyzer) AnalyzeGap(job *types.JobPosting, resumeText string) (types.GapReport, error) {
	if job == nil {
		return types.GapReport{}, ErrNilJob
	}

	jobText := job.Description
	if len(job.Requirements) > 0 {
		jobText += " " + strings.Join(job.Requirements, " ")
	}

	required := extract.Skills(a.tax, jobText)
	found := extract.Skills(a.tax, resumeText)

	missing := make(map[string][]string)
	for category, requiredSkills := range required.Found {
		have := make(map[string]bool)
		for _, skill := range found.Found[category] {
			have[skill] = true
		}

		var gap []string
		for _, skill := range requiredSkills {
			if !have[skill] {
				gap = append(gap, skill)
			}
		}
		if len(gap) > 0 {
			missing[category] = gap
		}
	}

	return types.GapReport{
		Required:        required.Found,
		Found:           found.Found,
		Missing:         missing,
		Recommendations: recommendations(a.tax, missing),
	}, nil
}
