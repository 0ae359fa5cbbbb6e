// Package analysis evaluates a resume on its own, with no job posting:
// shape metrics, detected skills and signals, and a completeness score.
package analysis

import (
	"regexp"
	"strings"

	"github.com/Samtech361/Jobupdates-cs-project/internal/extract"
	"github.com/Samtech361/Jobupdates-cs-project/internal/taxonomy"
	"github.com/Samtech361/Jobupdates-cs-project/internal/types"
)

var sentenceBreak = regexp.MustCompile(`[.!?]+`)

// Analyzer analyzes resumes against the flat technical/soft vocabulary.
type Analyzer struct {
	tax *taxonomy.Taxonomy
}

// New returns an Analyzer over the given taxonomy, or the built-in
// technical/soft resume vocabulary when tax is nil.
func New(tax *taxonomy.Taxonomy) *Analyzer {
	if tax == nil {
		tax = taxonomy.Resume()
	}
	return &Analyzer{tax: tax}
}

// AnalyzeResume computes the full standalone analysis of a resume.
func (a *Analyzer) AnalyzeResume(resumeText string) types.ResumeAnalysis {
	technical := extract.Terms(a.tax, taxonomy.CategoryTechnical, resumeText)
	soft := extract.Terms(a.tax, taxonomy.CategorySoft, resumeText)
	experience := extract.Experience(resumeText)
	education := extract.Education(resumeText)
	metrics := basicMetrics(resumeText)

	return types.ResumeAnalysis{
		Metrics:         metrics,
		TechnicalSkills: technical,
		SoftSkills:      soft,
		Experience:      experience,
		Education:       education,
		CompletenessScore: completeness(metrics.WordCount, len(technical.Found),
			len(soft.Found), experience, education),
	}
}

// ScoreCompleteness returns just the completeness score for a resume.
func (a *Analyzer) ScoreCompleteness(resumeText string) int {
	return a.AnalyzeResume(resumeText).CompletenessScore
}

func basicMetrics(text string) types.BasicMetrics {
	words := strings.Fields(text)

	sentences := 0
	for _, part := range sentenceBreak.Split(text, -1) {
		if strings.TrimSpace(part) != "" {
			sentences++
		}
	}

	metrics := types.BasicMetrics{
		WordCount:      len(words),
		SentenceCount:  sentences,
		CharacterCount: len(text),
	}
	if len(words) > 0 {
		total := 0
		for _, word := range words {
			total += len(word)
		}
		metrics.AverageWordLength = float64(total) / float64(len(words))
	}
	return metrics
}
