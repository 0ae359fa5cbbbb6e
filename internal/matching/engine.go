// Package matching scores resumes against job postings. The score is a
// weighted blend of four dimensions: taxonomy skill overlap, literal
// requirement coverage, years of experience, and education level.
package matching

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Samtech361/Jobupdates-cs-project/internal/extract"
	"github.com/Samtech361/Jobupdates-cs-project/internal/parsing"
	"github.com/Samtech361/Jobupdates-cs-project/internal/taxonomy"
	"github.com/Samtech361/Jobupdates-cs-project/internal/types"
)

// Dimension weights. Skills dominate because taxonomy matches are the
// least noisy signal; education is mostly a tiebreaker.
const (
	weightSkills       = 0.4
	weightRequirements = 0.3
	weightExperience   = 0.2
	weightEducation    = 0.1
)

// Experience ratio thresholds: candidate years / required years.
const (
	defaultJobExperienceScore    = 0.5
	defaultResumeExperienceScore = 0.3
)

// ErrNilJob is returned when CalculateMatchScore is called without a job.
var ErrNilJob = errors.New("matching: job posting is required")

// yearsPattern finds the first "N years" mention for the experience
// dimension, which only needs a single number from each side.
var yearsPattern = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:year|yr)s?`)

// Engine scores resumes against job postings using a fixed taxonomy.
// Safe for concurrent use; matchers are compiled once at construction.
type Engine struct {
	tax *taxonomy.Taxonomy
}

// New returns an Engine over the given taxonomy, or the default technical
// taxonomy when tax is nil.
func New(tax *taxonomy.Taxonomy) *Engine {
	if tax == nil {
		tax = taxonomy.Default()
	}
	return &Engine{tax: tax}
}

// Taxonomy returns the taxonomy the engine scores against.
func (e *Engine) Taxonomy() *taxonomy.Taxonomy { return e.tax }

// CalculateMatchScore scores one resume against one job posting. A failure
// in any single dimension zeroes that dimension and records the reason in
// Degraded instead of failing the whole match; a partial score is more
// useful to the caller than an error. The only error is a nil job.
func (e *Engine) CalculateMatchScore(job *types.JobPosting, resumeText string) (types.MatchResult, error) {
	if job == nil {
		return types.MatchResult{}, ErrNilJob
	}

	result := types.MatchResult{}
	degraded := make(map[string]string)

	score := func(dimension string, fn func() (float64, error)) float64 {
		value, err := fn()
		if err != nil {
			degraded[dimension] = err.Error()
			return 0
		}
		return value
	}

	skills := score("skills", func() (float64, error) {
		return e.skillsScore(job.Description, resumeText)
	})
	requirements := score("requirements", func() (float64, error) {
		return requirementsScore(job.Requirements, resumeText)
	})
	experience := score("experience", func() (float64, error) {
		return experienceScore(job.Description, resumeText)
	})
	education := score("education", func() (float64, error) {
		return educationScore(job.Description, resumeText)
	})

	overall := skills*weightSkills +
		requirements*weightRequirements +
		experience*weightExperience +
		education*weightEducation

	result.Overall = pct(overall)
	result.Details = types.ScoreDetails{
		Skills:       pct(skills),
		Requirements: pct(requirements),
		Experience:   pct(experience),
		Education:    pct(education),
	}
	if len(degraded) > 0 {
		result.Degraded = degraded
	}
	return result, nil
}

// skillsScore is the fraction of the job's recognized skills that also
// appear in the resume. A job with no recognizable skill scores 0, not NaN.
// A taxonomy carrying entries that failed to compile cannot produce a
// trustworthy fraction, so the dimension degrades and names the entries.
func (e *Engine) skillsScore(jobDescription, resumeText string) (float64, error) {
	if bad := e.tax.InvalidSkills(); len(bad) > 0 {
		return 0, fmt.Errorf("taxonomy entries failed to compile: %s", strings.Join(bad, ", "))
	}

	jobSkills := extract.Skills(e.tax, jobDescription).FlatFound(e.tax.Categories())
	if len(jobSkills) == 0 {
		return 0, nil
	}

	resumeFindings := extract.Skills(e.tax, resumeText)
	resumeSkills := make(map[string]bool)
	for _, skill := range resumeFindings.FlatFound(e.tax.Categories()) {
		resumeSkills[skill] = true
	}

	matched := 0
	for _, skill := range jobSkills {
		if resumeSkills[skill] {
			matched++
		}
	}
	return float64(matched) / float64(len(jobSkills)), nil
}

// requirementsScore averages, over every literal requirement line, the
// fraction of that line's words present anywhere in the resume. An empty
// requirements list scores 0 rather than being skipped.
func requirementsScore(requirements []string, resumeText string) (float64, error) {
	if len(requirements) == 0 {
		return 0, nil
	}

	resumeWords := parsing.WordSet(resumeText)

	total := 0.0
	for _, requirement := range requirements {
		words := parsing.Tokenize(requirement)
		if len(words) == 0 {
			continue
		}
		present := 0
		for _, word := range words {
			if resumeWords[word] {
				present++
			}
		}
		total += float64(present) / float64(len(words))
	}
	return total / float64(len(requirements)), nil
}

// experienceScore compares the first years figure stated by each side.
// A job that states no number gets the neutral 0.5; a resume that states
// none gets the low 0.3.
func experienceScore(jobDescription, resumeText string) (float64, error) {
	required, ok := firstYears(jobDescription)
	if !ok {
		return defaultJobExperienceScore, nil
	}
	have, ok := firstYears(resumeText)
	if !ok {
		return defaultResumeExperienceScore, nil
	}

	switch {
	case have >= required:
		return 1.0, nil
	case float64(have) >= 0.7*float64(required):
		return 0.8, nil
	case float64(have) >= 0.5*float64(required):
		return 0.5, nil
	default:
		return 0.3, nil
	}
}

func firstYears(text string) (int, bool) {
	m := yearsPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	years, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return years, true
}

// educationScore maps both texts to an ordinal level and compares. A job
// stating no level is neutral; a resume one tier short is close enough for
// partial credit.
func educationScore(jobDescription, resumeText string) (float64, error) {
	jobLevel := educationLevel(jobDescription)
	if jobLevel == 0 {
		return 0.5, nil
	}
	resumeLevel := educationLevel(resumeText)

	switch {
	case resumeLevel >= jobLevel:
		return 1.0, nil
	case resumeLevel >= jobLevel-1:
		return 0.7, nil
	default:
		return 0.3, nil
	}
}

// certificationPattern extends the degree tiers with a lowest rung used
// only by the match scorer, for postings that ask for certifications
// rather than degrees.
var certificationPattern = regexp.MustCompile(`(?i)certificat(?:e|ion)s?`)

var degreeLevels = map[types.Degree]int{
	types.DegreePhD:       5,
	types.DegreeMasters:   4,
	types.DegreeBachelors: 3,
	types.DegreeAssociate: 2,
}

func educationLevel(text string) int {
	if signal := extract.Education(text); signal.HighestDegree != "" {
		return degreeLevels[signal.HighestDegree]
	}
	if certificationPattern.MatchString(text) {
		return 1
	}
	return 0
}

// pct rounds a unit-interval score to an integer percentage, clamped.
func pct(score float64) int {
	p := int(math.Round(score * 100))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Summary formats a result as a single log-friendly line.
func Summary(result types.MatchResult) string {
	return fmt.Sprintf("overall=%d skills=%d requirements=%d experience=%d education=%d",
		result.Overall, result.Details.Skills, result.Details.Requirements,
		result.Details.Experience, result.Details.Education)
}
