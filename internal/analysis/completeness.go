package analysis

import (
	"math"

	"github.com/Samtech361/Jobupdates-cs-project/internal/types"
)

// Completeness weights. These differ from the match-score weights on
// purpose: the two composites evolved separately and weigh their inputs
// differently.
const (
	completenessWeightTechnical  = 0.3
	completenessWeightSoft       = 0.2
	completenessWeightExperience = 0.25
	completenessWeightEducation  = 0.15
	completenessWeightWordCount  = 0.1
)

// Component caps: more than this many skills or years adds nothing.
const (
	technicalSkillCap = 10
	softSkillCap      = 5
	experienceYearCap = 10
)

// Word-count band considered a well-sized resume.
const (
	wordCountLow  = 300
	wordCountHigh = 600
)

var degreeWeights = map[types.Degree]float64{
	types.DegreePhD:       1.0,
	types.DegreeMasters:   0.8,
	types.DegreeBachelors: 0.6,
	types.DegreeAssociate: 0.4,
}

// completeness blends capped component scores into a 0-100 integer.
// An empty resume scores 0 outright.
func completeness(wordCount, technicalCount, softCount int, experience types.ExperienceSignal, education types.EducationSignal) int {
	if wordCount == 0 {
		return 0
	}

	technical := capRatio(technicalCount, technicalSkillCap)
	soft := capRatio(softCount, softSkillCap)

	years := 0
	if experience.TotalYears != nil {
		years = *experience.TotalYears
	}
	experienceScore := capRatio(years, experienceYearCap)

	educationScore := 0.0
	if education.HighestDegree != "" {
		educationScore = degreeWeights[education.HighestDegree]
	}

	score := technical*completenessWeightTechnical +
		soft*completenessWeightSoft +
		experienceScore*completenessWeightExperience +
		educationScore*completenessWeightEducation +
		wordCountScore(wordCount)*completenessWeightWordCount

	result := int(math.Round(score * 100))
	if result < 0 {
		return 0
	}
	if result > 100 {
		return 100
	}
	return result
}

func capRatio(count, limit int) float64 {
	if count >= limit {
		return 1.0
	}
	return float64(count) / float64(limit)
}

// wordCountScore peaks for resumes in the 300-600 word band, penalizes
// longer ones mildly and shorter ones proportionally.
func wordCountScore(wordCount int) float64 {
	switch {
	case wordCount > wordCountHigh:
		return 0.8
	case wordCount >= wordCountLow:
		return 1.0
	default:
		return float64(wordCount) / float64(wordCountLow)
	}
}
