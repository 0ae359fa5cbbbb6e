package extract

import (
	"regexp"

	"github.com/Samtech361/Jobupdates-cs-project/internal/types"
)

// Degree patterns run against raw text so that abbreviations keep their
// periods ("M.S.", "B.Eng."). Ordered highest tier first.
var degreePatterns = []struct {
	degree  types.Degree
	pattern *regexp.Regexp
}{
	{types.DegreePhD, regexp.MustCompile(`(?i)ph\.?d\.?|doctorate`)},
	{types.DegreeMasters, regexp.MustCompile(`(?i)master'?s|mba|m\.s\.|m\.eng\.`)},
	{types.DegreeBachelors, regexp.MustCompile(`(?i)bachelor'?s|b\.s\.|b\.a\.|b\.eng\.`)},
	{types.DegreeAssociate, regexp.MustCompile(`(?i)associate'?s|a\.s\.|a\.a\.`)},
}

// Education detects degree mentions in the text. Every matched tier is
// retained in Degrees; HighestDegree is the first (highest) of them.
func Education(text string) types.EducationSignal {
	signal := types.EducationSignal{}

	for _, dp := range degreePatterns {
		if dp.pattern.MatchString(text) {
			signal.Degrees = append(signal.Degrees, dp.degree)
		}
	}

	if len(signal.Degrees) > 0 {
		signal.HighestDegree = signal.Degrees[0]
	}

	return signal
}
