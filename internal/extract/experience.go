package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Samtech361/Jobupdates-cs-project/internal/types"
)

// Resumes state experience in varied phrasing, so several patterns are
// scanned and every match is kept.
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)\s+(?:of\s+)?experience`),
	regexp.MustCompile(`(?i)(?:worked|working)\s+(?:for|as)\s+(\d+)\+?\s*(?:years?|yrs?)`),
	regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)\s+(?:in|at)\b`),
}

// Experience collects every years-of-experience statement in the text.
// TotalYears is the maximum years value across all mentions, or nil when
// no pattern matches; the max avoids undercounting when several roles are
// summed informally.
func Experience(text string) types.ExperienceSignal {
	signal := types.ExperienceSignal{}

	for _, pattern := range experiencePatterns {
		for _, loc := range pattern.FindAllStringSubmatchIndex(text, -1) {
			years, err := strconv.Atoi(text[loc[2]:loc[3]])
			if err != nil {
				continue
			}
			signal.Experiences = append(signal.Experiences, types.ExperienceMention{
				Years:   years,
				Context: contextWindow(text, loc[0], loc[1]),
			})
		}
	}

	for _, mention := range signal.Experiences {
		if signal.TotalYears == nil || mention.Years > *signal.TotalYears {
			years := mention.Years
			signal.TotalYears = &years
		}
	}

	return signal
}

// contextWindow returns the match plus up to 50 characters on either side.
func contextWindow(text string, start, end int) string {
	from := start - 50
	if from < 0 {
		from = 0
	}
	to := end + 50
	if to > len(text) {
		to = len(text)
	}
	return strings.TrimSpace(text[from:to])
}
