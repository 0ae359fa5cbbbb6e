package taxonomy

import (
	"fmt"
	"regexp"

	"github.com/Samtech361/Jobupdates-cs-project/internal/parsing"
)

// Matcher is a word-boundary-anchored, case-insensitive pattern for one
// canonical skill, compiled once at taxonomy construction and matched
// against normalized text.
//
// Skills may contain regex metacharacters ("c++", ".net"), so the skill is
// normalized the same way as the target text and then escaped before
// compilation. Boundaries are expressed as start/end-of-text or a space,
// because normalized text separates tokens with single spaces; a plain \b
// misbehaves for skills ending in non-word characters like "c++".
type Matcher struct {
	re *regexp.Regexp
}

// compileMatcher builds the matcher for one canonical skill.
func compileMatcher(skill string) (*Matcher, error) {
	norm := parsing.Normalize(skill)
	if norm == "" {
		return nil, fmt.Errorf("taxonomy: skill %q normalizes to nothing", skill)
	}
	re, err := regexp.Compile(`(?i)(?:^|\s)(` + regexp.QuoteMeta(norm) + `)(?:\s|$)`)
	if err != nil {
		return nil, fmt.Errorf("taxonomy: compiling pattern for %q: %w", skill, err)
	}
	return &Matcher{re: re}, nil
}

// Matches reports whether the skill occurs anywhere in the normalized text.
func (m *Matcher) Matches(normalizedText string) bool {
	return m.re.MatchString(normalizedText)
}

// Count returns the number of occurrences of the skill in the normalized
// text. The scan resumes right after each matched skill rather than after
// its trailing boundary, so back-to-back occurrences separated by a single
// space are all counted.
func (m *Matcher) Count(normalizedText string) int {
	count := 0
	pos := 0
	for pos <= len(normalizedText) {
		loc := m.re.FindStringSubmatchIndex(normalizedText[pos:])
		if loc == nil {
			break
		}
		count++
		pos += loc[3] // end of the captured skill, not of the boundary
	}
	return count
}
