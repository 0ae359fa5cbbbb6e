// Package extract pulls structured signals (skills, years of experience,
// education tiers) out of free-form resume and job text.
package extract

import (
	"github.com/Samtech361/Jobupdates-cs-project/internal/parsing"
	"github.com/Samtech361/Jobupdates-cs-project/internal/taxonomy"
	"github.com/Samtech361/Jobupdates-cs-project/internal/types"
)

// Skills scans text for every skill in the taxonomy. Found maps category
// name to the matched skills; categories with no matches are omitted rather
// than included as empty lists. Frequency holds an occurrence count for
// every skill in the taxonomy, including zeros.
func Skills(tax *taxonomy.Taxonomy, text string) types.SkillFindings {
	normalized := parsing.Normalize(text)

	findings := types.SkillFindings{
		Found:     make(map[string][]string),
		Frequency: make(map[string]int),
	}

	for _, category := range tax.Categories() {
		var found []string
		for _, skill := range tax.Skills(category) {
			matcher := tax.Matcher(skill)
			if matcher == nil {
				continue
			}
			if matcher.Matches(normalized) {
				found = append(found, skill)
			}
		}
		if len(found) > 0 {
			findings.Found[category] = found
		}
	}

	for _, skill := range tax.AllSkills() {
		matcher := tax.Matcher(skill)
		if matcher == nil {
			continue
		}
		findings.Frequency[skill] = matcher.Count(normalized)
	}

	return findings
}

// Terms is Skills restricted to a single category, returned as a flat list.
// Used by the resume analyzer, which reports technical and soft skills
// separately instead of as a category map.
func Terms(tax *taxonomy.Taxonomy, category, text string) types.TermFindings {
	normalized := parsing.Normalize(text)

	findings := types.TermFindings{
		Found:     []string{},
		Frequency: make(map[string]int),
	}

	for _, skill := range tax.Skills(category) {
		matcher := tax.Matcher(skill)
		if matcher == nil {
			continue
		}
		count := matcher.Count(normalized)
		findings.Frequency[skill] = count
		if count > 0 {
			findings.Found = append(findings.Found, skill)
		}
	}

	return findings
}
