package gap

import (
	"fmt"
	"strings"

	"github.com/Samtech361/Jobupdates-cs-project/internal/taxonomy"
)

// categoryAdvice gives each built-in category a short learning suggestion.
// Unknown categories fall back to a generic line.
var categoryAdvice = map[string]string{
	"languages": "Practice these languages through small projects or coding exercises",
	"frontend":  "Build a portfolio project using these frontend technologies",
	"backend":   "Implement a small API service to gain hands-on backend experience",
	"databases": "Work through tutorials covering these database systems",
	"cloud":     "Pursue hands-on labs or an entry certification for these platforms",
	"testing":   "Add automated tests to an existing project using these tools",
	"tools":     "Incorporate these tools into your daily development workflow",
	"concepts":  "Study these concepts and apply them in a practice project",
}

// recommendations turns the missing-skill map into one deterministic line
// per category, in taxonomy category order.
func recommendations(tax *taxonomy.Taxonomy, missing map[string][]string) []string {
	var recs []string
	for _, category := range tax.Categories() {
		skills, ok := missing[category]
		if !ok {
			continue
		}

		advice, ok := categoryAdvice[category]
		if !ok {
			advice = "Consider gaining experience with these skills"
		}
		recs = append(recs, fmt.Sprintf("%s (%s): %s.", advice, category, strings.Join(skills, ", ")))
	}
	return recs
}
