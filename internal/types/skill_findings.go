package types

// SkillFindings records which canonical taxonomy skills appear in a text.
//
// Found maps category name to the matched canonical skills in taxonomy
// order, duplicates removed. Categories with zero matches are omitted from
// the map entirely rather than carried as empty lists.
//
// Frequency maps every canonical skill in the taxonomy to its occurrence
// count in the text, including zeroes. It is independent of the
// per-category omission rule above.
type SkillFindings struct {
	Found     map[string][]string `json:"found"`
	Frequency map[string]int      `json:"frequency"`
}

// FlatFound returns the distinct matched skills across all categories,
// preserving category and taxonomy order. Skills listed under more than one
// category appear once.
func (f SkillFindings) FlatFound(categoryOrder []string) []string {
	var flat []string
	seen := make(map[string]bool)
	for _, cat := range categoryOrder {
		for _, skill := range f.Found[cat] {
			if !seen[skill] {
				seen[skill] = true
				flat = append(flat, skill)
			}
		}
	}
	return flat
}

// TermFindings is the flat (uncategorized) variant of SkillFindings used by
// resume-only analysis, where skills split into just technical and soft
// vocabularies.
type TermFindings struct {
	Found     []string       `json:"found"`
	Frequency map[string]int `json:"frequency"`
}
