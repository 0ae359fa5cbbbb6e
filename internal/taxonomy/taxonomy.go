// Package taxonomy provides the immutable skill vocabulary the extractors
// match against. A Taxonomy is built once, compiles every skill into a
// word-boundary matcher up front, and is safe for concurrent use.
package taxonomy

import (
	"fmt"
	"sync"
)

// Taxonomy is a read-only registry of canonical skills grouped by category.
// Category order and per-category skill order are fixed at construction.
type Taxonomy struct {
	categories []string
	skills     map[string][]string
	matchers   map[string]*Matcher

	// invalid holds skill entries whose pattern failed to compile. These are
	// data-quality problems in the vocabulary, not matching errors: the
	// skills are simply never found.
	invalid []string
}

// New builds a Taxonomy from ordered categories and their skill lists.
// Every skill pattern is compiled here, once; skills that fail to compile
// are recorded and treated as never matching.
func New(categories []string, skills map[string][]string) (*Taxonomy, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("taxonomy: no categories")
	}

	t := &Taxonomy{
		categories: make([]string, len(categories)),
		skills:     make(map[string][]string, len(categories)),
		matchers:   make(map[string]*Matcher),
	}
	copy(t.categories, categories)

	for _, cat := range categories {
		list, ok := skills[cat]
		if !ok {
			return nil, fmt.Errorf("taxonomy: category %q has no skill list", cat)
		}
		t.skills[cat] = append([]string(nil), list...)

		for _, skill := range list {
			if _, exists := t.matchers[skill]; exists {
				continue // same skill listed under several categories
			}
			m, err := compileMatcher(skill)
			if err != nil {
				t.invalid = append(t.invalid, skill)
				continue
			}
			t.matchers[skill] = m
		}
	}

	return t, nil
}

// Categories returns the category names in canonical order.
func (t *Taxonomy) Categories() []string {
	return append([]string(nil), t.categories...)
}

// Skills returns the canonical skills of a category in taxonomy order.
// Unknown categories yield nil.
func (t *Taxonomy) Skills(category string) []string {
	return append([]string(nil), t.skills[category]...)
}

// AllSkills returns every distinct canonical skill across all categories,
// in category-then-taxonomy order.
func (t *Taxonomy) AllSkills() []string {
	var all []string
	seen := make(map[string]bool, len(t.matchers))
	for _, cat := range t.categories {
		for _, skill := range t.skills[cat] {
			if !seen[skill] {
				seen[skill] = true
				all = append(all, skill)
			}
		}
	}
	return all
}

// Matcher returns the precompiled matcher for a canonical skill, or nil for
// unknown or invalid entries.
func (t *Taxonomy) Matcher(skill string) *Matcher {
	return t.matchers[skill]
}

// InvalidSkills reports vocabulary entries whose patterns failed to
// compile. Useful for surfacing data-quality issues in custom taxonomies.
func (t *Taxonomy) InvalidSkills() []string {
	return append([]string(nil), t.invalid...)
}

var (
	defaultOnce sync.Once
	defaultTax  *Taxonomy

	resumeOnce sync.Once
	resumeTax  *Taxonomy
)

// Default returns the built-in categorized taxonomy used for job matching.
// It is compiled on first use and shared; callers must treat it as
// immutable.
func Default() *Taxonomy {
	defaultOnce.Do(func() {
		t, err := New(defaultCategories, defaultSkills)
		if err != nil {
			// The built-in vocabulary is static; failing to build it is a
			// programming error.
			panic(fmt.Sprintf("taxonomy: building default: %v", err))
		}
		defaultTax = t
	})
	return defaultTax
}

// Resume returns the simpler technical/soft taxonomy used by resume
// completeness scoring.
func Resume() *Taxonomy {
	resumeOnce.Do(func() {
		t, err := New(resumeCategories, resumeSkills)
		if err != nil {
			panic(fmt.Sprintf("taxonomy: building resume vocabulary: %v", err))
		}
		resumeTax = t
	})
	return resumeTax
}

// Category names of the Resume taxonomy.
const (
	CategoryTechnical = "technical"
	CategorySoft      = "soft"
)
