package types

// Degree identifies an education tier detected in free text.
type Degree string

// Degree tiers, highest first.
const (
	DegreePhD       Degree = "phd"
	DegreeMasters   Degree = "masters"
	DegreeBachelors Degree = "bachelors"
	DegreeAssociate Degree = "associate"
)

// ExperienceMention is a single "N years" statement found in a text, with a
// window of surrounding source text for context.
type ExperienceMention struct {
	Years   int    `json:"years"`
	Context string `json:"context"`
}

// ExperienceSignal summarizes the years-of-experience statements in a text.
// TotalYears is the maximum years value found across all mentions, or nil
// when the text states no number. Taking the max avoids undercounting when
// several roles are described informally.
type ExperienceSignal struct {
	TotalYears  *int                `json:"total_years"`
	Experiences []ExperienceMention `json:"experiences"`
}

// EducationSignal summarizes degree mentions in a text. Degrees holds every
// tier whose pattern matched; HighestDegree is the highest of those, or
// empty when no degree was detected.
type EducationSignal struct {
	HighestDegree Degree   `json:"highest_degree,omitempty"`
	Degrees       []Degree `json:"degrees"`
}
