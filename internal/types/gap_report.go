package types

// GapReport is the skills-gap diff between a job posting and a resume.
// Each map goes category -> canonical skill list. Missing holds the skills
// present in Required but absent from Found for the same category;
// categories with nothing missing are omitted from Missing, mirroring the
// extractor's empty-category omission policy.
type GapReport struct {
	Required map[string][]string `json:"required"`
	Found    map[string][]string `json:"found"`
	Missing  map[string][]string `json:"missing"`

	// Recommendations are deterministic, human-readable suggestions derived
	// from Missing.
	Recommendations []string `json:"recommendations,omitempty"`
}
