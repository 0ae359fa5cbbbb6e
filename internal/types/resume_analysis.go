package types

// BasicMetrics are shape statistics over the raw resume text.
type BasicMetrics struct {
	WordCount         int     `json:"word_count"`
	SentenceCount     int     `json:"sentence_count"`
	CharacterCount    int     `json:"character_count"`
	AverageWordLength float64 `json:"average_word_length"`
}

// ResumeAnalysis is the result of analyzing a resume in isolation, with no
// job posting involved.
type ResumeAnalysis struct {
	Metrics         BasicMetrics     `json:"metrics"`
	TechnicalSkills TermFindings     `json:"technical_skills"`
	SoftSkills      TermFindings     `json:"soft_skills"`
	Experience      ExperienceSignal `json:"experience"`
	Education       EducationSignal  `json:"education"`

	// CompletenessScore is the weighted composite in [0, 100]; see the
	// analysis package for the weighting.
	CompletenessScore int `json:"completeness_score"`
}
