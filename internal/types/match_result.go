package types

// ScoreDetails holds the four weighted sub-scores of a match, each rounded
// to an integer percentage in [0, 100].
type ScoreDetails struct {
	Skills       int `json:"skills"`
	Requirements int `json:"requirements"`
	Experience   int `json:"experience"`
	Education    int `json:"education"`
}

// MatchResult is the outcome of scoring one resume against one job posting.
// It is a value recomputed on every call; nothing about it is persisted.
//
// Degraded lists sub-scores that were zeroed because their computation
// failed internally, keyed by dimension name with a short reason. An empty
// map (omitted in JSON) means every sub-score was computed normally.
type MatchResult struct {
	Overall  int               `json:"overall"`
	Details  ScoreDetails      `json:"details"`
	Degraded map[string]string `json:"degraded,omitempty"`
}
