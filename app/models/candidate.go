package models

// ScoredCandidate pairs a gazetteer entry with its banded match score.
// Matcher-internal and ephemeral: created per query, discarded once the
// top-N slice has been cut.
type ScoredCandidate struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}
