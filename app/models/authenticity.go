package models

// AuthenticityResult classifies how strongly a generated description
// reflects the locale. Created fresh per scoring call; display-only,
// never used to block or retry generation.
type AuthenticityResult struct {
	Score                  Confidence `json:"score"`
	HasLocalTerms          bool       `json:"has_local_terms"`
	HasNeighborhoodMention bool       `json:"has_neighborhood_mention"`
	Suggestions            []string   `json:"suggestions"`
}
