package suggest

import (
	"regexp"
	"sort"
	"strings"

	"github.com/lowcountrylister/listing-service/app/models"
	"github.com/lowcountrylister/listing-service/internal/gazetteer"
	"github.com/lowcountrylister/listing-service/internal/normalizer"
	"go.uber.org/zap"
)

// MaxSuggestions bounds every Suggest result.
const MaxSuggestions = 8

// leadingHouseNumber strips a house-number token from the front of a
// query so "123 Mount P" and "Mount P" rank identically.
var leadingHouseNumber = regexp.MustCompile(`^\d+\s*`)

// Matcher produces ranked autocomplete suggestions from the gazetteer.
// Stateless apart from the read-only gazetteer, so safe for concurrent use.
type Matcher struct {
	gaz    *gazetteer.Gazetteer
	logger *zap.Logger
}

// NewMatcher creates a Matcher over the given gazetteer.
func NewMatcher(gaz *gazetteer.Gazetteer, logger *zap.Logger) *Matcher {
	return &Matcher{gaz: gaz, logger: logger}
}

// Suggest returns at most MaxSuggestions gazetteer entries ranked by the
// banded score, ties kept in gazetteer declaration order. An empty query
// yields nil (the interactive caller decides whether to show defaults).
// A purely numeric query, or a query matching nothing, yields the curated
// popular-locations list so the UI never goes blank mid-typing.
func (m *Matcher) Suggest(query string) []string {
	if query == "" {
		return nil
	}

	textPortion := leadingHouseNumber.ReplaceAllString(query, "")
	if strings.TrimSpace(textPortion) == "" {
		return m.gaz.Popular()
	}

	normalizedQuery := normalizer.Normalize(textPortion)

	candidates := make([]models.ScoredCandidate, 0, m.gaz.Len())
	for _, entry := range m.gaz.Entries() {
		score := Score(normalizer.Normalize(entry), normalizedQuery)
		if score > 0 {
			candidates = append(candidates, models.ScoredCandidate{Name: entry, Score: score})
		}
	}

	// Stable: equal scores keep gazetteer declaration order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) == 0 {
		m.logger.Debug("no gazetteer match, falling back to popular locations",
			zap.String("query", query))
		return m.gaz.Popular()
	}

	n := len(candidates)
	if n > MaxSuggestions {
		n = MaxSuggestions
	}
	results := make([]string, n)
	for i := 0; i < n; i++ {
		results[i] = candidates[i].Name
	}
	return results
}

// Score computes the banded match score between an already-normalized
// gazetteer entry and an already-normalized query:
//
//	100  exact equality
//	 90  entry starts with query
//	 80  every query word matched and one hit the entry's first word
//	 70  every query word matched, no first-word hit
//	 60  at least 70% of query words matched (substring hits count 0.5)
//	 50  entry contains query as a raw substring
//	  0  no match
//
// An empty query is a vacuous prefix of any non-empty entry and scores 90;
// Suggest never passes one because it returns early on empty input.
func Score(entry, query string) int {
	if entry == query {
		return 100
	}
	if strings.HasPrefix(entry, query) {
		return 90
	}

	queryWords := strings.Fields(query)
	entryWords := strings.Fields(entry)

	matched := 0.0
	firstWordHit := false
	for _, qw := range queryWords {
		credit := 0.0
		for i, ew := range entryWords {
			if strings.HasPrefix(ew, qw) {
				credit = 1.0
				if i == 0 {
					firstWordHit = true
				}
				break
			}
			if credit == 0 && strings.Contains(ew, qw) {
				credit = 0.5
			}
		}
		matched += credit
	}

	total := float64(len(queryWords))
	switch {
	case total > 0 && matched == total && firstWordHit:
		return 80
	case total > 0 && matched == total:
		return 70
	case total > 0 && matched >= 0.7*total:
		return 60
	case strings.Contains(entry, query):
		return 50
	}
	return 0
}
