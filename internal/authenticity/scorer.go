package authenticity

import (
	"strings"

	"github.com/lowcountrylister/listing-service/app/models"
	"github.com/lowcountrylister/listing-service/internal/directory"
	"go.uber.org/zap"
)

// localeMarkers are the fixed terms whose presence marks a description as
// locally grounded: the region nickname, the historic porch term, the
// region name, and landscape words the area is known for.
var localeMarkers = []string{
	"lowcountry",
	"piazza",
	"charleston",
	"marsh",
	"live oak",
	"peninsula",
	"harbor",
}

const (
	genericPorchTerm  = "porch"
	historicPorchTerm = "piazza"
)

const (
	suggestPiazza       = `Consider "piazza" instead of "porch" — it's the Charleston term`
	suggestLocalTerms   = `Add locale-specific terminology such as "lowcountry" or "live oak"`
	suggestNeighborhood = "Reference the specific neighborhood by name"
)

// Scorer heuristically classifies generated descriptions by how authentic
// they sound for the metro. Neighborhood mentions are checked against
// canonical directory names only; aliases are deliberately excluded.
type Scorer struct {
	dir    *directory.Directory
	logger *zap.Logger
}

// NewScorer creates a Scorer over the given directory.
func NewScorer(dir *directory.Directory, logger *zap.Logger) *Scorer {
	return &Scorer{dir: dir, logger: logger}
}

// Score is total over any string input; an empty description scores low
// with both flags false.
func (s *Scorer) Score(description string) models.AuthenticityResult {
	lowered := strings.ToLower(description)

	hasLocalTerms := false
	for _, term := range localeMarkers {
		if strings.Contains(lowered, term) {
			hasLocalTerms = true
			break
		}
	}

	hasNeighborhoodMention := false
	for _, name := range s.dir.Names() {
		if strings.Contains(lowered, strings.ToLower(name)) {
			hasNeighborhoodMention = true
			break
		}
	}

	// All applicable suggestions, in fixed order.
	suggestions := []string{}
	if strings.Contains(lowered, genericPorchTerm) && !strings.Contains(lowered, historicPorchTerm) {
		suggestions = append(suggestions, suggestPiazza)
	}
	if !hasLocalTerms {
		suggestions = append(suggestions, suggestLocalTerms)
	}
	if !hasNeighborhoodMention {
		suggestions = append(suggestions, suggestNeighborhood)
	}

	score := models.ConfidenceLow
	switch {
	case hasLocalTerms && hasNeighborhoodMention:
		score = models.ConfidenceHigh
	case hasLocalTerms || hasNeighborhoodMention:
		score = models.ConfidenceMedium
	}

	s.logger.Debug("scored description",
		zap.String("score", string(score)),
		zap.Bool("local_terms", hasLocalTerms),
		zap.Bool("neighborhood_mention", hasNeighborhoodMention))

	return models.AuthenticityResult{
		Score:                  score,
		HasLocalTerms:          hasLocalTerms,
		HasNeighborhoodMention: hasNeighborhoodMention,
		Suggestions:            suggestions,
	}
}
