package locale

import (
	"math/rand"
	"strings"

	"github.com/lowcountrylister/listing-service/app/models"
)

// historicDowntownName is the one neighborhood whose listings always use
// "piazza". This is a named special case for the historic downtown, not a
// general rule; everywhere else the record's own vocabulary decides.
const historicDowntownName = "Charleston Historic District"

// TypicalAmenities returns the record's default amenity labels verbatim.
func TypicalAmenities(rec *models.NeighborhoodRecord) []string {
	if rec == nil {
		return nil
	}
	return rec.TypicalAmenities
}

// ProximityTerms returns the record's proximity phrases verbatim.
func ProximityTerms(rec *models.NeighborhoodRecord) []string {
	if rec == nil {
		return nil
	}
	return rec.Vocabulary.ProximityTerms
}

// ShouldUsePiazza reports whether generated copy should say "piazza"
// rather than "porch" for this record.
func ShouldUsePiazza(rec *models.NeighborhoodRecord) bool {
	if rec == nil {
		return false
	}
	return rec.Name == historicDowntownName || rec.Vocabulary.PorchTerm == "piazza"
}

// Projector builds generator context strings. The proximity pick is the
// single source of randomness in the engine, so it is injected: wrap a
// seeded source via NewProjector for reproducible output, or supply a
// pick function directly in tests.
type Projector struct {
	pick func(n int) int
}

// NewProjector returns a Projector backed by a seeded pseudo-random
// source.
func NewProjector(seed int64) *Projector {
	rng := rand.New(rand.NewSource(seed))
	return &Projector{pick: rng.Intn}
}

// NewProjectorWithPick returns a Projector using the given choice
// function; pick(n) must return an index in [0, n).
func NewProjectorWithPick(pick func(n int) int) *Projector {
	return &Projector{pick: pick}
}

// BuildContext concatenates the record's description with, when requested
// and available, a sentence using one proximity term chosen by the
// projector's pick function.
func (p *Projector) BuildContext(rec *models.NeighborhoodRecord, includeProximity bool) string {
	if rec == nil {
		return ""
	}
	parts := []string{rec.Description}
	if includeProximity && len(rec.Vocabulary.ProximityTerms) > 0 {
		term := rec.Vocabulary.ProximityTerms[p.pick(len(rec.Vocabulary.ProximityTerms))]
		parts = append(parts, "Residents are just minutes from "+term+".")
	}
	return strings.Join(parts, " ")
}
