package resolver

import (
	"regexp"
	"strings"

	"github.com/lowcountrylister/listing-service/app/models"
	"github.com/lowcountrylister/listing-service/internal/directory"
	"go.uber.org/zap"
)

// First standalone 5-digit run in the address.
var zipCode = regexp.MustCompile(`\b\d{5}\b`)

// Generic markers for the metro region: mentioning these alone is not
// enough to pick a neighborhood.
var regionMarker = regexp.MustCompile(`\b(charleston|lowcountry|south carolina|sc)\b`)

// Resolver maps a full address string to a neighborhood record with a
// confidence level. Rules are evaluated in a fixed order and the first
// applicable one wins: zip exact match, then name/alias substring in
// directory declaration order, then the low-confidence fallback.
type Resolver struct {
	dir    *directory.Directory
	logger *zap.Logger
}

// NewResolver creates a Resolver over the given directory.
func NewResolver(dir *directory.Directory, logger *zap.Logger) *Resolver {
	return &Resolver{dir: dir, logger: logger}
}

// Resolve always returns a DetectionResult; a nil neighborhood with low
// confidence is the expected outcome for addresses outside the directory.
func (r *Resolver) Resolve(address string) models.DetectionResult {
	if zip := zipCode.FindString(address); zip != "" {
		for _, rec := range r.dir.Records() {
			for _, known := range rec.ZipCodes {
				if zip == known {
					r.logger.Debug("resolved by zip code",
						zap.String("zip", zip),
						zap.String("neighborhood", rec.Name))
					return models.DetectionResult{
						Neighborhood: r.record(rec.Name),
						Confidence:   models.ConfidenceHigh,
						Method:       models.MethodZip,
					}
				}
			}
		}
	}

	lowered := strings.ToLower(address)
	for _, rec := range r.dir.Records() {
		if strings.Contains(lowered, strings.ToLower(rec.Name)) {
			r.logger.Debug("resolved by name",
				zap.String("neighborhood", rec.Name))
			return models.DetectionResult{
				Neighborhood: r.record(rec.Name),
				Confidence:   models.ConfidenceHigh,
				Method:       models.MethodName,
			}
		}
		for _, alias := range rec.Aliases {
			if strings.Contains(lowered, strings.ToLower(alias)) {
				r.logger.Debug("resolved by alias",
					zap.String("alias", alias),
					zap.String("neighborhood", rec.Name))
				return models.DetectionResult{
					Neighborhood: r.record(rec.Name),
					Confidence:   models.ConfidenceHigh,
					Method:       models.MethodName,
				}
			}
		}
	}

	// A bare region mention confirms we are in the right metro but does
	// not identify a neighborhood, so it resolves the same as no match.
	if regionMarker.MatchString(lowered) {
		return models.DetectionResult{
			Neighborhood: nil,
			Confidence:   models.ConfidenceLow,
			Method:       models.MethodNone,
		}
	}

	return models.DetectionResult{
		Neighborhood: nil,
		Confidence:   models.ConfidenceLow,
		Method:       models.MethodNone,
	}
}

func (r *Resolver) record(name string) *models.NeighborhoodRecord {
	rec, _ := r.dir.Get(name)
	return rec
}
