package directory

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/xrash/smetrics"
)

// Severity classifies a validation finding. Errors break resolver
// invariants; warnings flag data that relies on directory order being
// deliberate.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one finding from directory validation.
type Issue struct {
	Severity Severity `json:"severity"`
	Record   string   `json:"record"`
	Message  string   `json:"message"`
}

var zipPattern = regexp.MustCompile(`^\d{5}$`)

// Near-duplicate thresholds, tuned on the fuzzy parameters used for
// candidate scoring in address matching (JaroWinkler boost 0.7, prefix 4).
const (
	nearDupJaroWinkler = 0.93
	nearDupLevenshtein = 2
)

// Validate runs the load-time data-quality checks over the directory:
// zip codes assigned to more than one neighborhood, malformed zips,
// cross-record name/alias collisions, near-duplicate names that would
// make the declaration-order tie-break surprising, inverted bounds, and
// missing vocabulary. These are configuration defects, not runtime
// errors; the matching functions stay total regardless.
func Validate(d *Directory) []Issue {
	var issues []Issue

	zipOwner := make(map[string]string)
	type namedString struct {
		owner string
		text  string
		kind  string
	}
	var identifiers []namedString

	for i := range d.records {
		rec := &d.records[i]

		for _, zip := range rec.ZipCodes {
			if !zipPattern.MatchString(zip) {
				issues = append(issues, Issue{
					Severity: SeverityError,
					Record:   rec.Name,
					Message:  fmt.Sprintf("malformed zip code %q", zip),
				})
				continue
			}
			if owner, taken := zipOwner[zip]; taken {
				issues = append(issues, Issue{
					Severity: SeverityError,
					Record:   rec.Name,
					Message:  fmt.Sprintf("zip code %s already assigned to %q", zip, owner),
				})
				continue
			}
			zipOwner[zip] = rec.Name
		}

		if rec.Bounds.North <= rec.Bounds.South {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Record:   rec.Name,
				Message:  "bounds: north is not above south",
			})
		}
		if rec.Bounds.East <= rec.Bounds.West {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Record:   rec.Name,
				Message:  "bounds: east is not right of west",
			})
		}

		if rec.Vocabulary.ArchitecturalStyle == "" {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Record:   rec.Name,
				Message:  "vocabulary has no architectural style",
			})
		}
		if len(rec.Vocabulary.ProximityTerms) == 0 {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Record:   rec.Name,
				Message:  "vocabulary has no proximity terms",
			})
		}

		identifiers = append(identifiers, namedString{rec.Name, rec.Name, "name"})
		for _, alias := range rec.Aliases {
			identifiers = append(identifiers, namedString{rec.Name, alias, "alias"})
		}
	}

	// Cross-record identifier collisions. Exact collisions are resolved by
	// declaration order at runtime, so they are warnings; near-duplicates
	// usually indicate a typo in the data.
	for i := 0; i < len(identifiers); i++ {
		for j := i + 1; j < len(identifiers); j++ {
			a, b := identifiers[i], identifiers[j]
			if a.owner == b.owner {
				continue
			}
			la, lb := strings.ToLower(a.text), strings.ToLower(b.text)
			if la == lb {
				issues = append(issues, Issue{
					Severity: SeverityWarning,
					Record:   b.owner,
					Message: fmt.Sprintf("%s %q collides with %s of %q; declaration order decides resolution",
						b.kind, b.text, a.kind, a.owner),
				})
				continue
			}
			if strings.Contains(la, lb) || strings.Contains(lb, la) {
				issues = append(issues, Issue{
					Severity: SeverityWarning,
					Record:   b.owner,
					Message: fmt.Sprintf("%s %q overlaps %s %q of %q as a substring; declaration order decides resolution",
						b.kind, b.text, a.kind, a.text, a.owner),
				})
				continue
			}
			jw := smetrics.JaroWinkler(la, lb, 0.7, 4)
			dist := levenshtein.ComputeDistance(la, lb)
			if jw >= nearDupJaroWinkler || dist <= nearDupLevenshtein {
				issues = append(issues, Issue{
					Severity: SeverityWarning,
					Record:   b.owner,
					Message: fmt.Sprintf("%s %q is a near-duplicate of %s %q of %q (jw=%.2f, lev=%d)",
						b.kind, b.text, a.kind, a.text, a.owner, jw, dist),
				})
			}
		}
	}

	return issues
}

// HasErrors reports whether any issue is an error rather than a warning.
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}
