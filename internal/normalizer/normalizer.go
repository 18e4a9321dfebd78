package normalizer

import (
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
)

var reSpaces = regexp.MustCompile(`\s+`)

// abbreviationRule expands one street/geographic abbreviation on word
// boundaries. Rules are applied independently in a single pass each,
// never chained, so the table stays order-insensitive.
type abbreviationRule struct {
	pattern     *regexp.Regexp
	replacement string
}

var abbreviationRules = compileAbbreviations(map[string]string{
	"mt":   "mount",
	"st":   "street",
	"ave":  "avenue",
	"blvd": "boulevard",
	"dr":   "drive",
	"rd":   "road",
	"ln":   "lane",
	"ct":   "court",
	"hwy":  "highway",
	"pkwy": "parkway",
})

func compileAbbreviations(table map[string]string) []abbreviationRule {
	rules := make([]abbreviationRule, 0, len(table))
	for abbr, full := range table {
		rules = append(rules, abbreviationRule{
			pattern:     regexp.MustCompile(`\b` + abbr + `\b`),
			replacement: full,
		})
	}
	return rules
}

// Normalize lowercases, trims and ASCII-folds the input, collapses runs of
// whitespace, and expands the fixed abbreviation table so that queries and
// gazetteer entries compare on equal footing. Total over all strings;
// always returns a string, possibly empty.
func Normalize(text string) string {
	s := strings.ToLower(unidecode.Unidecode(text))
	s = reSpaces.ReplaceAllString(strings.TrimSpace(s), " ")
	for _, rule := range abbreviationRules {
		s = rule.pattern.ReplaceAllString(s, rule.replacement)
	}
	return s
}
