package gazetteer

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/gazetteer.yaml
var gazetteerYAML []byte

// Gazetteer is the static list of known "Name, State" place names plus the
// curated popular subset used as a no-query default. Compiled into the
// binary; never mutated after Load.
type Gazetteer struct {
	entries []string
	popular []string
}

type gazetteerFile struct {
	Entries []string `yaml:"entries"`
	Popular []string `yaml:"popular"`
}

// Load parses the embedded gazetteer data. The popular subset must be
// drawn from the entry list; anything else is a data defect surfaced at
// startup rather than at query time.
func Load() (*Gazetteer, error) {
	var file gazetteerFile
	if err := yaml.Unmarshal(gazetteerYAML, &file); err != nil {
		return nil, fmt.Errorf("parse gazetteer data: %w", err)
	}
	if len(file.Entries) == 0 {
		return nil, fmt.Errorf("gazetteer data has no entries")
	}

	known := make(map[string]struct{}, len(file.Entries))
	for _, e := range file.Entries {
		if _, dup := known[e]; dup {
			return nil, fmt.Errorf("duplicate gazetteer entry %q", e)
		}
		known[e] = struct{}{}
	}
	for _, p := range file.Popular {
		if _, ok := known[p]; !ok {
			return nil, fmt.Errorf("popular location %q is not a gazetteer entry", p)
		}
	}

	return &Gazetteer{entries: file.Entries, popular: file.Popular}, nil
}

// Entries returns the full place-name list in declaration order.
func (g *Gazetteer) Entries() []string {
	return g.entries
}

// Popular returns the curated popular-locations list in declaration order.
func (g *Gazetteer) Popular() []string {
	return g.popular
}

// Len reports the number of gazetteer entries.
func (g *Gazetteer) Len() int {
	return len(g.entries)
}
