package directory

import (
	_ "embed"
	"fmt"

	"github.com/lowcountrylister/listing-service/app/models"
	"gopkg.in/yaml.v3"
)

//go:embed data/neighborhoods.yaml
var neighborhoodsYAML []byte

// Directory is the attribute-bearing neighborhood dataset. Read-only after
// Load; declaration order is preserved because resolution treats it as the
// tie-break for overlapping names and aliases.
type Directory struct {
	records []models.NeighborhoodRecord
	byName  map[string]*models.NeighborhoodRecord
}

type directoryFile struct {
	Neighborhoods []models.NeighborhoodRecord `yaml:"neighborhoods"`
}

// Load parses the embedded neighborhood data. Uniqueness of record names
// is the one invariant enforced here; the richer data-quality checks live
// in Validate and are run by tooling, not on the request path.
func Load() (*Directory, error) {
	var file directoryFile
	if err := yaml.Unmarshal(neighborhoodsYAML, &file); err != nil {
		return nil, fmt.Errorf("parse neighborhood data: %w", err)
	}
	if len(file.Neighborhoods) == 0 {
		return nil, fmt.Errorf("neighborhood data has no records")
	}

	dir := &Directory{
		records: file.Neighborhoods,
		byName:  make(map[string]*models.NeighborhoodRecord, len(file.Neighborhoods)),
	}
	for i := range dir.records {
		rec := &dir.records[i]
		if rec.Name == "" {
			return nil, fmt.Errorf("neighborhood record %d has no name", i)
		}
		if _, dup := dir.byName[rec.Name]; dup {
			return nil, fmt.Errorf("duplicate neighborhood name %q", rec.Name)
		}
		dir.byName[rec.Name] = rec
	}
	return dir, nil
}

// Records returns all neighborhood records in declaration order.
func (d *Directory) Records() []models.NeighborhoodRecord {
	return d.records
}

// Get returns the record with the given canonical name.
func (d *Directory) Get(name string) (*models.NeighborhoodRecord, bool) {
	rec, ok := d.byName[name]
	return rec, ok
}

// Names returns the canonical names in declaration order.
func (d *Directory) Names() []string {
	names := make([]string, len(d.records))
	for i := range d.records {
		names[i] = d.records[i].Name
	}
	return names
}

// Len reports the number of records.
func (d *Directory) Len() int {
	return len(d.records)
}
