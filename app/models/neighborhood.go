package models

// Bounds is a geographic bounding box for a neighborhood. It is carried as
// metadata for the map layer only; resolution never consults it.
type Bounds struct {
	North float64 `yaml:"north" json:"north"`
	South float64 `yaml:"south" json:"south"`
	East  float64 `yaml:"east" json:"east"`
	West  float64 `yaml:"west" json:"west"`
}

// Vocabulary holds the locale-specific word substitutions handed to the
// text generator (e.g. "piazza" instead of "porch").
type Vocabulary struct {
	PorchTerm             string   `yaml:"porch_term,omitempty" json:"porch_term,omitempty"`
	BalconyTerm           string   `yaml:"balcony_term,omitempty" json:"balcony_term,omitempty"`
	ArchitecturalStyle    string   `yaml:"architectural_style" json:"architectural_style"`
	NeighborhoodVibe      string   `yaml:"neighborhood_vibe" json:"neighborhood_vibe"`
	ProximityTerms        []string `yaml:"proximity_terms" json:"proximity_terms"`
}

// NeighborhoodRecord is one named locale in the directory. Name is the
// unique key; the directory is read-only after load and its declaration
// order is the resolver tie-break for overlapping aliases.
type NeighborhoodRecord struct {
	Name             string     `yaml:"name" json:"name"`
	Aliases          []string   `yaml:"aliases" json:"aliases"`
	ZipCodes         []string   `yaml:"zip_codes" json:"zip_codes"`
	Bounds           Bounds     `yaml:"bounds" json:"bounds"`
	Description      string     `yaml:"description" json:"description"`
	Vibes            string     `yaml:"vibes" json:"vibes"`
	Attractions      string     `yaml:"attractions" json:"attractions"`
	Scenery          string     `yaml:"scenery" json:"scenery"`
	Proximities      string     `yaml:"proximities" json:"proximities"`
	TypicalAmenities []string   `yaml:"typical_amenities" json:"typical_amenities"`
	Vocabulary       Vocabulary `yaml:"vocabulary" json:"vocabulary"`
	Landmarks        []string   `yaml:"landmarks" json:"landmarks"`
	SellingPoints    []string   `yaml:"selling_points" json:"selling_points"`
}
