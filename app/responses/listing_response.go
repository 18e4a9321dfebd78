package responses

import (
	"github.com/lowcountrylister/listing-service/app/models"
	"github.com/lowcountrylister/listing-service/internal/directory"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// SuggestResponse carries ranked autocomplete entries.
type SuggestResponse struct {
	Query            string   `json:"query"`
	Suggestions      []string `json:"suggestions"`
	ProcessingTimeMs int64    `json:"processing_time_ms"`
}

// ResolveResponse carries a neighborhood resolution plus the amenity
// defaults the wizard preselects from it.
type ResolveResponse struct {
	Result           models.DetectionResult `json:"result"`
	TypicalAmenities []string               `json:"typical_amenities,omitempty"`
	UsePiazza        bool                   `json:"use_piazza"`
	CacheHit         bool                   `json:"cache_hit"`
	ProcessingTimeMs int64                  `json:"processing_time_ms"`
}

// ScoreResponse carries an authenticity result for display.
type ScoreResponse struct {
	Result models.AuthenticityResult `json:"result"`
}

// ContextResponse carries the generator context string.
type ContextResponse struct {
	Neighborhood string `json:"neighborhood"`
	Context      string `json:"context"`
}

// NeighborhoodListResponse lists directory records.
type NeighborhoodListResponse struct {
	Names []string `json:"names"`
	Total int      `json:"total"`
}

// ValidationResponse reports directory data-quality findings.
type ValidationResponse struct {
	Issues    []directory.Issue `json:"issues"`
	HasErrors bool              `json:"has_errors"`
}

// HealthCheckResponse is the liveness payload.
type HealthCheckResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Uptime    string            `json:"uptime"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}
