package requests

// ResolveAddressRequest asks for a one-shot neighborhood resolution.
type ResolveAddressRequest struct {
	Address string `json:"address" binding:"required"`
}

// ScoreDescriptionRequest asks for an authenticity score over generated
// copy.
type ScoreDescriptionRequest struct {
	Description string `json:"description"`
}

// BuildContextRequest asks for the generator context of a neighborhood.
type BuildContextRequest struct {
	Neighborhood     string `json:"neighborhood" binding:"required"`
	IncludeProximity bool   `json:"include_proximity,omitempty"`
}
