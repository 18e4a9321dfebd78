package models

// Confidence is the three-valued certainty indicator shared by the
// resolver and the authenticity scorer.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Method records which resolution rule produced a DetectionResult.
// MethodCoordinates is reserved for a future bounds-based rule; no
// implemented rule emits it.
type Method string

const (
	MethodZip         Method = "zip"
	MethodName        Method = "name"
	MethodCoordinates Method = "coordinates"
	MethodNone        Method = "none"
)

// DetectionResult is the outcome of resolving a full address string.
// A nil Neighborhood with low confidence is an expected, common outcome,
// not an error.
type DetectionResult struct {
	Neighborhood *NeighborhoodRecord `json:"neighborhood"`
	Confidence   Confidence          `json:"confidence"`
	Method       Method              `json:"method"`
}
