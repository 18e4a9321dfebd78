package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lowcountrylister/listing-service/app/requests"
	"github.com/lowcountrylister/listing-service/app/responses"
	"github.com/lowcountrylister/listing-service/app/services"
	"github.com/lowcountrylister/listing-service/internal/locale"
	"go.uber.org/zap"
)

// ListingController handles the address and description endpoints the
// listing wizard calls.
type ListingController struct {
	listingService *services.ListingService
	logger         *zap.Logger
}

// NewListingController creates a ListingController.
func NewListingController(listingService *services.ListingService, logger *zap.Logger) *ListingController {
	return &ListingController{
		listingService: listingService,
		logger:         logger,
	}
}

// SuggestAddresses returns ranked autocomplete entries for ?q=. Called on
// every keystroke (debounced by the UI), so it never errors on odd input:
// an empty query just returns an empty list.
func (lc *ListingController) SuggestAddresses(c *gin.Context) {
	query := c.Query("q")

	start := time.Now()
	suggestions := lc.listingService.Suggest(query)
	if suggestions == nil {
		suggestions = []string{}
	}

	c.JSON(http.StatusOK, responses.SuggestResponse{
		Query:            query,
		Suggestions:      suggestions,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	})
}

// ResolveAddress resolves a full address to a neighborhood record.
func (lc *ListingController) ResolveAddress(c *gin.Context) {
	var req requests.ResolveAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: "invalid request: " + err.Error(),
		})
		return
	}

	start := time.Now()
	result, cacheHit := lc.listingService.Resolve(c.Request.Context(), req.Address)

	resp := responses.ResolveResponse{
		Result:           result,
		CacheHit:         cacheHit,
		ProcessingTimeMs: time.Since(start).Milliseconds(),
	}
	if result.Neighborhood != nil {
		resp.TypicalAmenities = locale.TypicalAmenities(result.Neighborhood)
		resp.UsePiazza = locale.ShouldUsePiazza(result.Neighborhood)
	}

	c.JSON(http.StatusOK, resp)
}

// ScoreDescription scores generated copy for local authenticity. The
// result is informational only; the UI never blocks on it.
func (lc *ListingController) ScoreDescription(c *gin.Context) {
	var req requests.ScoreDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: "invalid request: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, responses.ScoreResponse{
		Result: lc.listingService.ScoreDescription(req.Description),
	})
}

// BuildContext returns the generator context for a neighborhood.
func (lc *ListingController) BuildContext(c *gin.Context) {
	var req requests.BuildContextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "INVALID_REQUEST",
			Message: "invalid request: " + err.Error(),
		})
		return
	}

	context, ok := lc.listingService.BuildContext(req.Neighborhood, req.IncludeProximity)
	if !ok {
		c.JSON(http.StatusNotFound, responses.ErrorResponse{
			Error:   "NEIGHBORHOOD_NOT_FOUND",
			Message: "unknown neighborhood: " + req.Neighborhood,
		})
		return
	}

	c.JSON(http.StatusOK, responses.ContextResponse{
		Neighborhood: req.Neighborhood,
		Context:      context,
	})
}

// HealthCheck reports service liveness.
func (lc *ListingController) HealthCheck(c *gin.Context) {
	uptime := time.Since(lc.listingService.GetStartTime())

	c.JSON(http.StatusOK, responses.HealthCheckResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Uptime:    uptime.String(),
		Version:   "1.0.0",
		Services: map[string]string{
			"engine": "healthy",
			"cache":  "healthy",
		},
	})
}
