package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lowcountrylister/listing-service/app/responses"
	"github.com/lowcountrylister/listing-service/app/services"
	"github.com/lowcountrylister/listing-service/internal/directory"
	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DirectoryController exposes the neighborhood directory and its admin
// operations.
type DirectoryController struct {
	listingService *services.ListingService
	collator       *collate.Collator
	logger         *zap.Logger
}

// NewDirectoryController creates a DirectoryController.
func NewDirectoryController(listingService *services.ListingService, logger *zap.Logger) *DirectoryController {
	return &DirectoryController{
		listingService: listingService,
		collator:       collate.New(language.AmericanEnglish),
		logger:         logger,
	}
}

// ListNeighborhoods returns neighborhood names. Directory order is a
// resolver concern, not a display concern, so the listing is collated
// alphabetically for the UI.
func (dc *DirectoryController) ListNeighborhoods(c *gin.Context) {
	names := dc.listingService.Neighborhoods()

	sorted := make([]string, len(names))
	for i := range names {
		sorted[i] = names[i].Name
	}
	dc.collator.SortStrings(sorted)

	c.JSON(http.StatusOK, responses.NeighborhoodListResponse{
		Names: sorted,
		Total: len(sorted),
	})
}

// GetNeighborhood returns one full record by canonical name.
func (dc *DirectoryController) GetNeighborhood(c *gin.Context) {
	name := c.Param("name")
	rec, ok := dc.listingService.Neighborhood(name)
	if !ok {
		c.JSON(http.StatusNotFound, responses.ErrorResponse{
			Error:   "NEIGHBORHOOD_NOT_FOUND",
			Message: "unknown neighborhood: " + name,
		})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// ValidateDirectory runs the data-quality checks and reports findings.
func (dc *DirectoryController) ValidateDirectory(c *gin.Context) {
	issues := dc.listingService.ValidateDirectory()
	if issues == nil {
		issues = []directory.Issue{}
	}

	dc.logger.Info("directory validation requested", zap.Int("issues", len(issues)))
	c.JSON(http.StatusOK, responses.ValidationResponse{
		Issues:    issues,
		HasErrors: directory.HasErrors(issues),
	})
}

// InvalidateCache drops all cached resolutions and suggestions.
func (dc *DirectoryController) InvalidateCache(c *gin.Context) {
	if err := dc.listingService.InvalidateResolutionCache(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "CACHE_ERROR",
			Message: "failed to invalidate cache: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cache invalidated"})
}

// GetStats reports cache counters.
func (dc *DirectoryController) GetStats(c *gin.Context) {
	stats, err := dc.listingService.CacheStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "STATS_ERROR",
			Message: "failed to read cache stats: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, stats)
}
