package services

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lowcountrylister/listing-service/app/models"
	"github.com/lowcountrylister/listing-service/internal/authenticity"
	"github.com/lowcountrylister/listing-service/internal/directory"
	"github.com/lowcountrylister/listing-service/internal/locale"
	"github.com/lowcountrylister/listing-service/internal/resolver"
	"github.com/lowcountrylister/listing-service/internal/suggest"
	"go.uber.org/zap"
)

// ListingService orchestrates the address engine for the HTTP surface:
// keystroke suggestions, one-shot resolution with caching, description
// scoring, and generator-context assembly.
type ListingService struct {
	matcher   *suggest.Matcher
	resolver  *resolver.Resolver
	scorer    *authenticity.Scorer
	projector *locale.Projector
	dir       *directory.Directory

	resolutionCache IResolutionCache
	suggestionCache *lru.Cache[string, []string]

	minResolveLength int
	logger           *zap.Logger
	startTime        time.Time
}

// ListingServiceConfig carries the tunables the service needs.
type ListingServiceConfig struct {
	SuggestionCacheSize int
	MinResolveLength    int
	ProjectorSeed       int64
}

// NewListingService wires the engine components together. The suggestion
// cache is purely in-process: suggestions are recomputed on every
// keystroke, so even a small LRU absorbs most of the repeat work.
func NewListingService(
	dir *directory.Directory,
	matcher *suggest.Matcher,
	res *resolver.Resolver,
	scorer *authenticity.Scorer,
	resolutionCache IResolutionCache,
	cfg ListingServiceConfig,
	logger *zap.Logger,
) (*ListingService, error) {
	suggestionCache, err := lru.New[string, []string](cfg.SuggestionCacheSize)
	if err != nil {
		return nil, err
	}

	return &ListingService{
		matcher:          matcher,
		resolver:         res,
		scorer:           scorer,
		projector:        locale.NewProjector(cfg.ProjectorSeed),
		dir:              dir,
		resolutionCache:  resolutionCache,
		suggestionCache:  suggestionCache,
		minResolveLength: cfg.MinResolveLength,
		logger:           logger,
		startTime:        time.Now(),
	}, nil
}

// Suggest returns ranked autocomplete entries for a partial query.
func (ls *ListingService) Suggest(query string) []string {
	if cached, found := ls.suggestionCache.Get(query); found {
		return cached
	}

	start := time.Now()
	results := ls.matcher.Suggest(query)
	ls.suggestionCache.Add(query, results)

	ls.logger.Debug("suggestion lookup",
		zap.String("query", query),
		zap.Int("results", len(results)),
		zap.Duration("duration", time.Since(start)))
	return results
}

// Resolve maps an address to a neighborhood, consulting the resolution
// cache first. Addresses shorter than the configured minimum are not
// worth resolving yet and return the low-confidence shape uncached.
func (ls *ListingService) Resolve(ctx context.Context, address string) (models.DetectionResult, bool) {
	if len(address) < ls.minResolveLength {
		return models.DetectionResult{
			Neighborhood: nil,
			Confidence:   models.ConfidenceLow,
			Method:       models.MethodNone,
		}, false
	}

	if cached, found, err := ls.resolutionCache.Get(ctx, address); err == nil && found {
		return *cached, true
	}

	start := time.Now()
	result := ls.resolver.Resolve(address)

	if err := ls.resolutionCache.Set(ctx, address, &result); err != nil {
		ls.logger.Warn("failed to cache resolution", zap.Error(err))
	}

	ls.logger.Info("resolved address",
		zap.String("confidence", string(result.Confidence)),
		zap.String("method", string(result.Method)),
		zap.Duration("duration", time.Since(start)))
	return result, false
}

// ScoreDescription runs the authenticity scorer over generated copy.
func (ls *ListingService) ScoreDescription(description string) models.AuthenticityResult {
	return ls.scorer.Score(description)
}

// BuildContext assembles the generator context for a neighborhood.
func (ls *ListingService) BuildContext(name string, includeProximity bool) (string, bool) {
	rec, ok := ls.dir.Get(name)
	if !ok {
		return "", false
	}
	return ls.projector.BuildContext(rec, includeProximity), true
}

// Neighborhood returns one record by canonical name.
func (ls *ListingService) Neighborhood(name string) (*models.NeighborhoodRecord, bool) {
	return ls.dir.Get(name)
}

// Neighborhoods returns all records in directory order.
func (ls *ListingService) Neighborhoods() []models.NeighborhoodRecord {
	return ls.dir.Records()
}

// TypicalAmenities projects the default amenity labels for a record.
func (ls *ListingService) TypicalAmenities(name string) ([]string, bool) {
	rec, ok := ls.dir.Get(name)
	if !ok {
		return nil, false
	}
	return locale.TypicalAmenities(rec), true
}

// ValidateDirectory runs the data-quality checks over the live directory.
func (ls *ListingService) ValidateDirectory() []directory.Issue {
	return directory.Validate(ls.dir)
}

// InvalidateResolutionCache drops all cached resolutions.
func (ls *ListingService) InvalidateResolutionCache(ctx context.Context) error {
	ls.suggestionCache.Purge()
	return ls.resolutionCache.Clear(ctx)
}

// CacheStats reports resolution-cache counters.
func (ls *ListingService) CacheStats(ctx context.Context) (*CacheStats, error) {
	return ls.resolutionCache.GetStats(ctx)
}

// GetStartTime reports when the service came up, for health output.
func (ls *ListingService) GetStartTime() time.Time {
	return ls.startTime
}
