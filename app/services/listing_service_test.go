package services

import (
	"context"
	"testing"

	"github.com/lowcountrylister/listing-service/app/models"
	"github.com/lowcountrylister/listing-service/internal/authenticity"
	"github.com/lowcountrylister/listing-service/internal/directory"
	"github.com/lowcountrylister/listing-service/internal/gazetteer"
	"github.com/lowcountrylister/listing-service/internal/resolver"
	"github.com/lowcountrylister/listing-service/internal/suggest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestListingService(t *testing.T) *ListingService {
	t.Helper()
	logger := zap.NewNop()

	gaz, err := gazetteer.Load()
	require.NoError(t, err)
	dir, err := directory.Load()
	require.NoError(t, err)

	cache, err := NewLRUCacheService(100, logger)
	require.NoError(t, err)

	ls, err := NewListingService(
		dir,
		suggest.NewMatcher(gaz, logger),
		resolver.NewResolver(dir, logger),
		authenticity.NewScorer(dir, logger),
		cache,
		ListingServiceConfig{
			SuggestionCacheSize: 64,
			MinResolveLength:    10,
			ProjectorSeed:       1,
		},
		logger,
	)
	require.NoError(t, err)
	return ls
}

func TestListingService_Suggest(t *testing.T) {
	ls := newTestListingService(t)

	results := ls.Suggest("Dow")
	require.NotEmpty(t, results)
	assert.Equal(t, "Downtown Charleston, SC", results[0])

	// Second lookup is served from the suggestion cache and must agree.
	assert.Equal(t, results, ls.Suggest("Dow"))
}

func TestListingService_ResolveCachesResults(t *testing.T) {
	ls := newTestListingService(t)
	ctx := context.Background()

	first, hit := ls.Resolve(ctx, "718 Simmons St, Mount Pleasant, SC 29464")
	require.NotNil(t, first.Neighborhood)
	assert.Equal(t, "Mount Pleasant", first.Neighborhood.Name)
	assert.False(t, hit)

	second, hit := ls.Resolve(ctx, "718 Simmons St, Mount Pleasant, SC 29464")
	assert.True(t, hit)
	assert.Equal(t, first, second)
}

func TestListingService_ShortAddressSkipsResolution(t *testing.T) {
	ls := newTestListingService(t)
	ctx := context.Background()

	result, hit := ls.Resolve(ctx, "29401")
	assert.Nil(t, result.Neighborhood)
	assert.Equal(t, models.ConfidenceLow, result.Confidence)
	assert.Equal(t, models.MethodNone, result.Method)
	assert.False(t, hit)

	// Short addresses are never cached, so stats show no traffic.
	stats, err := ls.CacheStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalHits+stats.TotalMiss)
}

func TestListingService_ScoreDescription(t *testing.T) {
	ls := newTestListingService(t)

	result := ls.ScoreDescription("Marsh views abound in Mount Pleasant.")
	assert.Equal(t, models.ConfidenceHigh, result.Score)
}

func TestListingService_BuildContext(t *testing.T) {
	ls := newTestListingService(t)

	got, ok := ls.BuildContext("Folly Beach", false)
	require.True(t, ok)
	rec, found := ls.Neighborhood("Folly Beach")
	require.True(t, found)
	assert.Equal(t, rec.Description, got)

	_, ok = ls.BuildContext("Atlantis", true)
	assert.False(t, ok)
}

func TestListingService_Neighborhoods(t *testing.T) {
	ls := newTestListingService(t)

	records := ls.Neighborhoods()
	assert.Len(t, records, 10)

	amenities, ok := ls.TypicalAmenities("Charleston Historic District")
	require.True(t, ok)
	assert.NotEmpty(t, amenities)

	_, ok = ls.TypicalAmenities("Atlantis")
	assert.False(t, ok)
}

func TestListingService_ValidateDirectory(t *testing.T) {
	ls := newTestListingService(t)
	assert.False(t, directory.HasErrors(ls.ValidateDirectory()))
}

func TestListingService_InvalidateResolutionCache(t *testing.T) {
	ls := newTestListingService(t)
	ctx := context.Background()

	ls.Resolve(ctx, "718 Simmons St, Mount Pleasant, SC 29464")
	require.NoError(t, ls.InvalidateResolutionCache(ctx))

	_, hit := ls.Resolve(ctx, "718 Simmons St, Mount Pleasant, SC 29464")
	assert.False(t, hit)
}

func TestListingService_GetStartTime(t *testing.T) {
	ls := newTestListingService(t)
	assert.False(t, ls.GetStartTime().IsZero())
}
