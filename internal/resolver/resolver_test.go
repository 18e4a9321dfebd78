package resolver

import (
	"testing"

	"github.com/lowcountrylister/listing-service/app/models"
	"github.com/lowcountrylister/listing-service/internal/directory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestResolver(t *testing.T) (*Resolver, *directory.Directory) {
	t.Helper()
	dir, err := directory.Load()
	require.NoError(t, err)
	return NewResolver(dir, zap.NewNop()), dir
}

func TestResolve_ByZipCode(t *testing.T) {
	r, _ := newTestResolver(t)

	result := r.Resolve("45 Murray Blvd, Charleston, SC 29401")
	require.NotNil(t, result.Neighborhood)
	assert.Equal(t, "Charleston Historic District", result.Neighborhood.Name)
	assert.Equal(t, models.ConfidenceHigh, result.Confidence)
	assert.Equal(t, models.MethodZip, result.Method)
}

func TestResolve_ZipBeatsConflictingName(t *testing.T) {
	// The zip rule runs first, so a Mount Pleasant zip wins even when the
	// street name spells out a different neighborhood.
	r, _ := newTestResolver(t)

	result := r.Resolve("123 Folly Beach Rd, 29464")
	require.NotNil(t, result.Neighborhood)
	assert.Equal(t, "Mount Pleasant", result.Neighborhood.Name)
	assert.Equal(t, models.MethodZip, result.Method)
}

func TestResolve_ByNeighborhoodName(t *testing.T) {
	r, _ := newTestResolver(t)

	result := r.Resolve("718 Simmons St, Mount Pleasant")
	require.NotNil(t, result.Neighborhood)
	assert.Equal(t, "Mount Pleasant", result.Neighborhood.Name)
	assert.Equal(t, models.ConfidenceHigh, result.Confidence)
	assert.Equal(t, models.MethodName, result.Method)
}

func TestResolve_NameMatchingIsCaseInsensitive(t *testing.T) {
	r, _ := newTestResolver(t)

	result := r.Resolve("12 Center St, FOLLY BEACH")
	require.NotNil(t, result.Neighborhood)
	assert.Equal(t, "Folly Beach", result.Neighborhood.Name)
}

func TestResolve_EveryAliasResolvesToItsRecord(t *testing.T) {
	r, dir := newTestResolver(t)

	for _, rec := range dir.Records() {
		for _, alias := range rec.Aliases {
			result := r.Resolve("123 Main St, " + alias)
			require.NotNil(t, result.Neighborhood, "alias %q", alias)
			assert.Equal(t, rec.Name, result.Neighborhood.Name, "alias %q", alias)
			assert.Equal(t, models.MethodName, result.Method, "alias %q", alias)
		}
	}
}

func TestResolve_AliasExamples(t *testing.T) {
	r, _ := newTestResolver(t)

	tests := map[string]string{
		"10 Broad St, South of Broad":   "Charleston Historic District",
		"55 Rifle Range Rd, Mt Pleasant": "Mount Pleasant",
		"9 Ocean Blvd, IOP":              "Isle of Palms",
		"4 Fort Lamar Rd, JI":            "James Island",
		"3 Spruill Ave, Park Circle":     "North Charleston",
	}
	for address, want := range tests {
		result := r.Resolve(address)
		require.NotNil(t, result.Neighborhood, "address %q", address)
		assert.Equal(t, want, result.Neighborhood.Name, "address %q", address)
	}
}

func TestResolve_OverlappingNamesUseDeclarationOrder(t *testing.T) {
	// "Folly" is an alias of Folly Beach and a substring of nothing
	// earlier, so the first declared owner wins.
	r, _ := newTestResolver(t)

	result := r.Resolve("88 East Folly Ct")
	require.NotNil(t, result.Neighborhood)
	assert.Equal(t, "Folly Beach", result.Neighborhood.Name)
}

func TestResolve_UnknownAddress(t *testing.T) {
	r, _ := newTestResolver(t)

	result := r.Resolve("1 Unknown Rd")
	assert.Nil(t, result.Neighborhood)
	assert.Equal(t, models.ConfidenceLow, result.Confidence)
	assert.Equal(t, models.MethodNone, result.Method)
}

func TestResolve_BareRegionMentionDoesNotResolve(t *testing.T) {
	// Region markers confirm the metro but never pick a neighborhood;
	// "Charleston" alone must not resolve to the historic district.
	r, _ := newTestResolver(t)

	for _, address := range []string{
		"Somewhere in the Lowcountry",
		"100 Oak St, South Carolina",
		"migrating to SC soon",
	} {
		result := r.Resolve(address)
		assert.Nil(t, result.Neighborhood, "address %q", address)
		assert.Equal(t, models.ConfidenceLow, result.Confidence, "address %q", address)
		assert.Equal(t, models.MethodNone, result.Method, "address %q", address)
	}
}

func TestResolve_UnknownZipFallsThroughToName(t *testing.T) {
	r, _ := newTestResolver(t)

	result := r.Resolve("4 Station Ct, Folly Beach, SC 99999")
	require.NotNil(t, result.Neighborhood)
	assert.Equal(t, "Folly Beach", result.Neighborhood.Name)
	assert.Equal(t, models.MethodName, result.Method)
}

func TestResolve_EmptyAddress(t *testing.T) {
	r, _ := newTestResolver(t)

	result := r.Resolve("")
	assert.Nil(t, result.Neighborhood)
	assert.Equal(t, models.ConfidenceLow, result.Confidence)
	assert.Equal(t, models.MethodNone, result.Method)
}

func TestResolve_IsDeterministic(t *testing.T) {
	r, _ := newTestResolver(t)

	first := r.Resolve("718 Simmons St, Mount Pleasant, SC 29464")
	second := r.Resolve("718 Simmons St, Mount Pleasant, SC 29464")
	assert.Equal(t, first, second)
}
