package gazetteer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	gaz, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, gaz.Entries())
	assert.Equal(t, gaz.Len(), len(gaz.Entries()))
	assert.Equal(t, 8, len(gaz.Popular()))
}

func TestLoad_PopularIsSubsetOfEntries(t *testing.T) {
	gaz, err := Load()
	require.NoError(t, err)

	known := make(map[string]struct{}, gaz.Len())
	for _, e := range gaz.Entries() {
		known[e] = struct{}{}
	}
	for _, p := range gaz.Popular() {
		_, ok := known[p]
		assert.True(t, ok, "popular entry %q missing from gazetteer", p)
	}
}

func TestLoad_EntriesAreUnique(t *testing.T) {
	gaz, err := Load()
	require.NoError(t, err)

	seen := make(map[string]struct{}, gaz.Len())
	for _, e := range gaz.Entries() {
		_, dup := seen[e]
		assert.False(t, dup, "duplicate entry %q", e)
		seen[e] = struct{}{}
	}
}

func TestLoad_DeclarationOrderStartsWithDowntown(t *testing.T) {
	// Declaration order is the matcher tie-break, so the flagship entry
	// stays first.
	gaz, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Downtown Charleston, SC", gaz.Entries()[0])
}
