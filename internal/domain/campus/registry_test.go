package campus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLocations() []Location {
	return []Location{
		{Name: "Main Gate", Lat: 18.6195, Lng: 73.9089, Category: "entrance", Keywords: []string{"gate", "entrance"}},
		{Name: "Central Library", Lat: 18.6211, Lng: 73.9102, Category: "academic", Keywords: []string{"library", "study"}},
		{Name: "Canteen", Lat: 18.6208, Lng: 73.9118, Category: "food", Keywords: []string{"food", "chai"}},
		{Name: "CS Department", Lat: 18.6219, Lng: 73.9110, Category: "academic", Keywords: []string{"computer", "labs"}},
	}
}

func TestRegistryGetExactName(t *testing.T) {
	reg := NewRegistry(testLocations())

	loc, ok := reg.Get("Central Library")
	require.True(t, ok)
	assert.Equal(t, "Central Library", loc.Name)
	assert.Equal(t, 18.6211, loc.Lat)
}

func TestRegistryGetIsCaseSensitive(t *testing.T) {
	reg := NewRegistry(testLocations())

	_, ok := reg.Get("central library")
	assert.False(t, ok)

	_, ok = reg.Get("CENTRAL LIBRARY")
	assert.False(t, ok)
}

func TestRegistryGetUnknownName(t *testing.T) {
	reg := NewRegistry(testLocations())

	_, ok := reg.Get("Observatory")
	assert.False(t, ok)
}

func TestRegistryPreservesOrder(t *testing.T) {
	locs := testLocations()
	reg := NewRegistry(locs)

	all := reg.All()
	require.Len(t, all, len(locs))
	for i := range locs {
		assert.Equal(t, locs[i].Name, all[i].Name)
	}
}

func TestRegistryIgnoresDuplicateNames(t *testing.T) {
	locs := testLocations()
	dup := Location{Name: "Main Gate", Lat: 0, Lng: 0}
	reg := NewRegistry(append(locs, dup))

	assert.Equal(t, len(locs), reg.Len())

	// The first entry wins.
	loc, ok := reg.Get("Main Gate")
	require.True(t, ok)
	assert.Equal(t, 18.6195, loc.Lat)
}

func TestRegistryNearest(t *testing.T) {
	reg := NewRegistry(testLocations())

	// Right next to the canteen.
	nearest := reg.Nearest(18.6209, 73.9117)
	require.NotNil(t, nearest)
	assert.Equal(t, "Canteen", nearest.Name)

	// Exactly on a location.
	nearest = reg.Nearest(18.6195, 73.9089)
	require.NotNil(t, nearest)
	assert.Equal(t, "Main Gate", nearest.Name)
}

func TestRegistryNearestEmpty(t *testing.T) {
	reg := NewRegistry(nil)
	assert.Nil(t, reg.Nearest(18.62, 73.91))
}

func TestRegistryByCategory(t *testing.T) {
	reg := NewRegistry(testLocations())

	academic := reg.ByCategory("academic")
	require.Len(t, academic, 2)
	assert.Equal(t, "Central Library", academic[0].Name)
	assert.Equal(t, "CS Department", academic[1].Name)

	assert.Empty(t, reg.ByCategory("residence"))
}

func TestRegistryStats(t *testing.T) {
	reg := NewRegistry(testLocations())

	stats := reg.Stats()
	assert.Equal(t, 2, stats["academic"])
	assert.Equal(t, 1, stats["food"])
	assert.Equal(t, 1, stats["entrance"])
}
