package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SHARMA1525/v0-campus-map-integration/internal/domain/campus"
)

func TestMatchKeywordBeatsDescription(t *testing.T) {
	loc, score := Match(testRegistry(), "quiet place to study")
	require.NotNil(t, loc)

	// "quiet" and "study" are both library keywords.
	assert.Equal(t, "Central Library", loc.Name)
	assert.GreaterOrEqual(t, score, 6)
}

func TestMatchByName(t *testing.T) {
	loc, score := Match(testRegistry(), "where is the canteen")
	require.NotNil(t, loc)
	assert.Equal(t, "Canteen", loc.Name)
	assert.Greater(t, score, 0)
}

func TestMatchNoHit(t *testing.T) {
	loc, score := Match(testRegistry(), "swimming pool timings")
	assert.Nil(t, loc)
	assert.Zero(t, score)
}

func TestMatchEmptyQuery(t *testing.T) {
	loc, score := Match(testRegistry(), "")
	assert.Nil(t, loc)
	assert.Zero(t, score)

	// Only stop-word sized tokens.
	loc, score = Match(testRegistry(), "a to is")
	assert.Nil(t, loc)
	assert.Zero(t, score)
}

func TestMatchShortTokensIgnored(t *testing.T) {
	// "go" is below the token length cutoff; only "chai" can score.
	loc, _ := Match(testRegistry(), "go chai")
	require.NotNil(t, loc)
	assert.Equal(t, "Canteen", loc.Name)
}

func TestMatchTieGoesToEarliestPosition(t *testing.T) {
	reg := campus.NewRegistry([]campus.Location{
		{Name: "North Printer Room", Keywords: []string{"printer", "print"}},
		{Name: "South Printer Room", Keywords: []string{"printer", "print"}},
	})

	loc, score := Match(reg, "printer")
	require.NotNil(t, loc)
	assert.Equal(t, "North Printer Room", loc.Name)
	assert.Greater(t, score, 0)
}

func TestMatchKeywordSubstringBothWays(t *testing.T) {
	reg := campus.NewRegistry([]campus.Location{
		{Name: "Gym", Keywords: []string{"workout"}},
	})

	// Token contains the keyword is not the case here; keyword contains
	// the token.
	loc, _ := Match(reg, "work out session")
	require.NotNil(t, loc)
	assert.Equal(t, "Gym", loc.Name)

	// Token contains the keyword.
	loc, _ = Match(reg, "workouts")
	require.NotNil(t, loc)
	assert.Equal(t, "Gym", loc.Name)
}

func TestMatchIsCaseInsensitive(t *testing.T) {
	loc, _ := Match(testRegistry(), "QUIET STUDY SPOT")
	require.NotNil(t, loc)
	assert.Equal(t, "Central Library", loc.Name)
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"quiet", "place", "study"}, tokenize("Quiet place to study"))
	assert.Empty(t, tokenize("a to is"))
	assert.Empty(t, tokenize("   "))
}
