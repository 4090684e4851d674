package navigation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionsThreeNodePath(t *testing.T) {
	path, found := BuildPath(testRegistry(), "Main Gate", "Canteen")
	require.True(t, found)

	lines := Directions(path, PersonaNone)
	// Opener, two segments, arrival, total.
	require.Len(t, lines, 5)

	assert.Equal(t, "Start at Main Gate.", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Head "), "first segment: %q", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "Walk the final "), "last segment: %q", lines[2])
	assert.Equal(t, "Arrive at Canteen.", lines[3])
	assert.True(t, strings.HasPrefix(lines[4], "Total distance: "), "summary: %q", lines[4])
}

func TestDirectionsTwoNodePath(t *testing.T) {
	path := []PathNode{
		{ID: "start", Lat: 18.6195, Lng: 73.9089, Name: "Main Gate", Type: NodeTypeLocation},
		{ID: "end", Lat: 18.6211, Lng: 73.9102, Name: "Central Library", Type: NodeTypeLocation},
	}

	lines := Directions(path, PersonaNone)
	require.Len(t, lines, 4)
	assert.Equal(t, "Start at Main Gate.", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Walk the final "))
	assert.Equal(t, "Arrive at Central Library.", lines[2])
}

func TestDirectionsTooShort(t *testing.T) {
	assert.Nil(t, Directions(nil, PersonaNone))
	assert.Nil(t, Directions([]PathNode{{ID: "start"}}, PersonaGuide))
}

func TestDirectionsLongPathUsesContinue(t *testing.T) {
	path := []PathNode{
		{ID: "a", Lat: 18.6195, Lng: 73.9089, Name: "A", Type: NodeTypeLocation},
		{ID: "b", Lat: 18.6205, Lng: 73.9095, Name: "B", Type: NodeTypeWaypoint},
		{ID: "c", Lat: 18.6215, Lng: 73.9102, Name: "C", Type: NodeTypeWaypoint},
		{ID: "d", Lat: 18.6225, Lng: 73.9110, Name: "D", Type: NodeTypeLocation},
	}

	lines := Directions(path, PersonaNone)
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[1], "Head "))
	assert.True(t, strings.HasPrefix(lines[2], "Continue "))
	assert.True(t, strings.HasPrefix(lines[3], "Walk the final "))
}

func TestDirectionsPersonaAddsOneLine(t *testing.T) {
	path, found := BuildPath(testRegistry(), "Main Gate", "Canteen")
	require.True(t, found)

	plain := Directions(path, PersonaNone)

	for _, persona := range []Persona{PersonaGuide, PersonaBuddy, PersonaExplorer} {
		flavored := Directions(path, persona)
		assert.Len(t, flavored, len(plain)+1, "persona %q", persona)
	}
}

func TestDirectionsPersonaDoesNotChangeRoute(t *testing.T) {
	path, found := BuildPath(testRegistry(), "Main Gate", "Central Library")
	require.True(t, found)

	plain := Directions(path, PersonaNone)
	flavored := Directions(path, PersonaBuddy)

	// Same total-distance summary regardless of persona.
	assert.Equal(t, plain[len(plain)-1], flavored[len(flavored)-1])
}

func TestDirectionsGuideSpeaksAfterFirstSegment(t *testing.T) {
	path, found := BuildPath(testRegistry(), "Main Gate", "Canteen")
	require.True(t, found)

	lines := Directions(path, PersonaGuide)
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[2], "Guide tip:"), "flavor line: %q", lines[2])
}

func TestDirectionsExplorerSpeaksAtMidpointSegment(t *testing.T) {
	path := []PathNode{
		{ID: "a", Lat: 18.6195, Lng: 73.9089, Name: "A", Type: NodeTypeLocation},
		{ID: "b", Lat: 18.6205, Lng: 73.9095, Name: "B", Type: NodeTypeWaypoint},
		{ID: "c", Lat: 18.6215, Lng: 73.9102, Name: "C", Type: NodeTypeWaypoint},
		{ID: "d", Lat: 18.6225, Lng: 73.9110, Name: "D", Type: NodeTypeLocation},
	}

	// Three segments, flavor after segment index 1.
	lines := Directions(path, PersonaExplorer)
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[3], "You're about halfway"), "flavor line: %q", lines[3])
}

func TestParsePersona(t *testing.T) {
	assert.Equal(t, PersonaGuide, ParsePersona("guide"))
	assert.Equal(t, PersonaBuddy, ParsePersona("Buddy"))
	assert.Equal(t, PersonaExplorer, ParsePersona("  EXPLORER "))
	assert.Equal(t, PersonaNone, ParsePersona(""))
	assert.Equal(t, PersonaNone, ParsePersona("pirate"))
}
