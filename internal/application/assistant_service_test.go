package application

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SHARMA1525/v0-campus-map-integration/internal/events"
)

func newAssistantService() *AssistantService {
	return NewAssistantService(serviceRegistry(), events.NopPublisher{}, zap.NewNop())
}

func TestAskMatchesLocation(t *testing.T) {
	svc := newAssistantService()

	reply, err := svc.Ask(context.Background(), AssistantQueryRequest{
		Query: "quiet place to study",
	})
	require.NoError(t, err)

	assert.True(t, reply.Matched)
	require.NotNil(t, reply.Location)
	assert.Equal(t, "Central Library", reply.Location.Name)
	assert.True(t, strings.HasPrefix(reply.Message, "Central Library: "))
	assert.Contains(t, reply.Message, "Look for the clock above the front steps.")
	assert.Nil(t, reply.Route)
}

func TestAskFallbackOnNoMatch(t *testing.T) {
	svc := newAssistantService()

	reply, err := svc.Ask(context.Background(), AssistantQueryRequest{
		Query: "swimming pool timings",
	})
	require.NoError(t, err)

	assert.False(t, reply.Matched)
	assert.Equal(t, FallbackMessage, reply.Message)
	assert.Nil(t, reply.Location)
	assert.Nil(t, reply.Route)
}

func TestAskWithDevicePositionIncludesRoute(t *testing.T) {
	svc := newAssistantService()

	// Standing at the main gate, asking for food.
	lat, lng := 18.6195, 73.9089
	reply, err := svc.Ask(context.Background(), AssistantQueryRequest{
		Query: "where can I get lunch",
		Lat:   &lat,
		Lng:   &lng,
	})
	require.NoError(t, err)

	require.True(t, reply.Matched)
	assert.Equal(t, "Canteen", reply.Location.Name)
	assert.Equal(t, "Main Gate", reply.Origin)

	require.NotNil(t, reply.Route)
	assert.True(t, reply.Route.Found)
	assert.Len(t, reply.Route.Path, 3)
	assert.Greater(t, reply.Route.DistanceM, 0.0)
}

func TestAskNoRouteWhenStandingAtMatch(t *testing.T) {
	svc := newAssistantService()

	// Standing at the canteen and asking for the canteen.
	lat, lng := 18.6208, 73.9118
	reply, err := svc.Ask(context.Background(), AssistantQueryRequest{
		Query: "canteen",
		Lat:   &lat,
		Lng:   &lng,
	})
	require.NoError(t, err)

	assert.True(t, reply.Matched)
	assert.Empty(t, reply.Origin)
	assert.Nil(t, reply.Route)
}

func TestAskWithoutPositionHasNoRoute(t *testing.T) {
	svc := newAssistantService()

	reply, err := svc.Ask(context.Background(), AssistantQueryRequest{
		Query: "library books",
	})
	require.NoError(t, err)

	assert.True(t, reply.Matched)
	assert.Empty(t, reply.Origin)
	assert.Nil(t, reply.Route)
}

func TestAskEmptyQueryRejected(t *testing.T) {
	svc := newAssistantService()

	_, err := svc.Ask(context.Background(), AssistantQueryRequest{Query: ""})
	assert.Error(t, err)
}

func TestAskPersonaFlavorsRouteDirections(t *testing.T) {
	svc := newAssistantService()
	lat, lng := 18.6195, 73.9089

	plain, err := svc.Ask(context.Background(), AssistantQueryRequest{
		Query: "chai", Lat: &lat, Lng: &lng,
	})
	require.NoError(t, err)
	require.NotNil(t, plain.Route)

	flavored, err := svc.Ask(context.Background(), AssistantQueryRequest{
		Query: "chai", Persona: "buddy", Lat: &lat, Lng: &lng,
	})
	require.NoError(t, err)
	require.NotNil(t, flavored.Route)

	assert.Equal(t, plain.Route.DistanceM, flavored.Route.DistanceM)
	assert.Len(t, flavored.Route.Directions, len(plain.Route.Directions)+1)
}
