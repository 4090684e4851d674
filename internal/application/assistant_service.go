package application

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/SHARMA1525/v0-campus-map-integration/internal/domain"
	"github.com/SHARMA1525/v0-campus-map-integration/internal/domain/campus"
	"github.com/SHARMA1525/v0-campus-map-integration/internal/domain/navigation"
	"github.com/SHARMA1525/v0-campus-map-integration/internal/events"
)

// FallbackMessage is returned when no location scores above zero for a
// query.
const FallbackMessage = "I couldn't find a campus spot matching that. " +
	"Try asking about the library, cafeteria, labs, hostels or sports facilities."

// AssistantQueryRequest holds a free-text query and, when the browser
// shared it, the device position. The position is a one-shot reading:
// absent simply means geolocation was unavailable or denied.
type AssistantQueryRequest struct {
	Query   string   `json:"query" binding:"required"`
	Persona string   `json:"persona"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
}

// AssistantReplyDTO is the assistant's answer: a message, the matched
// location if any, and a route from the nearest location when a device
// position was supplied.
type AssistantReplyDTO struct {
	Matched  bool             `json:"matched"`
	Message  string           `json:"message"`
	Location *campus.Location `json:"location,omitempty"`
	Origin   string           `json:"origin,omitempty"`
	Route    *RouteDTO        `json:"route,omitempty"`
}

// AssistantService answers free-text "where is..." queries by keyword
// matching over the location registry.
type AssistantService struct {
	registry *campus.Registry
	producer events.Publisher
	logger   *zap.Logger
}

// NewAssistantService creates a new AssistantService.
func NewAssistantService(registry *campus.Registry, producer events.Publisher, logger *zap.Logger) *AssistantService {
	return &AssistantService{
		registry: registry,
		producer: producer,
		logger:   logger,
	}
}

// Ask matches the query against the registry. With a device position
// the nearest location becomes the implicit origin and the reply
// carries a route to the match; without one the reply degrades to the
// location description alone.
func (s *AssistantService) Ask(ctx context.Context, req AssistantQueryRequest) (*AssistantReplyDTO, error) {
	if req.Query == "" {
		return nil, domain.NewValidationError("query is required")
	}

	match, score := navigation.Match(s.registry, req.Query)

	reply := &AssistantReplyDTO{}
	if match == nil {
		reply.Message = FallbackMessage
	} else {
		reply.Matched = true
		reply.Location = match
		reply.Message = describeLocation(match)

		if req.Lat != nil && req.Lng != nil {
			if origin := s.registry.Nearest(*req.Lat, *req.Lng); origin != nil && origin.Name != match.Name {
				reply.Origin = origin.Name
				reply.Route = s.routeFrom(origin, match, req.Persona)
			}
		}
	}

	s.publishQueried(ctx, req, match, score)
	return reply, nil
}

// routeFrom builds the origin-to-match route embedded in a reply.
func (s *AssistantService) routeFrom(origin, dest *campus.Location, personaStr string) *RouteDTO {
	persona := navigation.ParsePersona(personaStr)
	path, found := navigation.BuildPath(s.registry, origin.Name, dest.Name)
	if !found {
		return nil
	}
	return &RouteDTO{
		Found:      true,
		Path:       path,
		Directions: navigation.Directions(path, persona),
		DistanceM:  navigation.TotalDistance(path),
		Persona:    string(persona),
	}
}

func describeLocation(loc *campus.Location) string {
	msg := fmt.Sprintf("%s: %s", loc.Name, loc.Description)
	if loc.Landmark != "" {
		msg += fmt.Sprintf(" Look for %s.", loc.Landmark)
	}
	return msg
}

func (s *AssistantService) publishQueried(ctx context.Context, req AssistantQueryRequest, match *campus.Location, score int) {
	evt := events.AssistantQueriedEvent{
		Query:       req.Query,
		Matched:     match != nil,
		MatchScore:  score,
		HasPosition: req.Lat != nil && req.Lng != nil,
		OccurredAt:  time.Now().UTC(),
	}
	if match != nil {
		evt.MatchName = match.Name
	}

	cloudEvent, err := events.NewCloudEvent("campus-nav", events.AssistantQueried, evt)
	if err != nil {
		s.logger.Error("failed to create cloud event", zap.Error(err))
		return
	}
	if err := s.producer.PublishEvent(ctx, events.TopicNavigationEvents, cloudEvent); err != nil {
		s.logger.Error("failed to publish assistant event", zap.Error(err))
	}
}
