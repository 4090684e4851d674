package application

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SHARMA1525/v0-campus-map-integration/internal/domain"
	"github.com/SHARMA1525/v0-campus-map-integration/internal/domain/campus"
	"github.com/SHARMA1525/v0-campus-map-integration/internal/domain/navigation"
	"github.com/SHARMA1525/v0-campus-map-integration/internal/events"
)

// NoRouteMessage is shown when either endpoint of a route request is
// unknown.
const NoRouteMessage = "no route found"

// PlanRouteRequest holds the data needed to plan a route. Endpoints
// are named locations; a device position may stand in for the start
// (the nearest campus location becomes the origin).
type PlanRouteRequest struct {
	From    string  `json:"from"`
	To      string  `json:"to" binding:"required"`
	Persona string  `json:"persona"`
	FromLat float64 `json:"from_lat,omitempty"`
	FromLng float64 `json:"from_lng,omitempty"`
}

// RouteDTO is the response representation of a planned route.
type RouteDTO struct {
	Found      bool                  `json:"found"`
	Path       []navigation.PathNode `json:"path,omitempty"`
	Directions []string              `json:"directions,omitempty"`
	DistanceM  float64               `json:"distance_m,omitempty"`
	Persona    string                `json:"persona,omitempty"`
	Message    string                `json:"message,omitempty"`
}

// StatsDTO holds aggregate counters for the admin dashboard.
type StatsDTO struct {
	TotalLocations      int              `json:"total_locations"`
	LocationsByCategory map[string]int   `json:"locations_by_category"`
	TotalRouteRequests  int64            `json:"total_route_requests"`
	RequestsByPersona   map[string]int64 `json:"requests_by_persona"`
}

// NavigationService is the application service orchestrating route
// planning, history and stats.
type NavigationService struct {
	registry *campus.Registry
	history  navigation.HistoryRepository
	producer events.Publisher
	logger   *zap.Logger
}

// NewNavigationService creates a new NavigationService.
func NewNavigationService(
	registry *campus.Registry,
	history navigation.HistoryRepository,
	producer events.Publisher,
	logger *zap.Logger,
) *NavigationService {
	return &NavigationService{
		registry: registry,
		history:  history,
		producer: producer,
		logger:   logger,
	}
}

// Registry exposes the loaded location registry to collaborating
// services and handlers.
func (s *NavigationService) Registry() *campus.Registry {
	return s.registry
}

// PlanRoute computes the three-node path and its directions between
// two named locations. Unknown names yield a found=false result, not
// an error. userID may be nil for anonymous requests.
func (s *NavigationService) PlanRoute(ctx context.Context, userID *uuid.UUID, req PlanRouteRequest) (*RouteDTO, error) {
	fromName := req.From
	if fromName == "" && (req.FromLat != 0 || req.FromLng != 0) {
		if nearest := s.registry.Nearest(req.FromLat, req.FromLng); nearest != nil {
			fromName = nearest.Name
		}
	}
	if fromName == "" || req.To == "" {
		return nil, domain.NewValidationError("start and end locations are required")
	}

	persona := navigation.ParsePersona(req.Persona)
	path, found := navigation.BuildPath(s.registry, fromName, req.To)

	result := &RouteDTO{Found: found, Persona: string(persona)}
	if found {
		result.Path = path
		result.Directions = navigation.Directions(path, persona)
		result.DistanceM = navigation.TotalDistance(path)
	} else {
		result.Message = NoRouteMessage
	}

	record := navigation.NewRouteRequest(userID, fromName, req.To, persona, result.DistanceM, found)
	if err := s.history.Save(ctx, record); err != nil {
		// Analytics only; the computed route is still good.
		s.logger.Error("failed to save route request", zap.Error(err))
	}

	s.publishRoutePlanned(ctx, record)
	return result, nil
}

// GetHistory retrieves the user's route requests, newest first.
func (s *NavigationService) GetHistory(ctx context.Context, userID uuid.UUID, page, limit int) (*domain.PaginatedResult[navigation.RouteRequest], error) {
	requests, total, err := s.history.FindByUserID(ctx, userID, page, limit)
	if err != nil {
		return nil, err
	}
	result := domain.NewPaginatedResult(requests, total, page, limit)
	return &result, nil
}

// GetStats returns aggregate counters for the admin dashboard.
func (s *NavigationService) GetStats(ctx context.Context) (*StatsDTO, error) {
	totalRequests, err := s.history.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	byPersona, err := s.history.CountByPersona(ctx)
	if err != nil {
		return nil, err
	}

	return &StatsDTO{
		TotalLocations:      s.registry.Len(),
		LocationsByCategory: s.registry.Stats(),
		TotalRouteRequests:  totalRequests,
		RequestsByPersona:   byPersona,
	}, nil
}

func (s *NavigationService) publishRoutePlanned(ctx context.Context, record navigation.RouteRequest) {
	evt := events.RoutePlannedEvent{
		RequestID:  record.ID,
		UserID:     record.UserID,
		FromName:   record.FromName,
		ToName:     record.ToName,
		Persona:    record.Persona,
		DistanceM:  record.DistanceM,
		Found:      record.Found,
		OccurredAt: record.CreatedAt,
	}
	s.publishEvent(ctx, events.TopicNavigationEvents, events.RoutePlanned, evt)
}

func (s *NavigationService) publishEvent(ctx context.Context, topic, eventType string, data interface{}) {
	cloudEvent, err := events.NewCloudEvent("campus-nav", eventType, data)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	if err := s.producer.PublishEvent(ctx, topic, cloudEvent); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("topic", topic),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}
