package navigation

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RouteRequest is the immutable record of one route computation, kept
// for the user's history view and the admin stats dashboard.
type RouteRequest struct {
	ID        uuid.UUID  `json:"id"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	FromName  string     `json:"from_name"`
	ToName    string     `json:"to_name"`
	Persona   string     `json:"persona,omitempty"`
	DistanceM float64    `json:"distance_m"`
	Found     bool       `json:"found"`
	CreatedAt time.Time  `json:"created_at"`
}

// NewRouteRequest builds a history record for a just-computed route.
func NewRouteRequest(userID *uuid.UUID, fromName, toName string, persona Persona, distanceM float64, found bool) RouteRequest {
	return RouteRequest{
		ID:        uuid.New(),
		UserID:    userID,
		FromName:  fromName,
		ToName:    toName,
		Persona:   string(persona),
		DistanceM: distanceM,
		Found:     found,
		CreatedAt: time.Now().UTC(),
	}
}

// HistoryRepository defines the persistence contract for route-request
// records.
type HistoryRepository interface {
	// Save appends one route-request record.
	Save(ctx context.Context, req RouteRequest) error

	// FindByUserID retrieves a user's route requests, newest first,
	// with pagination.
	FindByUserID(ctx context.Context, userID uuid.UUID, page, limit int) ([]RouteRequest, int64, error)

	// CountByPersona returns request counts grouped by persona (admin).
	CountByPersona(ctx context.Context) (map[string]int64, error)

	// CountAll returns the total number of recorded requests (admin).
	CountAll(ctx context.Context) (int64, error)
}
