package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicNavigationEvents carries all navigation analytics events.
const TopicNavigationEvents = "navigation.events"

// Event types published on TopicNavigationEvents.
const (
	RoutePlanned     = "navigation.route.planned"
	AssistantQueried = "navigation.assistant.queried"
)

// RoutePlannedEvent is published for every route computation.
type RoutePlannedEvent struct {
	RequestID  uuid.UUID  `json:"request_id"`
	UserID     *uuid.UUID `json:"user_id,omitempty"`
	FromName   string     `json:"from_name"`
	ToName     string     `json:"to_name"`
	Persona    string     `json:"persona,omitempty"`
	DistanceM  float64    `json:"distance_m"`
	Found      bool       `json:"found"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// AssistantQueriedEvent is published for every assistant query.
type AssistantQueriedEvent struct {
	Query       string    `json:"query"`
	Matched     bool      `json:"matched"`
	MatchName   string    `json:"match_name,omitempty"`
	MatchScore  int       `json:"match_score"`
	HasPosition bool      `json:"has_position"`
	OccurredAt  time.Time `json:"occurred_at"`
}
