package campus

import (
	"github.com/SHARMA1525/v0-campus-map-integration/internal/geo"
)

// Location is a named point of interest on the campus map. Records are
// loaded once at startup and never mutated afterwards; Name is the
// unique identifier.
type Location struct {
	Name        string   `json:"name"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Landmark    string   `json:"landmark,omitempty"`
	Keywords    []string `json:"keywords"`
	Icon        string   `json:"icon,omitempty"`
}

// Point returns the location's coordinates.
func (l *Location) Point() geo.Point {
	return geo.Point{Lat: l.Lat, Lng: l.Lng}
}
