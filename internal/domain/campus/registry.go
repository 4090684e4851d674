package campus

import (
	"github.com/SHARMA1525/v0-campus-map-integration/internal/geo"
)

// Registry is the in-memory read-only table of campus locations. It
// preserves insertion order, which keyword matching relies on for
// stable tie-breaking. Safe for concurrent reads once built.
type Registry struct {
	locations []Location
	byName    map[string]int
}

// NewRegistry builds a registry from the given locations, keeping their
// order. Later duplicates of a name are ignored.
func NewRegistry(locations []Location) *Registry {
	r := &Registry{
		locations: make([]Location, 0, len(locations)),
		byName:    make(map[string]int, len(locations)),
	}
	for _, loc := range locations {
		if _, exists := r.byName[loc.Name]; exists {
			continue
		}
		r.byName[loc.Name] = len(r.locations)
		r.locations = append(r.locations, loc)
	}
	return r
}

// Get returns the location with the exact, case-sensitive name.
func (r *Registry) Get(name string) (*Location, bool) {
	idx, ok := r.byName[name]
	if !ok {
		return nil, false
	}
	return &r.locations[idx], true
}

// All returns the locations in registry order. The returned slice must
// not be modified.
func (r *Registry) All() []Location {
	return r.locations
}

// Len returns the number of locations in the registry.
func (r *Registry) Len() int {
	return len(r.locations)
}

// Nearest returns the registry location closest to the given position
// by great-circle distance, or nil for an empty registry.
func (r *Registry) Nearest(lat, lng float64) *Location {
	target := geo.Point{Lat: lat, Lng: lng}

	var nearest *Location
	minDist := -1.0
	for i := range r.locations {
		dist := geo.Distance(target, r.locations[i].Point())
		if minDist < 0 || dist < minDist {
			minDist = dist
			nearest = &r.locations[i]
		}
	}
	return nearest
}

// ByCategory returns the locations with the given category tag, in
// registry order.
func (r *Registry) ByCategory(category string) []Location {
	var filtered []Location
	for _, loc := range r.locations {
		if loc.Category == category {
			filtered = append(filtered, loc)
		}
	}
	return filtered
}

// Stats returns the number of locations per category.
func (r *Registry) Stats() map[string]int {
	byCategory := make(map[string]int)
	for _, loc := range r.locations {
		byCategory[loc.Category]++
	}
	return byCategory
}
