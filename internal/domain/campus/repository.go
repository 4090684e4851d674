package campus

import "context"

// LocationRepository defines the persistence contract for the location
// table the registry is loaded from.
type LocationRepository interface {
	// FindAll retrieves every location in stable seed order.
	FindAll(ctx context.Context) ([]Location, error)

	// Count returns the number of stored locations.
	Count(ctx context.Context) (int64, error)
}
