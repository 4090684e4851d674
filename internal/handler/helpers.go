package handler

import (
	"strings"

	"github.com/SHARMA1525/v0-campus-map-integration/internal/domain"
	"github.com/SHARMA1525/v0-campus-map-integration/internal/domain/campus"
)

func notFoundLocation(name string) error {
	return domain.NewNotFoundError("Location", name)
}

func unauthorized() error {
	return domain.NewUnauthorizedError("missing or invalid token")
}

// searchRegistry returns locations whose name or any keyword contains
// the query, case-insensitively, in registry order.
func searchRegistry(reg *campus.Registry, query string) []campus.Location {
	q := strings.ToLower(query)

	results := make([]campus.Location, 0)
	for _, loc := range reg.All() {
		if strings.Contains(strings.ToLower(loc.Name), q) {
			results = append(results, loc)
			continue
		}
		for _, kw := range loc.Keywords {
			if strings.Contains(strings.ToLower(kw), q) {
				results = append(results, loc)
				break
			}
		}
	}
	return results
}
