package ports

import (
	"context"
	"route-distance-enricher/internal/domain"
)

// Contract for retrieving travel distance and duration between two addresses.
type RouteProvider interface {
	// Return the human-readable driving distance and duration from origin to destination.
	GetRoute(ctx context.Context, origin string, destination string) (domain.RouteResult, error)
}
