package repository

import (
	"context"

	"fleetshare/internal/domain"
)

// TripRepository is the trip-history store. Trips land here once they leave
// the coordinator's active index and are retained for reporting.
type TripRepository interface {
	// Save persists a trip, replacing any existing record with the same ID.
	Save(ctx context.Context, trip *domain.Trip) error

	// GetByID retrieves a trip by ID.
	GetByID(ctx context.Context, id string) (*domain.Trip, error)

	// GetAll retrieves all recorded trips.
	GetAll(ctx context.Context) ([]*domain.Trip, error)

	// GetByState retrieves all trips in the given state.
	GetByState(ctx context.Context, state domain.TripState) ([]*domain.Trip, error)
}
