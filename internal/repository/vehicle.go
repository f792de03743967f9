package repository

import (
	"context"

	"fleetshare/internal/domain"
)

// VehicleRepository defines the persistence operations for the fleet store.
type VehicleRepository interface {
	// Save persists a vehicle, replacing any existing record with the same ID.
	Save(ctx context.Context, vehicle *domain.Vehicle) error

	// GetByID retrieves a vehicle by ID.
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)

	// GetAll retrieves all vehicles.
	GetAll(ctx context.Context) ([]*domain.Vehicle, error)

	// GetAvailable retrieves all vehicles currently in state AVAILABLE.
	GetAvailable(ctx context.Context) ([]*domain.Vehicle, error)
}
