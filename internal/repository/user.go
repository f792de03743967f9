package repository

import (
	"context"

	"fleetshare/internal/domain"
)

// UserRepository defines the persistence operations for users.
type UserRepository interface {
	// Save persists a user, replacing any existing record with the same ID.
	Save(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by ID.
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]*domain.User, error)
}
