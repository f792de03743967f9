package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fleetshare/internal/domain"
	"fleetshare/internal/repository"
)

// VehicleRepository is a PostgreSQL implementation of repository.VehicleRepository.
type VehicleRepository struct {
	q Querier
}

// NewVehicleRepository creates a new PostgreSQL vehicle repository.
func NewVehicleRepository(db *sql.DB) *VehicleRepository {
	return &VehicleRepository{q: db}
}

// NewVehicleRepositoryWithTx creates a vehicle repository using a transaction.
func NewVehicleRepositoryWithTx(tx *sql.Tx) *VehicleRepository {
	return &VehicleRepository{q: tx}
}

// Save persists a vehicle, replacing any existing record with the same ID.
func (r *VehicleRepository) Save(ctx context.Context, vehicle *domain.Vehicle) error {
	query := `
		INSERT INTO vehicles (id, model, kind, fuel_type, battery_level, weight_limit, state, rate_per_minute, rate_currency)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			model = EXCLUDED.model,
			kind = EXCLUDED.kind,
			fuel_type = EXCLUDED.fuel_type,
			battery_level = EXCLUDED.battery_level,
			weight_limit = EXCLUDED.weight_limit,
			state = EXCLUDED.state,
			rate_per_minute = EXCLUDED.rate_per_minute,
			rate_currency = EXCLUDED.rate_currency
	`

	_, err := r.q.ExecContext(ctx, query,
		vehicle.ID,
		vehicle.Model,
		vehicle.Kind,
		vehicle.FuelType,
		vehicle.BatteryLevel,
		vehicle.WeightLimit,
		vehicle.State,
		vehicle.RatePerMinute.Amount,
		vehicle.RatePerMinute.Currency,
	)

	return err
}

// GetByID retrieves a vehicle by ID.
func (r *VehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	query := `
		SELECT id, model, kind, fuel_type, battery_level, weight_limit, state, rate_per_minute, rate_currency
		FROM vehicles
		WHERE id = $1
	`

	vehicle, err := scanVehicle(r.q.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return vehicle, nil
}

// GetAll retrieves all vehicles.
func (r *VehicleRepository) GetAll(ctx context.Context) ([]*domain.Vehicle, error) {
	query := `
		SELECT id, model, kind, fuel_type, battery_level, weight_limit, state, rate_per_minute, rate_currency
		FROM vehicles
		ORDER BY id
	`

	return r.queryVehicles(ctx, query)
}

// GetAvailable retrieves all vehicles currently in state AVAILABLE.
func (r *VehicleRepository) GetAvailable(ctx context.Context) ([]*domain.Vehicle, error) {
	query := `
		SELECT id, model, kind, fuel_type, battery_level, weight_limit, state, rate_per_minute, rate_currency
		FROM vehicles
		WHERE state = $1
		ORDER BY id
	`

	return r.queryVehicles(ctx, query, domain.VehicleStateAvailable)
}

func (r *VehicleRepository) queryVehicles(ctx context.Context, query string, args ...any) ([]*domain.Vehicle, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []*domain.Vehicle
	for rows.Next() {
		vehicle, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, vehicle)
	}

	return vehicles, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVehicle(row rowScanner) (*domain.Vehicle, error) {
	var vehicle domain.Vehicle
	err := row.Scan(
		&vehicle.ID,
		&vehicle.Model,
		&vehicle.Kind,
		&vehicle.FuelType,
		&vehicle.BatteryLevel,
		&vehicle.WeightLimit,
		&vehicle.State,
		&vehicle.RatePerMinute.Amount,
		&vehicle.RatePerMinute.Currency,
	)
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}
