package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fleetshare/internal/domain"
	"fleetshare/internal/repository"
)

// TripRepository is a PostgreSQL implementation of repository.TripRepository.
type TripRepository struct {
	q Querier
}

// NewTripRepository creates a new PostgreSQL trip repository.
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{q: db}
}

// NewTripRepositoryWithTx creates a trip repository using a transaction.
func NewTripRepositoryWithTx(tx *sql.Tx) *TripRepository {
	return &TripRepository{q: tx}
}

// Save persists a trip, replacing any existing record with the same ID.
// Cancellation of an already-recorded trip re-saves it, so this is an upsert.
func (r *TripRepository) Save(ctx context.Context, trip *domain.Trip) error {
	query := `
		INSERT INTO trips (id, user_id, vehicle_id, state, started_at, ended_at, distance_km, price, price_currency)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			state = EXCLUDED.state,
			started_at = EXCLUDED.started_at,
			ended_at = EXCLUDED.ended_at,
			distance_km = EXCLUDED.distance_km,
			price = EXCLUDED.price,
			price_currency = EXCLUDED.price_currency
	`

	var startedAt, endedAt sql.NullTime
	if !trip.StartedAt.IsZero() {
		startedAt = sql.NullTime{Time: trip.StartedAt, Valid: true}
	}
	if !trip.EndedAt.IsZero() {
		endedAt = sql.NullTime{Time: trip.EndedAt, Valid: true}
	}

	_, err := r.q.ExecContext(ctx, query,
		trip.ID,
		trip.UserID,
		trip.VehicleID,
		trip.State,
		startedAt,
		endedAt,
		trip.Distance.Km,
		trip.Price.Amount,
		trip.Price.Currency,
	)

	return err
}

// GetByID retrieves a trip by ID.
func (r *TripRepository) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	query := `
		SELECT id, user_id, vehicle_id, state, started_at, ended_at, distance_km, price, price_currency
		FROM trips
		WHERE id = $1
	`

	trip, err := scanTrip(r.q.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return trip, nil
}

// GetAll retrieves all recorded trips.
func (r *TripRepository) GetAll(ctx context.Context) ([]*domain.Trip, error) {
	query := `
		SELECT id, user_id, vehicle_id, state, started_at, ended_at, distance_km, price, price_currency
		FROM trips
		ORDER BY started_at
	`

	return r.queryTrips(ctx, query)
}

// GetByState retrieves all trips in the given state.
func (r *TripRepository) GetByState(ctx context.Context, state domain.TripState) ([]*domain.Trip, error) {
	query := `
		SELECT id, user_id, vehicle_id, state, started_at, ended_at, distance_km, price, price_currency
		FROM trips
		WHERE state = $1
		ORDER BY started_at
	`

	return r.queryTrips(ctx, query, state)
}

func (r *TripRepository) queryTrips(ctx context.Context, query string, args ...any) ([]*domain.Trip, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []*domain.Trip
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}

	return trips, rows.Err()
}

func scanTrip(row rowScanner) (*domain.Trip, error) {
	var trip domain.Trip
	var startedAt, endedAt sql.NullTime

	err := row.Scan(
		&trip.ID,
		&trip.UserID,
		&trip.VehicleID,
		&trip.State,
		&startedAt,
		&endedAt,
		&trip.Distance.Km,
		&trip.Price.Amount,
		&trip.Price.Currency,
	)
	if err != nil {
		return nil, err
	}

	trip.StartedAt = nullableTime(startedAt)
	trip.EndedAt = nullableTime(endedAt)

	return &trip, nil
}

func nullableTime(v sql.NullTime) time.Time {
	if !v.Valid {
		return time.Time{}
	}
	return v.Time
}
