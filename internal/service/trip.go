package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"fleetshare/internal/domain"
	"fleetshare/internal/observability"
	"fleetshare/internal/pricing"
	"fleetshare/internal/repository"
)

// TripService coordinates the trip lifecycle. It owns the active-trip index
// and is the only writer of vehicle state.
//
// A single mutex covers every operation: vehicle check-and-set, timestamp
// capture and index mutation happen in one critical section, so a vehicle is
// IN_USE exactly when one trip referencing it is IN_PROGRESS, with no window
// in between. Operations are short in-memory transitions; contention at
// fleet scale does not justify finer locking.
type TripService struct {
	mu sync.Mutex

	vehicleRepo repository.VehicleRepository
	userRepo    repository.UserRepository
	historyRepo repository.TripRepository
	strategy    *pricing.Strategy
	logger      *slog.Logger

	active map[string]*domain.Trip
	now    func() time.Time
}

// TripOption configures a TripService.
type TripOption func(*TripService)

// WithNow overrides the clock, for deterministic tests.
func WithNow(now func() time.Time) TripOption {
	return func(s *TripService) { s.now = now }
}

// NewTripService creates a new TripService.
func NewTripService(
	vehicleRepo repository.VehicleRepository,
	userRepo repository.UserRepository,
	historyRepo repository.TripRepository,
	strategy *pricing.Strategy,
	logger *slog.Logger,
	opts ...TripOption,
) *TripService {
	s := &TripService{
		vehicleRepo: vehicleRepo,
		userRepo:    userRepo,
		historyRepo: historyRepo,
		strategy:    strategy,
		logger:      logger,
		active:      make(map[string]*domain.Trip),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartTripRequest contains the parameters for starting a trip.
type StartTripRequest struct {
	UserID    string
	VehicleID string
}

// StartTrip checks the vehicle out and opens a new trip.
//
// The AVAILABLE -> IN_USE transition is a single atomic check-and-set:
// of concurrent starts against one vehicle exactly one succeeds and
// the rest observe ErrVehicleUnavailable.
func (s *TripService) StartTrip(ctx context.Context, req StartTripRequest) (*domain.Trip, error) {
	if req.UserID == "" {
		return nil, ErrInvalidUserID
	}
	if req.VehicleID == "" {
		return nil, ErrInvalidVehicleID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}

	if vehicle.State != domain.VehicleStateAvailable {
		return nil, ErrVehicleUnavailable
	}

	startedAt := s.now()
	trip := &domain.Trip{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		VehicleID: vehicle.ID,
		State:     domain.TripStateInProgress,
		StartedAt: startedAt,
		Price:     domain.ZeroMoney(domain.DefaultCurrency),
	}

	vehicle.State = domain.VehicleStateInUse
	if err := s.vehicleRepo.Save(ctx, vehicle); err != nil {
		return nil, err
	}
	s.active[trip.ID] = trip

	observability.TripsStarted.Inc()
	observability.VehiclesInUse.Inc()
	s.logger.Info("trip started",
		slog.String("trip_id", trip.ID),
		slog.String("user_id", user.ID),
		slog.String("vehicle_id", vehicle.ID),
	)

	result := *trip
	return &result, nil
}

// EndTrip completes a trip and returns its price.
//
// The end timestamp is captured once and the pricing strategy is evaluated
// exactly once; the returned Money and the price stored on the trip record
// are the same value.
func (s *TripService) EndTrip(ctx context.Context, tripID string) (domain.Money, error) {
	if tripID == "" {
		return domain.Money{}, ErrInvalidTripID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	trip, ok := s.active[tripID]
	if !ok {
		return domain.Money{}, ErrTripNotFound
	}
	if trip.State != domain.TripStateInProgress {
		return domain.Money{}, ErrInvalidStateTransition
	}

	endedAt := s.now()
	price, err := pricing.Evaluate(s.strategy, pricing.Snapshot{
		StartedAt: trip.StartedAt,
		EndedAt:   endedAt,
		Distance:  trip.Distance,
	})
	if err != nil {
		return domain.Money{}, err
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, trip.VehicleID)
	if err != nil {
		return domain.Money{}, err
	}
	vehicle.State = domain.VehicleStateAvailable
	if err := s.vehicleRepo.Save(ctx, vehicle); err != nil {
		return domain.Money{}, err
	}

	trip.State = domain.TripStateCompleted
	trip.EndedAt = endedAt
	trip.Price = price
	delete(s.active, tripID)

	// The trip record is retained by the history store for reporting. A
	// history write failure does not undo a completed trip.
	if err := s.historyRepo.Save(ctx, trip); err != nil {
		s.logger.Warn("failed to record completed trip",
			slog.String("trip_id", trip.ID),
			slog.String("error", err.Error()),
		)
	}

	observability.TripsCompleted.Inc()
	observability.VehiclesInUse.Dec()
	amount, _ := price.Amount.Float64()
	observability.TripRevenue.WithLabelValues(price.Currency).Add(amount)
	s.logger.Info("trip completed",
		slog.String("trip_id", trip.ID),
		slog.String("vehicle_id", trip.VehicleID),
		slog.String("price", price.String()),
	)

	return price, nil
}

// CancelTrip cancels a trip and frees its vehicle.
//
// Caveat: the vehicle is released unconditionally, even when the located
// trip is already COMPLETED or CANCELED. Callers relying on cancel being
// idempotent depend on this.
func (s *TripService) CancelTrip(ctx context.Context, tripID string) error {
	if tripID == "" {
		return ErrInvalidTripID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	trip, ok := s.active[tripID]
	if !ok {
		var err error
		trip, err = s.historyRepo.GetByID(ctx, tripID)
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTripNotFound
		}
		if err != nil {
			return err
		}
	}

	wasActive := ok

	vehicle, err := s.vehicleRepo.GetByID(ctx, trip.VehicleID)
	if err != nil {
		return err
	}
	vehicle.State = domain.VehicleStateAvailable
	if err := s.vehicleRepo.Save(ctx, vehicle); err != nil {
		return err
	}

	trip.State = domain.TripStateCanceled
	trip.EndedAt = s.now()
	delete(s.active, tripID)

	if err := s.historyRepo.Save(ctx, trip); err != nil {
		s.logger.Warn("failed to record canceled trip",
			slog.String("trip_id", trip.ID),
			slog.String("error", err.Error()),
		)
	}

	observability.TripsCanceled.Inc()
	if wasActive {
		observability.VehiclesInUse.Dec()
	}
	s.logger.Info("trip canceled",
		slog.String("trip_id", trip.ID),
		slog.String("vehicle_id", trip.VehicleID),
	)

	return nil
}

// RecordDistance adds traveled kilometers to an in-progress trip so that
// distance-based pricing has something to bill.
func (s *TripService) RecordDistance(ctx context.Context, tripID string, km float64) (*domain.Trip, error) {
	if tripID == "" {
		return nil, ErrInvalidTripID
	}

	leg, err := domain.Kilometers(km)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	trip, ok := s.active[tripID]
	if !ok {
		return nil, ErrTripNotFound
	}
	if trip.State != domain.TripStateInProgress {
		return nil, ErrInvalidStateTransition
	}

	trip.Distance = trip.Distance.Add(leg)

	result := *trip
	return &result, nil
}

// LookupActive returns the in-progress trip with the given id.
func (s *TripService) LookupActive(tripID string) (*domain.Trip, error) {
	if tripID == "" {
		return nil, ErrInvalidTripID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	trip, ok := s.active[tripID]
	if !ok {
		return nil, ErrTripNotFound
	}

	result := *trip
	return &result, nil
}

// ActiveTrips returns a snapshot of all in-progress trips.
func (s *TripService) ActiveTrips() []*domain.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()

	trips := make([]*domain.Trip, 0, len(s.active))
	for _, trip := range s.active {
		copied := *trip
		trips = append(trips, &copied)
	}
	return trips
}
