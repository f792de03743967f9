package service

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"fleetshare/internal/domain"
	"fleetshare/internal/redis"
	"fleetshare/internal/repository"
)

// VehicleCache is the subset of the redis cache the fleet service uses.
type VehicleCache interface {
	GetVehicle(ctx context.Context, vehicleID string) (*redis.CachedVehicle, error)
	SetVehicle(ctx context.Context, vehicle *redis.CachedVehicle) error
	InvalidateVehicle(ctx context.Context, vehicleID string) error
}

// VehicleService manages the fleet: registering vehicles and answering
// availability queries. Trip-driven state changes go through TripService.
type VehicleService struct {
	vehicleRepo repository.VehicleRepository
	cache       VehicleCache
	logger      *slog.Logger
}

// NewVehicleService creates a new VehicleService. The cache may be nil.
func NewVehicleService(vehicleRepo repository.VehicleRepository, cache VehicleCache, logger *slog.Logger) *VehicleService {
	return &VehicleService{
		vehicleRepo: vehicleRepo,
		cache:       cache,
		logger:      logger,
	}
}

// AddVehicle registers a vehicle with the fleet.
func (s *VehicleService) AddVehicle(ctx context.Context, vehicle *domain.Vehicle) error {
	if vehicle.ID == "" {
		return ErrInvalidVehicleID
	}

	if err := s.vehicleRepo.Save(ctx, vehicle); err != nil {
		return err
	}

	if s.cache != nil {
		// Best effort; the repository stays authoritative.
		_ = s.cache.SetVehicle(ctx, cachedVehicle(vehicle))
	}

	s.logger.Info("vehicle registered",
		slog.String("vehicle_id", vehicle.ID),
		slog.String("kind", string(vehicle.Kind)),
	)
	return nil
}

// GetVehicle retrieves a vehicle, consulting the cache first.
func (s *VehicleService) GetVehicle(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	if vehicleID == "" {
		return nil, ErrInvalidVehicleID
	}

	if s.cache != nil {
		if cached, err := s.cache.GetVehicle(ctx, vehicleID); err == nil && cached != nil {
			if vehicle, ok := vehicleFromCache(cached); ok {
				return vehicle, nil
			}
		}
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetVehicle(ctx, cachedVehicle(vehicle))
	}

	return vehicle, nil
}

// GetAllVehicles retrieves the whole fleet.
func (s *VehicleService) GetAllVehicles(ctx context.Context) ([]*domain.Vehicle, error) {
	return s.vehicleRepo.GetAll(ctx)
}

// GetAvailableVehicles retrieves the vehicles currently free to rent.
func (s *VehicleService) GetAvailableVehicles(ctx context.Context) ([]*domain.Vehicle, error) {
	return s.vehicleRepo.GetAvailable(ctx)
}

func cachedVehicle(v *domain.Vehicle) *redis.CachedVehicle {
	return &redis.CachedVehicle{
		ID:            v.ID,
		Model:         v.Model,
		Kind:          string(v.Kind),
		FuelType:      v.FuelType,
		BatteryLevel:  v.BatteryLevel,
		WeightLimit:   v.WeightLimit,
		State:         string(v.State),
		RatePerMinute: v.RatePerMinute.Amount.String(),
		RateCurrency:  v.RatePerMinute.Currency,
	}
}

func vehicleFromCache(c *redis.CachedVehicle) (*domain.Vehicle, bool) {
	amount, err := decimal.NewFromString(c.RatePerMinute)
	if err != nil {
		return nil, false
	}
	return &domain.Vehicle{
		ID:            c.ID,
		Model:         c.Model,
		Kind:          domain.VehicleKind(c.Kind),
		FuelType:      c.FuelType,
		BatteryLevel:  c.BatteryLevel,
		WeightLimit:   c.WeightLimit,
		State:         domain.VehicleState(c.State),
		RatePerMinute: domain.NewMoney(amount, c.RateCurrency),
	}, true
}
