package tests

import (
	"context"
	"errors"
	"sync"
	"testing"

	"fleetshare/internal/domain"
	"fleetshare/internal/redis"
	"fleetshare/internal/repository"
	"fleetshare/internal/service"
)

// ──────────────────────────────────────────────
// FLEET MANAGEMENT
// ──────────────────────────────────────────────

// MockVehicleCache is an in-memory stand-in for the redis cache.
type MockVehicleCache struct {
	mu       sync.RWMutex
	vehicles map[string]*redis.CachedVehicle

	GetCallCount int32
	SetCallCount int32

	GetError error
}

func NewMockVehicleCache() *MockVehicleCache {
	return &MockVehicleCache{vehicles: make(map[string]*redis.CachedVehicle)}
}

func (m *MockVehicleCache) GetVehicle(ctx context.Context, vehicleID string) (*redis.CachedVehicle, error) {
	m.mu.Lock()
	m.GetCallCount++
	m.mu.Unlock()
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	cached, ok := m.vehicles[vehicleID]
	if !ok {
		return nil, nil
	}
	copied := *cached
	return &copied, nil
}

func (m *MockVehicleCache) SetVehicle(ctx context.Context, vehicle *redis.CachedVehicle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCallCount++
	copied := *vehicle
	m.vehicles[vehicle.ID] = &copied
	return nil
}

func (m *MockVehicleCache) InvalidateVehicle(ctx context.Context, vehicleID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.vehicles, vehicleID)
	return nil
}

func TestAddVehicle_PersistsAndCaches(t *testing.T) {
	t.Parallel()

	vehicleRepo := NewMockVehicleRepository()
	cache := NewMockVehicleCache()
	svc := service.NewVehicleService(vehicleRepo, cache, testLogger)

	vehicle := domain.NewVehicle("vehicle-1", "City Scooter", domain.VehicleKindScooter, domain.MoneyFromFloat(0.3))
	vehicle.WeightLimit = "120kg"

	if err := svc.AddVehicle(context.Background(), vehicle); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if vehicleRepo.GetVehicle("vehicle-1") == nil {
		t.Error("vehicle not persisted")
	}
	if cache.SetCallCount != 1 {
		t.Errorf("expected 1 cache write, got %d", cache.SetCallCount)
	}

	if err := svc.AddVehicle(context.Background(), &domain.Vehicle{}); !errors.Is(err, service.ErrInvalidVehicleID) {
		t.Errorf("expected ErrInvalidVehicleID, got %v", err)
	}
}

func TestGetVehicle_CacheHitSkipsRepository(t *testing.T) {
	t.Parallel()

	vehicleRepo := NewMockVehicleRepository()
	cache := NewMockVehicleCache()
	svc := service.NewVehicleService(vehicleRepo, cache, testLogger)

	vehicle := domain.NewVehicle("vehicle-1", "E-Bike One", domain.VehicleKindEBike, domain.MoneyFromFloat(0.25))
	vehicle.BatteryLevel = "87%"
	if err := svc.AddVehicle(context.Background(), vehicle); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Break the repository; a cached read must still succeed.
	vehicleRepo.GetByIDError = errors.New("db down")

	got, err := svc.GetVehicle(context.Background(), "vehicle-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Model != "E-Bike One" || got.BatteryLevel != "87%" {
		t.Errorf("cache round-trip lost fields: %+v", got)
	}
	if !got.RatePerMinute.Equal(domain.MoneyFromFloat(0.25)) {
		t.Errorf("cache round-trip lost rate: %s", got.RatePerMinute)
	}
}

func TestGetVehicle_CacheMissFallsThrough(t *testing.T) {
	t.Parallel()

	vehicleRepo := NewMockVehicleRepository()
	cache := NewMockVehicleCache()
	seedVehicle(vehicleRepo, "vehicle-1", domain.VehicleStateAvailable)

	svc := service.NewVehicleService(vehicleRepo, cache, testLogger)

	got, err := svc.GetVehicle(context.Background(), "vehicle-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "vehicle-1" {
		t.Errorf("expected vehicle-1, got %s", got.ID)
	}
	// The miss populates the cache for next time.
	if cache.SetCallCount != 1 {
		t.Errorf("expected cache backfill, got %d writes", cache.SetCallCount)
	}
}

func TestGetVehicle_NilCache(t *testing.T) {
	t.Parallel()

	vehicleRepo := NewMockVehicleRepository()
	seedVehicle(vehicleRepo, "vehicle-1", domain.VehicleStateAvailable)

	svc := service.NewVehicleService(vehicleRepo, nil, testLogger)

	if _, err := svc.GetVehicle(context.Background(), "vehicle-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.GetVehicle(context.Background(), "ghost"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetAvailableVehicles(t *testing.T) {
	t.Parallel()

	vehicleRepo := NewMockVehicleRepository()
	seedVehicle(vehicleRepo, "vehicle-1", domain.VehicleStateAvailable)
	seedVehicle(vehicleRepo, "vehicle-2", domain.VehicleStateInUse)
	seedVehicle(vehicleRepo, "vehicle-3", domain.VehicleStateMaintenance)

	svc := service.NewVehicleService(vehicleRepo, nil, testLogger)

	available, err := svc.GetAvailableVehicles(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(available) != 1 || available[0].ID != "vehicle-1" {
		t.Errorf("expected only vehicle-1 available, got %d vehicles", len(available))
	}
}
