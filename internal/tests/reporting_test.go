package tests

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fleetshare/internal/domain"
	"fleetshare/internal/service"
)

// ──────────────────────────────────────────────
// REPORTING
// ──────────────────────────────────────────────

func historyTrip(id string, state domain.TripState, price domain.Money) *domain.Trip {
	started := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	return &domain.Trip{
		ID:        id,
		UserID:    "user-1",
		VehicleID: "vehicle-1",
		State:     state,
		StartedAt: started,
		EndedAt:   started.Add(10 * time.Minute),
		Price:     price,
	}
}

func TestCompletedTrips_FiltersByState(t *testing.T) {
	t.Parallel()

	historyRepo := NewMockTripRepository()
	historyRepo.AddTrip(historyTrip("trip-1", domain.TripStateCompleted, domain.MoneyFromFloat(5)))
	historyRepo.AddTrip(historyTrip("trip-2", domain.TripStateCanceled, domain.ZeroMoney(domain.DefaultCurrency)))
	historyRepo.AddTrip(historyTrip("trip-3", domain.TripStateCompleted, domain.MoneyFromFloat(7.5)))

	svc := service.NewReportingService(historyRepo)

	trips, err := svc.CompletedTrips(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trips) != 2 {
		t.Fatalf("expected 2 completed trips, got %d", len(trips))
	}
	for _, trip := range trips {
		if trip.State != domain.TripStateCompleted {
			t.Errorf("expected only completed trips, got %s", trip.State)
		}
	}
}

func TestTotalRevenue_SumsCompletedTripsOnly(t *testing.T) {
	t.Parallel()

	historyRepo := NewMockTripRepository()
	historyRepo.AddTrip(historyTrip("trip-1", domain.TripStateCompleted, domain.MoneyFromFloat(5)))
	historyRepo.AddTrip(historyTrip("trip-2", domain.TripStateCompleted, domain.MoneyFromFloat(7.5)))
	historyRepo.AddTrip(historyTrip("trip-3", domain.TripStateCanceled, domain.MoneyFromFloat(99)))

	svc := service.NewReportingService(historyRepo)

	total, err := svc.TotalRevenue(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := domain.MoneyFromFloat(12.5); !total.Equal(want) {
		t.Errorf("expected revenue %s, got %s", want, total)
	}
}

func TestTotalRevenue_EmptyHistory(t *testing.T) {
	t.Parallel()

	svc := service.NewReportingService(NewMockTripRepository())

	total, err := svc.TotalRevenue(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !total.IsZero() {
		t.Errorf("expected zero revenue, got %s", total)
	}
	if total.Currency != domain.DefaultCurrency {
		t.Errorf("expected currency %s, got %s", domain.DefaultCurrency, total.Currency)
	}
}

func TestTotalRevenue_ExactAcrossManyTrips(t *testing.T) {
	t.Parallel()

	historyRepo := NewMockTripRepository()
	for i := 0; i < 100; i++ {
		id := fmt.Sprintf("trip-%d", i)
		historyRepo.AddTrip(historyTrip(id, domain.TripStateCompleted, domain.MoneyFromFloat(0.1)))
	}

	svc := service.NewReportingService(historyRepo)

	total, err := svc.TotalRevenue(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 100 x 0.10 must be exactly 10, not 9.99999.
	if want := domain.MoneyFromFloat(10); !total.Equal(want) {
		t.Errorf("expected revenue %s, got %s", want, total)
	}
}

func TestTotalRevenue_CurrencyMismatchFails(t *testing.T) {
	t.Parallel()

	historyRepo := NewMockTripRepository()
	historyRepo.AddTrip(historyTrip("trip-1", domain.TripStateCompleted, domain.MoneyFromFloat(5)))
	historyRepo.AddTrip(historyTrip("trip-2", domain.TripStateCompleted,
		domain.NewMoney(decimal.NewFromFloat(5), "EUR")))

	svc := service.NewReportingService(historyRepo)

	if _, err := svc.TotalRevenue(context.Background()); !errors.Is(err, domain.ErrCurrencyMismatch) {
		t.Errorf("expected ErrCurrencyMismatch, got %v", err)
	}
}
