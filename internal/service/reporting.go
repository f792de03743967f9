package service

import (
	"context"

	"fleetshare/internal/domain"
	"fleetshare/internal/repository"
)

// ReportingService aggregates completed trips from the history store.
type ReportingService struct {
	historyRepo repository.TripRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(historyRepo repository.TripRepository) *ReportingService {
	return &ReportingService{historyRepo: historyRepo}
}

// CompletedTrips returns all trips that reached state COMPLETED.
func (s *ReportingService) CompletedTrips(ctx context.Context) ([]*domain.Trip, error) {
	return s.historyRepo.GetByState(ctx, domain.TripStateCompleted)
}

// TotalRevenue folds the prices of all completed trips. Prices are
// authoritative only on completed trips, so canceled ones never count.
func (s *ReportingService) TotalRevenue(ctx context.Context) (domain.Money, error) {
	trips, err := s.historyRepo.GetByState(ctx, domain.TripStateCompleted)
	if err != nil {
		return domain.Money{}, err
	}

	total := domain.ZeroMoney(domain.DefaultCurrency)
	for _, trip := range trips {
		total, err = total.Add(trip.Price)
		if err != nil {
			return domain.Money{}, err
		}
	}
	return total, nil
}
