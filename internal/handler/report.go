package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fleetshare/internal/service"
)

// ReportHandler handles HTTP requests for trip reporting.
type ReportHandler struct {
	reportingService *service.ReportingService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportingService *service.ReportingService) *ReportHandler {
	return &ReportHandler{reportingService: reportingService}
}

// CompletedTripResponse is one completed trip in a report.
type CompletedTripResponse struct {
	TripID          string  `json:"trip_id"`
	VehicleID       string  `json:"vehicle_id"`
	StartedAt       string  `json:"started_at"`
	EndedAt         string  `json:"ended_at"`
	DurationMinutes float64 `json:"duration_minutes"`
	DistanceKm      float64 `json:"distance_km"`
	Price           string  `json:"price"`
	Currency        string  `json:"currency"`
}

// RevenueResponse is the HTTP response for the revenue report.
type RevenueResponse struct {
	TotalRevenue   string `json:"total_revenue"`
	Currency       string `json:"currency"`
	CompletedTrips int    `json:"completed_trips"`
}

// GetCompletedTrips handles GET /v1/reports/completed-trips
func (h *ReportHandler) GetCompletedTrips(c *gin.Context) {
	trips, err := h.reportingService.CompletedTrips(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]CompletedTripResponse, 0, len(trips))
	for _, trip := range trips {
		responses = append(responses, CompletedTripResponse{
			TripID:          trip.ID,
			VehicleID:       trip.VehicleID,
			StartedAt:       trip.StartedAt.Format(time.RFC3339),
			EndedAt:         trip.EndedAt.Format(time.RFC3339),
			DurationMinutes: trip.Duration().Minutes(),
			DistanceKm:      trip.Distance.Km,
			Price:           trip.Price.Amount.String(),
			Currency:        trip.Price.Currency,
		})
	}

	c.JSON(http.StatusOK, responses)
}

// GetRevenue handles GET /v1/reports/revenue
func (h *ReportHandler) GetRevenue(c *gin.Context) {
	trips, err := h.reportingService.CompletedTrips(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	total, err := h.reportingService.TotalRevenue(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, RevenueResponse{
		TotalRevenue:   total.Amount.String(),
		Currency:       total.Currency,
		CompletedTrips: len(trips),
	})
}
