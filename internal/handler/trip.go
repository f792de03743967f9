package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fleetshare/internal/domain"
	"fleetshare/internal/service"
)

// TripHandler handles HTTP requests for trips.
type TripHandler struct {
	tripService *service.TripService
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(tripService *service.TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

// StartTripRequest is the HTTP request body for starting a trip.
type StartTripRequest struct {
	UserID    string `json:"user_id"`
	VehicleID string `json:"vehicle_id"`
}

// RecordDistanceRequest is the HTTP request body for recording distance.
type RecordDistanceRequest struct {
	Km float64 `json:"km"`
}

// TripResponse is the HTTP response for trip operations.
type TripResponse struct {
	TripID     string  `json:"trip_id"`
	UserID     string  `json:"user_id"`
	VehicleID  string  `json:"vehicle_id"`
	State      string  `json:"state"`
	StartedAt  string  `json:"started_at,omitempty"`
	EndedAt    string  `json:"ended_at,omitempty"`
	DistanceKm float64 `json:"distance_km"`
	Price      string  `json:"price"`
	Currency   string  `json:"currency"`
}

// PriceResponse is the HTTP response for ending a trip.
type PriceResponse struct {
	TripID   string `json:"trip_id"`
	Price    string `json:"price"`
	Currency string `json:"currency"`
}

// StartTrip handles POST /v1/trips/start
func (h *TripHandler) StartTrip(c *gin.Context) {
	var req StartTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	trip, err := h.tripService.StartTrip(c.Request.Context(), service.StartTripRequest{
		UserID:    req.UserID,
		VehicleID: req.VehicleID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, tripResponse(trip))
}

// EndTrip handles POST /v1/trips/:id/end
func (h *TripHandler) EndTrip(c *gin.Context) {
	tripID := c.Param("id")

	price, err := h.tripService.EndTrip(c.Request.Context(), tripID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, PriceResponse{
		TripID:   tripID,
		Price:    price.Amount.String(),
		Currency: price.Currency,
	})
}

// CancelTrip handles POST /v1/trips/:id/cancel
func (h *TripHandler) CancelTrip(c *gin.Context) {
	if err := h.tripService.CancelTrip(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RecordDistance handles POST /v1/trips/:id/distance
func (h *TripHandler) RecordDistance(c *gin.Context) {
	var req RecordDistanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	trip, err := h.tripService.RecordDistance(c.Request.Context(), c.Param("id"), req.Km)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, tripResponse(trip))
}

// GetActive handles GET /v1/trips/:id
func (h *TripHandler) GetActive(c *gin.Context) {
	trip, err := h.tripService.LookupActive(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, tripResponse(trip))
}

// GetAllActive handles GET /v1/trips
func (h *TripHandler) GetAllActive(c *gin.Context) {
	trips := h.tripService.ActiveTrips()

	responses := make([]TripResponse, 0, len(trips))
	for _, trip := range trips {
		responses = append(responses, tripResponse(trip))
	}

	c.JSON(http.StatusOK, responses)
}

func tripResponse(t *domain.Trip) TripResponse {
	resp := TripResponse{
		TripID:     t.ID,
		UserID:     t.UserID,
		VehicleID:  t.VehicleID,
		State:      string(t.State),
		DistanceKm: t.Distance.Km,
		Price:      t.Price.Amount.String(),
		Currency:   t.Price.Currency,
	}
	if !t.StartedAt.IsZero() {
		resp.StartedAt = t.StartedAt.Format(time.RFC3339)
	}
	if !t.EndedAt.IsZero() {
		resp.EndedAt = t.EndedAt.Format(time.RFC3339)
	}
	return resp
}
