package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fleetshare/internal/domain"
	"fleetshare/internal/service"
)

// VehicleHandler handles HTTP requests for the fleet.
type VehicleHandler struct {
	vehicleService *service.VehicleService
}

// NewVehicleHandler creates a new VehicleHandler.
func NewVehicleHandler(vehicleService *service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

// AddVehicleRequest is the HTTP request body for adding a vehicle.
type AddVehicleRequest struct {
	ID            string `json:"id"`
	Model         string `json:"model"`
	Kind          string `json:"kind"`
	FuelType      string `json:"fuel_type"`
	BatteryLevel  string `json:"battery_level"`
	WeightLimit   string `json:"weight_limit"`
	RatePerMinute string `json:"rate_per_minute"`
	RateCurrency  string `json:"rate_currency"`
}

// VehicleResponse is the HTTP response for vehicle data.
type VehicleResponse struct {
	ID            string `json:"id"`
	Model         string `json:"model"`
	Kind          string `json:"kind"`
	FuelType      string `json:"fuel_type,omitempty"`
	BatteryLevel  string `json:"battery_level,omitempty"`
	WeightLimit   string `json:"weight_limit,omitempty"`
	State         string `json:"state"`
	RatePerMinute string `json:"rate_per_minute"`
	RateCurrency  string `json:"rate_currency"`
}

// AddVehicle handles POST /v1/vehicles
func (h *VehicleHandler) AddVehicle(c *gin.Context) {
	var req AddVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.Model == "" || req.RatePerMinute == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "model and rate_per_minute are required"})
		return
	}

	kind, ok := parseVehicleKind(req.Kind)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "kind must be one of CAR, EBIKE, SCOOTER"})
		return
	}

	rate, err := decimal.NewFromString(req.RatePerMinute)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid rate_per_minute"})
		return
	}
	currency := req.RateCurrency
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	id := req.ID
	if id == "" {
		id = uuid.New().String()
	}

	vehicle := domain.NewVehicle(id, req.Model, kind, domain.NewMoney(rate, currency))
	vehicle.FuelType = req.FuelType
	vehicle.BatteryLevel = req.BatteryLevel
	vehicle.WeightLimit = req.WeightLimit

	if err := h.vehicleService.AddVehicle(c.Request.Context(), vehicle); err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, vehicleResponse(vehicle))
}

// GetVehicle handles GET /v1/vehicles/:id
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	vehicle, err := h.vehicleService.GetVehicle(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, vehicleResponse(vehicle))
}

// GetAll handles GET /v1/vehicles
func (h *VehicleHandler) GetAll(c *gin.Context) {
	vehicles, err := h.vehicleService.GetAllVehicles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, vehicleResponses(vehicles))
}

// GetAvailable handles GET /v1/vehicles/available
func (h *VehicleHandler) GetAvailable(c *gin.Context) {
	vehicles, err := h.vehicleService.GetAvailableVehicles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, vehicleResponses(vehicles))
}

func parseVehicleKind(s string) (domain.VehicleKind, bool) {
	switch domain.VehicleKind(s) {
	case domain.VehicleKindCar, domain.VehicleKindEBike, domain.VehicleKindScooter:
		return domain.VehicleKind(s), true
	default:
		return "", false
	}
}

func vehicleResponse(v *domain.Vehicle) VehicleResponse {
	return VehicleResponse{
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

func vehicleResponses(vehicles []*domain.Vehicle) []VehicleResponse {
	responses := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		responses = append(responses, vehicleResponse(v))
	}
	return responses
}
