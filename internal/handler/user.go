package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fleetshare/internal/domain"
	"fleetshare/internal/repository"
)

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	userRepo repository.UserRepository
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userRepo repository.UserRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

// RegisterRequest is the HTTP request body for user registration.
type RegisterRequest struct {
	Name string `json:"name"`
	Tier string `json:"tier"`
}

// UserResponse is the HTTP response for user data.
type UserResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Tier               string  `json:"tier"`
	DiscountMultiplier float64 `json:"discount_multiplier"`
}

// Register handles POST /v1/users/register
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.Name == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "name is required"})
		return
	}

	tier := domain.TierStandard
	if req.Tier != "" {
		parsed, err := domain.ParseMembershipTier(req.Tier)
		if err != nil {
			respondError(c, err)
			return
		}
		tier = parsed
	}

	user := &domain.User{
		ID:   uuid.New().String(),
		Name: req.Name,
		Tier: tier,
	}

	if err := h.userRepo.Save(c.Request.Context(), user); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, userResponse(user))
}

// GetAll handles GET /v1/users
func (h *UserHandler) GetAll(c *gin.Context) {
	users, err := h.userRepo.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, userResponse(u))
	}

	c.JSON(http.StatusOK, responses)
}

func userResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:                 u.ID,
		Name:               u.Name,
		Tier:               string(u.Tier),
		DiscountMultiplier: u.Tier.DiscountMultiplier(),
	}
}
