package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nutriplan/v1/internal/domain/nutrition"
	"github.com/nutriplan/v1/internal/domain/user"
	"github.com/nutriplan/v1/internal/infrastructure/http/middleware"
	"github.com/nutriplan/v1/internal/ports/inbound"
	apperrors "github.com/nutriplan/v1/pkg/errors"
)

// AuthHandlers handles registration, login and profile endpoints
type AuthHandlers struct {
	users  inbound.UserService
	logger *zap.Logger
}

// NewAuthHandlers creates a new auth handlers instance
func NewAuthHandlers(users inbound.UserService, logger *zap.Logger) *AuthHandlers {
	return &AuthHandlers{
		users:  users,
		logger: logger.Named("auth-handlers"),
	}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"required,min=2,max=100"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type profileRequest struct {
	WeightKG           float64 `json:"weight_kg" validate:"gte=0"`
	HeightCM           float64 `json:"height_cm" validate:"gte=0"`
	Age                int     `json:"age" validate:"gte=0,lte=150"`
	Gender             string  `json:"gender"`
	ActivityLevel      string  `json:"activity_level"`
	Goals              string  `json:"goals"`
	DietaryPreferences string  `json:"dietary_preferences"`
}

type userResponse struct {
	ID          uuid.UUID         `json:"id"`
	Email       string            `json:"email"`
	FullName    string            `json:"full_name"`
	IsActive    bool              `json:"is_active"`
	Profile     nutrition.Profile `json:"profile"`
	CreatedAt   time.Time         `json:"created_at"`
	LastLoginAt *time.Time        `json:"last_login_at,omitempty"`
}

type authResponse struct {
	User        userResponse `json:"user"`
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	entity, err := h.users.Register(r.Context(), inbound.RegisterUserCommand{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, APIResponse{
		Success: true,
		Data:    toUserResponse(entity),
		Message: "Account created successfully",
	})
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	result, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data: authResponse{
			User:        toUserResponse(result.User),
			AccessToken: result.AccessToken,
			ExpiresAt:   result.ExpiresAt,
		},
	})
}

// GetProfile handles GET /api/v1/auth/profile
func (h *AuthHandlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}

	entity, err := h.users.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    toUserResponse(entity),
	})
}

// UpdateProfile handles PUT /api/v1/auth/profile
func (h *AuthHandlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}

	var req profileRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	entity, err := h.users.UpdateProfile(r.Context(), userID, nutrition.Profile{
		WeightKG:           req.WeightKG,
		HeightCM:           req.HeightCM,
		Age:                req.Age,
		Gender:             nutrition.Gender(req.Gender),
		ActivityLevel:      nutrition.ActivityLevel(req.ActivityLevel),
		Goals:              req.Goals,
		DietaryPreferences: req.DietaryPreferences,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    toUserResponse(entity),
		Message: "Profile updated successfully",
	})
}

func toUserResponse(entity *user.User) userResponse {
	return userResponse{
		ID:          entity.ID(),
		Email:       entity.Email(),
		FullName:    entity.FullName(),
		IsActive:    entity.IsActive(),
		Profile:     entity.Profile(),
		CreatedAt:   entity.CreatedAt(),
		LastLoginAt: entity.LastLoginAt(),
	}
}
