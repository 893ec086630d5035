package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nutriplan/v1/internal/infrastructure/http/middleware"
	"github.com/nutriplan/v1/internal/ports/inbound"
	apperrors "github.com/nutriplan/v1/pkg/errors"
)

// PlanHandlers handles calorie target and meal plan endpoints
type PlanHandlers struct {
	planner inbound.PlannerService
	logger  *zap.Logger
}

// NewPlanHandlers creates a new plan handlers instance
func NewPlanHandlers(planner inbound.PlannerService, logger *zap.Logger) *PlanHandlers {
	return &PlanHandlers{
		planner: planner,
		logger:  logger.Named("plan-handlers"),
	}
}

type generatePlanRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=255"`
	Days      int    `json:"days" validate:"gte=0,lte=30"`
	StartDate string `json:"start_date"`
}

// NutritionTargets handles GET /api/v1/nutrition/targets
func (h *PlanHandlers) NutritionTargets(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}

	targets, err := h.planner.NutritionTargets(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    targets,
	})
}

// GeneratePlan handles POST /api/v1/meal-plans/generate
func (h *PlanHandlers) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}

	var req generatePlanRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	var start time.Time
	if req.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			writeError(w, h.logger, apperrors.NewBadRequestError("start_date must use YYYY-MM-DD format"))
			return
		}
		start = parsed
	}

	record, err := h.planner.GenerateWeekPlan(r.Context(), inbound.GeneratePlanCommand{
		UserID:    userID,
		Name:      req.Name,
		Days:      req.Days,
		StartDate: start,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, APIResponse{
		Success: true,
		Data:    record,
		Message: "Meal plan generated successfully",
	})
}

// ListPlans handles GET /api/v1/meal-plans
func (h *PlanHandlers) ListPlans(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, h.logger, apperrors.NewBadRequestError("limit must be a non-negative integer"))
			return
		}
		limit = parsed
	}

	plans, err := h.planner.PlanHistory(r.Context(), userID, limit)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    plans,
	})
}

// GetPlan handles GET /api/v1/meal-plans/{id}
func (h *PlanHandlers) GetPlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}

	planID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, apperrors.NewBadRequestError("Invalid plan ID"))
		return
	}

	record, err := h.planner.GetPlan(r.Context(), userID, planID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    record,
	})
}

// DeletePlan handles DELETE /api/v1/meal-plans/{id}
func (h *PlanHandlers) DeletePlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}

	planID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, apperrors.NewBadRequestError("Invalid plan ID"))
		return
	}

	if err := h.planner.DeletePlan(r.Context(), userID, planID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Message: "Meal plan deleted successfully",
	})
}
