package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nutriplan/v1/internal/domain/catalog"
	"github.com/nutriplan/v1/internal/infrastructure/http/middleware"
	"github.com/nutriplan/v1/internal/ports/inbound"
	apperrors "github.com/nutriplan/v1/pkg/errors"
)

// NutritionHandlers handles food logging, insights and food search endpoints
type NutritionHandlers struct {
	analytics inbound.AnalyticsService
	foods     *catalog.Store
	logger    *zap.Logger
}

// NewNutritionHandlers creates a new nutrition handlers instance
func NewNutritionHandlers(analytics inbound.AnalyticsService, foods *catalog.Store, logger *zap.Logger) *NutritionHandlers {
	return &NutritionHandlers{
		analytics: analytics,
		foods:     foods,
		logger:    logger.Named("nutrition-handlers"),
	}
}

type logFoodRequest struct {
	FoodName    string   `json:"food_name" validate:"required,min=1,max=255"`
	MealType    string   `json:"meal_type"`
	Calories    float64  `json:"calories" validate:"gte=0"`
	Protein     float64  `json:"protein" validate:"gte=0"`
	Carbs       float64  `json:"carbs" validate:"gte=0"`
	Fat         float64  `json:"fat" validate:"gte=0"`
	Fiber       *float64 `json:"fiber"`
	Sugar       *float64 `json:"sugar"`
	ServingSize string   `json:"serving_size"`
	Servings    float64  `json:"servings" validate:"gte=0"`
	LoggedAt    string   `json:"logged_at"`
}

// LogFood handles POST /api/v1/nutrition/logs
func (h *NutritionHandlers) LogFood(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}

	var req logFoodRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	var loggedAt time.Time
	if req.LoggedAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.LoggedAt)
		if err != nil {
			writeError(w, h.logger, apperrors.NewBadRequestError("logged_at must use RFC 3339 format"))
			return
		}
		loggedAt = parsed
	}

	entry, err := h.analytics.LogFood(r.Context(), inbound.LogFoodCommand{
		UserID:      userID,
		FoodName:    req.FoodName,
		MealType:    req.MealType,
		Calories:    req.Calories,
		Protein:     req.Protein,
		Carbs:       req.Carbs,
		Fat:         req.Fat,
		Fiber:       req.Fiber,
		Sugar:       req.Sugar,
		ServingSize: req.ServingSize,
		Servings:    req.Servings,
		LoggedAt:    loggedAt,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, APIResponse{
		Success: true,
		Data:    entry,
		Message: "Food logged successfully",
	})
}

// ListLogs handles GET /api/v1/nutrition/logs
func (h *NutritionHandlers) ListLogs(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}

	from, to, err := dateRange(r, 7)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	logs, err := h.analytics.FoodLogs(r.Context(), userID, from, to)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    logs,
	})
}

// DeleteLog handles DELETE /api/v1/nutrition/logs/{id}
func (h *NutritionHandlers) DeleteLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}

	logID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, apperrors.NewBadRequestError("Invalid log ID"))
		return
	}

	if err := h.analytics.DeleteFoodLog(r.Context(), userID, logID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Message: "Food log deleted successfully",
	})
}

// Insights handles GET /api/v1/nutrition/insights
func (h *NutritionHandlers) Insights(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}

	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, h.logger, apperrors.NewBadRequestError("days must be a positive integer"))
			return
		}
		days = parsed
	}

	report, err := h.analytics.NutritionInsights(r.Context(), userID, days)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    report,
	})
}

// Summary handles GET /api/v1/nutrition/summary
func (h *NutritionHandlers) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.NewUnauthorizedError(""))
		return
	}

	from, to, err := dateRange(r, 7)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	summary, err := h.analytics.NutritionSummary(r.Context(), userID, from, to)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    summary,
	})
}

// SearchFoods handles GET /api/v1/foods/search
func (h *NutritionHandlers) SearchFoods(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, h.logger, apperrors.NewBadRequestError("q query parameter is required"))
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, h.logger, apperrors.NewBadRequestError("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	results := h.foods.Snapshot().Search(query, limit)
	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    results,
	})
}

// dateRange parses start_date and end_date query parameters, defaulting to
// the trailing defaultDays window ending now.
func dateRange(r *http.Request, defaultDays int) (time.Time, time.Time, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -defaultDays)
	to := now

	if raw := r.URL.Query().Get("start_date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, apperrors.NewBadRequestError("start_date must use YYYY-MM-DD format")
		}
		from = parsed
	}
	if raw := r.URL.Query().Get("end_date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, apperrors.NewBadRequestError("end_date must use YYYY-MM-DD format")
		}
		// Include the whole end day
		to = parsed.Add(24*time.Hour - time.Nanosecond)
	}

	return from, to, nil
}
