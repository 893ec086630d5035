// Package analytics provides the application layer for food logging and insights
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nutriplan/v1/internal/domain/insights"
	"github.com/nutriplan/v1/internal/infrastructure/monitoring"
	"github.com/nutriplan/v1/internal/ports/inbound"
	"github.com/nutriplan/v1/internal/ports/outbound"
	apperrors "github.com/nutriplan/v1/pkg/errors"
)

const (
	defaultInsightDays = 7
	insightsCacheTTL   = 15 * time.Minute
)

// Service implements food logging and nutrition analysis use cases
type Service struct {
	userRepo outbound.UserRepository
	logRepo  outbound.FoodLogRepository
	cache    outbound.CacheRepository
	metrics  *monitoring.Metrics
	logger   *zap.Logger
}

// NewService creates a new analytics service
func NewService(
	userRepo outbound.UserRepository,
	logRepo outbound.FoodLogRepository,
	cache outbound.CacheRepository,
	metrics *monitoring.Metrics,
	logger *zap.Logger,
) *Service {
	return &Service{
		userRepo: userRepo,
		logRepo:  logRepo,
		cache:    cache,
		metrics:  metrics,
		logger:   logger.Named("analytics-service"),
	}
}

var _ inbound.AnalyticsService = (*Service)(nil)

// LogFood records a food log entry for the user
func (s *Service) LogFood(ctx context.Context, cmd inbound.LogFoodCommand) (*insights.FoodLog, error) {
	if cmd.FoodName == "" {
		return nil, apperrors.NewValidationError("food name is required")
	}
	if cmd.Servings <= 0 {
		cmd.Servings = 1
	}

	loggedAt := cmd.LoggedAt
	if loggedAt.IsZero() {
		loggedAt = time.Now()
	}

	entry := &insights.FoodLog{
		ID:          uuid.New(),
		UserID:      cmd.UserID,
		FoodName:    cmd.FoodName,
		MealType:    cmd.MealType,
		Calories:    cmd.Calories,
		Protein:     cmd.Protein,
		Carbs:       cmd.Carbs,
		Fat:         cmd.Fat,
		Fiber:       cmd.Fiber,
		Sugar:       cmd.Sugar,
		ServingSize: cmd.ServingSize,
		Servings:    cmd.Servings,
		LoggedAt:    loggedAt,
	}

	if err := s.logRepo.Create(ctx, entry); err != nil {
		return nil, apperrors.NewDatabaseError("create food log", err)
	}

	s.invalidateInsights(ctx, cmd.UserID)
	s.metrics.FoodLogsCreated.Inc()
	s.logger.Info("Food logged",
		zap.String("user_id", cmd.UserID.String()),
		zap.String("food", cmd.FoodName),
	)
	return entry, nil
}

// FoodLogs returns the user's log entries within the date range
func (s *Service) FoodLogs(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]insights.FoodLog, error) {
	logs, err := s.logRepo.FindByUser(ctx, userID, from, to)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list food logs", err)
	}
	return logs, nil
}

// DeleteFoodLog removes a log entry owned by the user
func (s *Service) DeleteFoodLog(ctx context.Context, userID, logID uuid.UUID) error {
	entry, err := s.logRepo.FindByID(ctx, logID)
	if err != nil {
		return apperrors.NewFoodLogNotFoundError(logID.String()).WithCause(err)
	}
	if entry.UserID != userID {
		return apperrors.NewForbiddenError("Food log belongs to another user")
	}

	if err := s.logRepo.Delete(ctx, logID); err != nil {
		return apperrors.NewDatabaseError("delete food log", err)
	}

	s.invalidateInsights(ctx, userID)
	return nil
}

// NutritionInsights analyzes the user's recent logs and returns a report
func (s *Service) NutritionInsights(ctx context.Context, userID uuid.UUID, days int) (*insights.Report, error) {
	if days <= 0 {
		days = defaultInsightDays
	}

	cacheKey := insightsCacheKey(userID, days)
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != nil {
		var report insights.Report
		if err := json.Unmarshal(cached, &report); err == nil {
			return &report, nil
		}
	}

	entity, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, apperrors.NewUserNotFoundError(userID.String()).WithCause(err)
	}

	to := time.Now()
	from := to.AddDate(0, 0, -days)
	logs, err := s.logRepo.FindByUser(ctx, userID, from, to)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list food logs", err)
	}

	report := insights.Analyze(logs, entity.Profile())
	s.metrics.InsightReports.Inc()

	if payload, err := json.Marshal(report); err == nil {
		if err := s.cache.Set(ctx, cacheKey, payload, insightsCacheTTL); err != nil {
			s.logger.Warn("Failed to cache insights", zap.Error(err))
		}
	}

	return report, nil
}

// NutritionSummary aggregates intake over an explicit date range
func (s *Service) NutritionSummary(ctx context.Context, userID uuid.UUID, from, to time.Time) (*inbound.NutritionSummary, error) {
	if to.Before(from) {
		return nil, apperrors.NewValidationError("end date must not precede start date")
	}

	logs, err := s.logRepo.FindByUser(ctx, userID, from, to)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list food logs", err)
	}

	summary := &inbound.NutritionSummary{
		From:        from,
		To:          to,
		DaysInRange: int(to.Sub(from).Hours()/24) + 1,
		EntryCount:  len(logs),
	}

	for _, entry := range logs {
		summary.TotalCalories += entry.Calories
		summary.TotalProtein += entry.Protein
		summary.TotalCarbs += entry.Carbs
		summary.TotalFat += entry.Fat
	}

	days := float64(summary.DaysInRange)
	summary.DailyAverages = insights.DailyAverages{
		Calories: round1(summary.TotalCalories / days),
		Protein:  round1(summary.TotalProtein / days),
		Carbs:    round1(summary.TotalCarbs / days),
		Fat:      round1(summary.TotalFat / days),
	}

	return summary, nil
}

func (s *Service) invalidateInsights(ctx context.Context, userID uuid.UUID) {
	for days := 1; days <= 30; days++ {
		key := insightsCacheKey(userID, days)
		exists, err := s.cache.Exists(ctx, key)
		if err != nil || !exists {
			continue
		}
		if err := s.cache.Delete(ctx, key); err != nil {
			s.logger.Warn("Failed to invalidate insights cache", zap.Error(err))
		}
	}
}

func insightsCacheKey(userID uuid.UUID, days int) string {
	return fmt.Sprintf("insights:%s:%d", userID, days)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
