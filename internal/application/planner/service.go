// Package planner provides the application layer for calorie targets and meal plans
package planner

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nutriplan/v1/internal/domain/mealplan"
	"github.com/nutriplan/v1/internal/domain/nutrition"
	"github.com/nutriplan/v1/internal/infrastructure/monitoring"
	"github.com/nutriplan/v1/internal/ports/inbound"
	"github.com/nutriplan/v1/internal/ports/outbound"
	apperrors "github.com/nutriplan/v1/pkg/errors"
)

// Service implements meal planning use cases
type Service struct {
	userRepo    outbound.UserRepository
	planRepo    outbound.MealPlanRepository
	assembler   *mealplan.Assembler
	defaultDays int
	metrics     *monitoring.Metrics
	logger      *zap.Logger
}

// NewService creates a new planner service. defaultDays is the plan horizon
// used when a request does not specify one.
func NewService(
	userRepo outbound.UserRepository,
	planRepo outbound.MealPlanRepository,
	assembler *mealplan.Assembler,
	defaultDays int,
	metrics *monitoring.Metrics,
	logger *zap.Logger,
) *Service {
	if defaultDays < 1 {
		defaultDays = 7
	}
	return &Service{
		userRepo:    userRepo,
		planRepo:    planRepo,
		assembler:   assembler,
		defaultDays: defaultDays,
		metrics:     metrics,
		logger:      logger.Named("planner-service"),
	}
}

var _ inbound.PlannerService = (*Service)(nil)

// NutritionTargets computes the user's daily calorie target and macro allocation
func (s *Service) NutritionTargets(ctx context.Context, userID uuid.UUID) (*inbound.NutritionTargets, error) {
	profile, err := s.profileFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	calories := nutrition.EstimateCalories(profile)
	return &inbound.NutritionTargets{
		DailyCalories: calories,
		Macros:        nutrition.AllocateMacros(profile, calories),
	}, nil
}

// GenerateWeekPlan assembles a meal plan for the user and persists it
func (s *Service) GenerateWeekPlan(ctx context.Context, cmd inbound.GeneratePlanCommand) (*mealplan.PlanRecord, error) {
	if cmd.Name == "" {
		return nil, apperrors.NewValidationError(mealplan.ErrEmptyPlanName.Error())
	}

	days := cmd.Days
	if days == 0 {
		days = s.defaultDays
	}

	profile, err := s.profileFor(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	week, err := s.assembler.AssembleWeekPlan(profile, days)
	if err != nil {
		switch {
		case errors.Is(err, mealplan.ErrInvalidDays):
			return nil, apperrors.NewValidationError(err.Error()).WithCause(err)
		case errors.Is(err, mealplan.ErrNoCandidateFoods):
			return nil, apperrors.NewDataUnavailableError("food catalog").WithCause(err)
		default:
			return nil, apperrors.Wrap(err, "failed to assemble meal plan")
		}
	}

	start := cmd.StartDate
	if start.IsZero() {
		start = time.Now().Truncate(24 * time.Hour)
	}

	record := &mealplan.PlanRecord{
		ID:        uuid.New(),
		UserID:    cmd.UserID,
		Name:      cmd.Name,
		Week:      week,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, days-1),
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	if err := s.planRepo.Create(ctx, record); err != nil {
		return nil, apperrors.NewDatabaseError("save meal plan", err)
	}

	s.metrics.PlansGenerated.Inc()
	s.logger.Info("Meal plan generated",
		zap.String("user_id", cmd.UserID.String()),
		zap.String("plan_id", record.ID.String()),
		zap.Int("days", days),
	)
	return record, nil
}

// PlanHistory returns the user's stored plans, most recent first
func (s *Service) PlanHistory(ctx context.Context, userID uuid.UUID, limit int) ([]mealplan.PlanRecord, error) {
	plans, err := s.planRepo.FindByUser(ctx, userID, limit)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list meal plans", err)
	}
	return plans, nil
}

// GetPlan returns a single plan owned by the user
func (s *Service) GetPlan(ctx context.Context, userID, planID uuid.UUID) (*mealplan.PlanRecord, error) {
	record, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		return nil, apperrors.NewPlanNotFoundError(planID.String()).WithCause(err)
	}
	if record.UserID != userID {
		return nil, apperrors.NewForbiddenError("Meal plan belongs to another user")
	}
	return record, nil
}

// DeletePlan removes a plan owned by the user
func (s *Service) DeletePlan(ctx context.Context, userID, planID uuid.UUID) error {
	record, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		return apperrors.NewPlanNotFoundError(planID.String()).WithCause(err)
	}
	if record.UserID != userID {
		return apperrors.NewForbiddenError("Meal plan belongs to another user")
	}

	if err := s.planRepo.Delete(ctx, planID); err != nil {
		return apperrors.NewDatabaseError("delete meal plan", err)
	}

	s.logger.Info("Meal plan deleted",
		zap.String("user_id", userID.String()),
		zap.String("plan_id", planID.String()),
	)
	return nil
}

func (s *Service) profileFor(ctx context.Context, userID uuid.UUID) (nutrition.Profile, error) {
	entity, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nutrition.Profile{}, apperrors.NewUserNotFoundError(userID.String()).WithCause(err)
	}
	return entity.Profile(), nil
}
