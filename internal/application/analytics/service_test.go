package analytics

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nutriplan/v1/internal/domain/insights"
	"github.com/nutriplan/v1/internal/domain/nutrition"
	"github.com/nutriplan/v1/internal/domain/user"
	"github.com/nutriplan/v1/internal/infrastructure/monitoring"
	"github.com/nutriplan/v1/internal/ports/inbound"
	"github.com/nutriplan/v1/pkg/errors"
	"github.com/nutriplan/v1/test/testutils"
)

// Prometheus collectors register globally, so the whole test binary shares
// one metrics instance.
var testMetrics = monitoring.NewMetrics()

type serviceMocks struct {
	userRepo *testutils.MockUserRepository
	logRepo  *testutils.MockFoodLogRepository
	cache    *testutils.MockCacheRepository
}

func newService() (*Service, *serviceMocks) {
	m := &serviceMocks{
		userRepo: new(testutils.MockUserRepository),
		logRepo:  new(testutils.MockFoodLogRepository),
		cache:    new(testutils.MockCacheRepository),
	}
	return NewService(m.userRepo, m.logRepo, m.cache, testMetrics, zap.NewNop()), m
}

func testUser(t *testing.T) *user.User {
	t.Helper()
	profile := nutrition.Profile{
		WeightKG:      70,
		HeightCM:      175,
		Age:           30,
		Gender:        nutrition.GenderMale,
		ActivityLevel: nutrition.ActivityModeratelyActive,
	}
	now := time.Now()
	return user.Reconstitute(uuid.New(), "jane@example.com", "Jane Doe", "hash", true, profile, now, now, nil)
}

func TestLogFood(t *testing.T) {
	svc, m := newService()
	userID := uuid.New()

	m.logRepo.On("Create", mock.Anything, mock.AnythingOfType("*insights.FoodLog")).Return(nil)
	m.cache.On("Exists", mock.Anything, mock.AnythingOfType("string")).Return(false, nil)

	loggedAt := time.Date(2024, 5, 10, 13, 0, 0, 0, time.UTC)
	entry, err := svc.LogFood(context.Background(), inbound.LogFoodCommand{
		UserID:   userID,
		FoodName: "Grilled Salmon",
		MealType: "dinner",
		Calories: 412,
		Protein:  40,
		Carbs:    2,
		Fat:      26,
		Servings: 1.5,
		LoggedAt: loggedAt,
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, entry.ID)
	assert.Equal(t, userID, entry.UserID)
	assert.Equal(t, "Grilled Salmon", entry.FoodName)
	assert.Equal(t, 1.5, entry.Servings)
	assert.Equal(t, loggedAt, entry.LoggedAt)
	m.logRepo.AssertExpectations(t)
}

func TestLogFood_Defaults(t *testing.T) {
	svc, m := newService()

	m.logRepo.On("Create", mock.Anything, mock.AnythingOfType("*insights.FoodLog")).Return(nil)
	m.cache.On("Exists", mock.Anything, mock.AnythingOfType("string")).Return(false, nil)

	before := time.Now()
	entry, err := svc.LogFood(context.Background(), inbound.LogFoodCommand{
		UserID:   uuid.New(),
		FoodName: "Oatmeal",
		Servings: -2,
	})
	require.NoError(t, err)

	assert.Equal(t, 1.0, entry.Servings)
	assert.False(t, entry.LoggedAt.Before(before))
}

func TestLogFood_MissingName(t *testing.T) {
	svc, _ := newService()

	_, err := svc.LogFood(context.Background(), inbound.LogFoodCommand{UserID: uuid.New()})
	assert.Equal(t, errors.CodeValidationFailed, errors.GetCode(err))
}

func TestLogFood_InvalidatesCachedInsights(t *testing.T) {
	svc, m := newService()
	userID := uuid.New()

	m.logRepo.On("Create", mock.Anything, mock.AnythingOfType("*insights.FoodLog")).Return(nil)

	staleKey := insightsCacheKey(userID, 7)
	m.cache.On("Exists", mock.Anything, staleKey).Return(true, nil)
	m.cache.On("Exists", mock.Anything, mock.AnythingOfType("string")).Return(false, nil)
	m.cache.On("Delete", mock.Anything, staleKey).Return(nil)

	_, err := svc.LogFood(context.Background(), inbound.LogFoodCommand{
		UserID:   userID,
		FoodName: "Banana",
	})
	require.NoError(t, err)

	m.cache.AssertCalled(t, "Delete", mock.Anything, staleKey)
}

func TestDeleteFoodLog(t *testing.T) {
	userID := uuid.New()
	logID := uuid.New()

	t.Run("owner can delete", func(t *testing.T) {
		svc, m := newService()
		m.logRepo.On("FindByID", mock.Anything, logID).Return(&insights.FoodLog{ID: logID, UserID: userID}, nil)
		m.logRepo.On("Delete", mock.Anything, logID).Return(nil)
		m.cache.On("Exists", mock.Anything, mock.AnythingOfType("string")).Return(false, nil)

		require.NoError(t, svc.DeleteFoodLog(context.Background(), userID, logID))
		m.logRepo.AssertExpectations(t)
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		svc, m := newService()
		m.logRepo.On("FindByID", mock.Anything, logID).Return(&insights.FoodLog{ID: logID, UserID: uuid.New()}, nil)

		err := svc.DeleteFoodLog(context.Background(), userID, logID)
		assert.Equal(t, errors.CodeForbidden, errors.GetCode(err))
		m.logRepo.AssertNotCalled(t, "Delete", mock.Anything, logID)
	})

	t.Run("missing entry", func(t *testing.T) {
		svc, m := newService()
		m.logRepo.On("FindByID", mock.Anything, logID).Return(nil, assert.AnError)

		err := svc.DeleteFoodLog(context.Background(), userID, logID)
		assert.Equal(t, errors.CodeFoodLogNotFound, errors.GetCode(err))
	})
}

func TestNutritionInsights_CacheHit(t *testing.T) {
	svc, m := newService()
	userID := uuid.New()

	cached := &insights.Report{
		Ratios: insights.MacroRatios{ProteinPct: 25, CarbsPct: 50, FatPct: 25},
	}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)

	m.cache.On("Get", mock.Anything, insightsCacheKey(userID, 7)).Return(payload, nil)

	report, err := svc.NutritionInsights(context.Background(), userID, 7)
	require.NoError(t, err)

	assert.Equal(t, cached.Ratios, report.Ratios)
	m.userRepo.AssertNotCalled(t, "FindByID", mock.Anything, userID)
	m.logRepo.AssertNotCalled(t, "FindByUser", mock.Anything, userID, mock.Anything, mock.Anything)
}

func TestNutritionInsights_CacheMiss(t *testing.T) {
	svc, m := newService()
	u := testUser(t)

	m.cache.On("Get", mock.Anything, insightsCacheKey(u.ID(), 7)).Return(nil, nil)
	m.userRepo.On("FindByID", mock.Anything, u.ID()).Return(u, nil)
	m.logRepo.On("FindByUser", mock.Anything, u.ID(), mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return([]insights.FoodLog{}, nil)
	m.cache.On("Set", mock.Anything, insightsCacheKey(u.ID(), 7), mock.AnythingOfType("[]uint8"), insightsCacheTTL).Return(nil)

	report, err := svc.NutritionInsights(context.Background(), u.ID(), 0)
	require.NoError(t, err)

	// No logs yields the minimal report.
	require.Len(t, report.Insights, 2)
	m.cache.AssertExpectations(t)
}

func TestNutritionInsights_UserNotFound(t *testing.T) {
	svc, m := newService()
	userID := uuid.New()

	m.cache.On("Get", mock.Anything, insightsCacheKey(userID, 7)).Return(nil, nil)
	m.userRepo.On("FindByID", mock.Anything, userID).Return(nil, user.ErrUserNotFound)

	_, err := svc.NutritionInsights(context.Background(), userID, 7)
	assert.Equal(t, errors.CodeUserNotFound, errors.GetCode(err))
}

func TestNutritionSummary(t *testing.T) {
	svc, m := newService()
	userID := uuid.New()

	from := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 2)
	logs := []insights.FoodLog{
		{Calories: 500, Protein: 30, Carbs: 55, Fat: 15, LoggedAt: from},
		{Calories: 700, Protein: 45, Carbs: 70, Fat: 25, LoggedAt: from.AddDate(0, 0, 1)},
		{Calories: 600, Protein: 35, Carbs: 60, Fat: 20, LoggedAt: to},
	}
	m.logRepo.On("FindByUser", mock.Anything, userID, from, to).Return(logs, nil)

	summary, err := svc.NutritionSummary(context.Background(), userID, from, to)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.DaysInRange)
	assert.Equal(t, 3, summary.EntryCount)
	assert.InDelta(t, 1800, summary.TotalCalories, 1e-9)
	assert.InDelta(t, 110, summary.TotalProtein, 1e-9)
	assert.InDelta(t, 185, summary.TotalCarbs, 1e-9)
	assert.InDelta(t, 60, summary.TotalFat, 1e-9)
	assert.InDelta(t, 600, summary.DailyAverages.Calories, 1e-9)
	assert.InDelta(t, 36.7, summary.DailyAverages.Protein, 1e-9)
	assert.InDelta(t, 61.7, summary.DailyAverages.Carbs, 1e-9)
	assert.InDelta(t, 20, summary.DailyAverages.Fat, 1e-9)
}

func TestNutritionSummary_InvertedRange(t *testing.T) {
	svc, _ := newService()

	from := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	_, err := svc.NutritionSummary(context.Background(), uuid.New(), from, from.AddDate(0, 0, -1))
	assert.Equal(t, errors.CodeValidationFailed, errors.GetCode(err))
}
