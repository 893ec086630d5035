package gorm

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/nutriplan/v1/internal/domain/catalog"
	"github.com/nutriplan/v1/internal/domain/insights"
	"github.com/nutriplan/v1/internal/domain/mealplan"
	"github.com/nutriplan/v1/internal/domain/nutrition"
	"github.com/nutriplan/v1/internal/domain/user"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// A file-backed database avoids the in-memory DSN pitfall where each
	// pooled connection sees its own empty schema.
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "nutriplan.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func newTestUser(t *testing.T, email string) *user.User {
	t.Helper()
	u, err := user.NewUser(email, "Test Person", "supersecret")
	require.NoError(t, err)
	return u
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(openTestDB(t))

	u := newTestUser(t, "jane@example.com")
	require.NoError(t, repo.Create(ctx, u))

	t.Run("find by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, u.ID())
		require.NoError(t, err)
		assert.Equal(t, u.Email(), found.Email())
		assert.Equal(t, u.PasswordHash(), found.PasswordHash())
		assert.True(t, found.IsActive())
	})

	t.Run("find by email", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "jane@example.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID(), found.ID())
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})

	t.Run("exists by email", func(t *testing.T) {
		exists, err := repo.ExistsByEmail(ctx, "jane@example.com")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("update profile round trip", func(t *testing.T) {
		profile := nutrition.Profile{
			WeightKG:           70,
			HeightCM:           175,
			Age:                30,
			Gender:             nutrition.GenderMale,
			ActivityLevel:      nutrition.ActivityModeratelyActive,
			Goals:              "muscle_gain",
			DietaryPreferences: "vegetarian",
		}
		require.NoError(t, u.UpdateProfile(profile))
		require.NoError(t, repo.Update(ctx, u))

		found, err := repo.FindByID(ctx, u.ID())
		require.NoError(t, err)
		assert.Equal(t, profile, found.Profile())
	})
}

func TestFoodItemRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewFoodItemRepository(openTestDB(t))

	records := []catalog.FoodRecord{
		{Name: "Apple", Calories: 52, Protein: 0.3, Carbs: 14, Fat: 0.2},
		{Name: "Chicken Breast", Calories: 165, Protein: 31, Fat: 3.6, ServingWeightGrams: 120},
		{Name: "Brown Rice", Calories: 112, Protein: 2.6, Carbs: 23, Fat: 0.9},
	}
	require.NoError(t, repo.ReplaceAll(ctx, records))

	t.Run("count and find all", func(t *testing.T) {
		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("search is case insensitive", func(t *testing.T) {
		found, err := repo.Search(ctx, "chicken", 10)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Chicken Breast", found[0].Name)
		assert.Equal(t, 120.0, found[0].ServingWeightGrams)
	})

	t.Run("replace drops stale rows", func(t *testing.T) {
		require.NoError(t, repo.ReplaceAll(ctx, []catalog.FoodRecord{
			{Name: "Oats", Calories: 389, Protein: 16.9, Carbs: 66, Fat: 6.9},
		}))

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		found, err := repo.Search(ctx, "apple", 10)
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestFoodLogRepository(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewFoodLogRepository(db)

	u := newTestUser(t, "jane@example.com")
	require.NoError(t, NewUserRepository(db).Create(ctx, u))

	fiber := 2.4
	base := time.Date(2024, 5, 6, 12, 0, 0, 0, time.UTC)
	entry := &insights.FoodLog{
		ID:       uuid.New(),
		UserID:   u.ID(),
		FoodName: "Apple",
		MealType: "snack",
		Calories: 52,
		Protein:  0.3,
		Carbs:    14,
		Fat:      0.2,
		Fiber:    &fiber,
		Servings: 1,
		LoggedAt: base,
	}
	require.NoError(t, repo.Create(ctx, entry))

	later := &insights.FoodLog{
		ID:       uuid.New(),
		UserID:   u.ID(),
		FoodName: "Salmon",
		MealType: "dinner",
		Calories: 208,
		Protein:  20,
		Fat:      12,
		Servings: 1.5,
		LoggedAt: base.AddDate(0, 0, 1),
	}
	require.NoError(t, repo.Create(ctx, later))

	t.Run("find by id keeps optional fields", func(t *testing.T) {
		found, err := repo.FindByID(ctx, entry.ID)
		require.NoError(t, err)
		require.NotNil(t, found.Fiber)
		assert.Equal(t, 2.4, *found.Fiber)
		assert.Nil(t, found.Sugar)
	})

	t.Run("find by user orders newest first", func(t *testing.T) {
		logs, err := repo.FindByUser(ctx, u.ID(), base.AddDate(0, 0, -1), base.AddDate(0, 0, 2))
		require.NoError(t, err)
		require.Len(t, logs, 2)
		assert.Equal(t, "Salmon", logs[0].FoodName)
		assert.Equal(t, "Apple", logs[1].FoodName)
	})

	t.Run("date range excludes outside entries", func(t *testing.T) {
		logs, err := repo.FindByUser(ctx, u.ID(), base.Add(time.Hour), base.AddDate(0, 0, 2))
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, "Salmon", logs[0].FoodName)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, entry.ID))
		_, err := repo.FindByID(ctx, entry.ID)
		assert.ErrorIs(t, err, ErrFoodLogNotFound)

		assert.ErrorIs(t, repo.Delete(ctx, entry.ID), ErrFoodLogNotFound)
	})
}

func TestMealPlanRepository(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewMealPlanRepository(db)

	u := newTestUser(t, "jane@example.com")
	require.NoError(t, NewUserRepository(db).Create(ctx, u))

	week := &mealplan.WeekPlan{
		Days: []mealplan.DayPlan{
			{
				Day: "monday",
				Meals: []mealplan.MealEntry{
					{
						Type:        mealplan.MealBreakfast,
						Name:        "Oatmeal",
						Calories:    420,
						Protein:     14.2,
						Carbs:       72.1,
						Fat:         8.4,
						Servings:    2.66,
						ServingSize: "1 serving",
						RecipeLink:  "https://example.com/recipes/oatmeal",
					},
				},
				TotalCalories: 420,
				TotalProtein:  14.2,
				TotalCarbs:    72.1,
				TotalFat:      8.4,
			},
		},
	}

	start := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	record := &mealplan.PlanRecord{
		ID:        uuid.New(),
		UserID:    u.ID(),
		Name:      "June week one",
		Week:      week,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 6),
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, record))

	t.Run("plan data round trip", func(t *testing.T) {
		found, err := repo.FindByID(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, "June week one", found.Name)
		require.NotNil(t, found.Week)
		require.Len(t, found.Week.Days, 1)
		assert.Equal(t, week.Days[0], found.Week.Days[0])
	})

	t.Run("find by user", func(t *testing.T) {
		plans, err := repo.FindByUser(ctx, u.ID(), 10)
		require.NoError(t, err)
		require.Len(t, plans, 1)
		assert.Equal(t, record.ID, plans[0].ID)
	})

	t.Run("delete hides the plan", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, record.ID))

		_, err := repo.FindByID(ctx, record.ID)
		assert.ErrorIs(t, err, mealplan.ErrPlanNotFound)

		plans, err := repo.FindByUser(ctx, u.ID(), 10)
		require.NoError(t, err)
		assert.Empty(t, plans)
	})
}
