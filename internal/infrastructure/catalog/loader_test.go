package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domaincatalog "github.com/nutriplan/v1/internal/domain/catalog"
	"github.com/nutriplan/v1/internal/infrastructure/monitoring"
	"github.com/nutriplan/v1/test/testutils"
)

// Prometheus collectors register globally, so the whole test binary shares
// one metrics instance.
var testMetrics = monitoring.NewMetrics()

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "foods.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newLoader(repo *testutils.MockFoodItemRepository) (*Loader, *domaincatalog.Store) {
	store := domaincatalog.NewStore(domaincatalog.New(nil))
	return NewLoader(store, repo, testMetrics, zap.NewNop()), store
}

func TestLoad_FromCSV(t *testing.T) {
	path := writeCSV(t, `name,calories,protein,carbs,fat,fiber,sugar,serving_weight_grams
Apple,52,0.3,14,0.2,2.4,10.4,182
Chicken Breast,165,31,0,3.6,0,0,120
`)

	repo := new(testutils.MockFoodItemRepository)
	repo.On("ReplaceAll", mock.Anything, mock.AnythingOfType("[]catalog.FoodRecord")).Return(nil)

	loader, store := newLoader(repo)
	require.NoError(t, loader.Load(context.Background(), path))

	snapshot := store.Snapshot()
	require.Equal(t, 2, snapshot.Len())

	apple, ok := snapshot.Lookup("Apple")
	require.True(t, ok)
	assert.Equal(t, 52.0, apple.Calories)
	assert.Equal(t, 0.3, apple.Protein)
	assert.Equal(t, 182.0, apple.ServingWeightGrams)
	repo.AssertExpectations(t)
}

func TestLoad_HeaderVariants(t *testing.T) {
	path := writeCSV(t, `food_name,energy_kcal,proteins,carbohydrates,fats,fibre,sugars
Banana,89,1.1,23,0.3,2.6,12
`)

	repo := new(testutils.MockFoodItemRepository)
	repo.On("ReplaceAll", mock.Anything, mock.AnythingOfType("[]catalog.FoodRecord")).Return(nil)

	loader, store := newLoader(repo)
	require.NoError(t, loader.Load(context.Background(), path))

	banana, ok := store.Snapshot().Lookup("Banana")
	require.True(t, ok)
	assert.Equal(t, 89.0, banana.Calories)
	assert.Equal(t, 1.1, banana.Protein)
	assert.Equal(t, 23.0, banana.Carbs)
	assert.Equal(t, 2.6, banana.Fiber)
	assert.Equal(t, 12.0, banana.Sugar)
}

func TestLoad_SkipsBlankNamesAndBadNumbers(t *testing.T) {
	path := writeCSV(t, `name,calories,protein
Oats,389,16.9
,100,1
Tofu,not-a-number,8
`)

	repo := new(testutils.MockFoodItemRepository)
	repo.On("ReplaceAll", mock.Anything, mock.AnythingOfType("[]catalog.FoodRecord")).Return(nil)

	loader, store := newLoader(repo)
	require.NoError(t, loader.Load(context.Background(), path))

	snapshot := store.Snapshot()
	assert.Equal(t, 2, snapshot.Len())

	tofu, ok := snapshot.Lookup("Tofu")
	require.True(t, ok)
	assert.Zero(t, tofu.Calories)
}

func TestLoad_SkipsRowsShorterThanNameColumn(t *testing.T) {
	path := writeCSV(t, `calories,name,protein
55
165,Chicken Breast,31
`)

	repo := new(testutils.MockFoodItemRepository)
	repo.On("ReplaceAll", mock.Anything, mock.AnythingOfType("[]catalog.FoodRecord")).Return(nil)

	loader, store := newLoader(repo)
	require.NoError(t, loader.Load(context.Background(), path))

	snapshot := store.Snapshot()
	assert.Equal(t, 1, snapshot.Len())

	_, ok := snapshot.Lookup("Chicken Breast")
	assert.True(t, ok)
}

func TestLoad_MissingRequiredColumn(t *testing.T) {
	path := writeCSV(t, `name,protein
Apple,0.3
`)

	repo := new(testutils.MockFoodItemRepository)
	loader, _ := newLoader(repo)

	err := loader.Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "calories")
}

func TestLoad_MissingFileFallsBackToDatabase(t *testing.T) {
	stored := []domaincatalog.FoodRecord{
		{Name: "Lentils", Calories: 116, Protein: 9, Carbs: 20, Fat: 0.4},
	}

	repo := new(testutils.MockFoodItemRepository)
	repo.On("FindAll", mock.Anything).Return(stored, nil)
	repo.On("ReplaceAll", mock.Anything, stored).Return(nil)

	loader, store := newLoader(repo)
	missing := filepath.Join(t.TempDir(), "nope.csv")
	require.NoError(t, loader.Load(context.Background(), missing))

	_, ok := store.Snapshot().Lookup("Lentils")
	assert.True(t, ok)
}

func TestLoad_FallsBackToBuiltinSamples(t *testing.T) {
	repo := new(testutils.MockFoodItemRepository)
	repo.On("FindAll", mock.Anything).Return([]domaincatalog.FoodRecord{}, nil)
	repo.On("ReplaceAll", mock.Anything, mock.AnythingOfType("[]catalog.FoodRecord")).Return(nil)

	loader, store := newLoader(repo)
	require.NoError(t, loader.Load(context.Background(), ""))

	snapshot := store.Snapshot()
	assert.Equal(t, len(sampleRecords), snapshot.Len())

	_, ok := snapshot.Lookup("Chicken Breast")
	assert.True(t, ok)
}

func TestLoad_DatabaseSyncFailureIsNonFatal(t *testing.T) {
	repo := new(testutils.MockFoodItemRepository)
	repo.On("FindAll", mock.Anything).Return(nil, assert.AnError)
	repo.On("ReplaceAll", mock.Anything, mock.AnythingOfType("[]catalog.FoodRecord")).Return(assert.AnError)

	loader, store := newLoader(repo)
	require.NoError(t, loader.Load(context.Background(), ""))

	assert.Equal(t, len(sampleRecords), store.Snapshot().Len())
}
