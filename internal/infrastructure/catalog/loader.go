// Package catalog loads the food reference data that meal planning
// and food search draw from.
package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	domaincatalog "github.com/nutriplan/v1/internal/domain/catalog"
	"github.com/nutriplan/v1/internal/infrastructure/monitoring"
	"github.com/nutriplan/v1/internal/ports/outbound"
)

// sampleRecords seeds the catalog when no CSV file and no stored data exist.
var sampleRecords = []domaincatalog.FoodRecord{
	{Name: "Apple", Calories: 52, Protein: 0.3, Carbs: 14, Fat: 0.2},
	{Name: "Banana", Calories: 89, Protein: 1.1, Carbs: 23, Fat: 0.3},
	{Name: "Chicken Breast", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6},
	{Name: "Salmon", Calories: 208, Protein: 20, Carbs: 0, Fat: 12},
	{Name: "Brown Rice", Calories: 112, Protein: 2.6, Carbs: 23, Fat: 0.9},
}

// Loader populates the in-memory catalog snapshot and keeps the
// database copy of the reference data in sync.
type Loader struct {
	store   *domaincatalog.Store
	repo    outbound.FoodItemRepository
	metrics *monitoring.Metrics
	logger  *zap.Logger
}

// NewLoader creates a new catalog loader
func NewLoader(
	store *domaincatalog.Store,
	repo outbound.FoodItemRepository,
	metrics *monitoring.Metrics,
	logger *zap.Logger,
) *Loader {
	return &Loader{
		store:   store,
		repo:    repo,
		metrics: metrics,
		logger:  logger.Named("catalog-loader"),
	}
}

// Load fills the catalog from the CSV file at path. When path is empty or the
// file is missing it falls back to the stored data, then to built-in samples.
func (l *Loader) Load(ctx context.Context, path string) error {
	records, source, err := l.resolve(ctx, path)
	if err != nil {
		return err
	}

	if err := l.repo.ReplaceAll(ctx, records); err != nil {
		l.logger.Warn("Failed to sync catalog to database", zap.Error(err))
	}

	l.store.Replace(domaincatalog.New(records))
	l.metrics.CatalogSize.Set(float64(len(records)))
	l.logger.Info("Catalog loaded",
		zap.String("source", source),
		zap.Int("foods", len(records)),
	)
	return nil
}

func (l *Loader) resolve(ctx context.Context, path string) ([]domaincatalog.FoodRecord, string, error) {
	if path != "" {
		records, err := loadCSV(path)
		if err == nil {
			return records, path, nil
		}
		if !os.IsNotExist(err) {
			return nil, "", err
		}
		l.logger.Warn("Catalog CSV not found, falling back", zap.String("path", path))
	}

	stored, err := l.repo.FindAll(ctx)
	if err == nil && len(stored) > 0 {
		return stored, "database", nil
	}
	if err != nil {
		l.logger.Warn("Failed to read stored catalog", zap.Error(err))
	}

	return sampleRecords, "builtin", nil
}

// loadCSV parses a nutrition CSV file. The header row names the columns;
// name and calories are required, everything else defaults to zero.
func loadCSV(path string) ([]domaincatalog.FoodRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	nameIdx, ok := columnIndex(columns, "name", "label", "food", "food_name")
	if !ok {
		return nil, fmt.Errorf("csv %s has no name column", path)
	}
	caloriesIdx, ok := columnIndex(columns, "calories", "energy_kcal", "kcal")
	if !ok {
		return nil, fmt.Errorf("csv %s has no calories column", path)
	}

	var records []domaincatalog.FoodRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		if nameIdx >= len(row) {
			continue
		}
		name := strings.TrimSpace(row[nameIdx])
		if name == "" {
			continue
		}

		record := domaincatalog.FoodRecord{
			Name:               name,
			Category:           field(row, columns, "category", "group", "food_group"),
			Calories:           number(row, caloriesIdx),
			Protein:            numberField(row, columns, "protein", "proteins"),
			Carbs:              numberField(row, columns, "carbs", "carbohydrates", "carbohydrate"),
			Fat:                numberField(row, columns, "fat", "fats", "lipids"),
			Fiber:              numberField(row, columns, "fiber", "fibre"),
			Sugar:              numberField(row, columns, "sugar", "sugars"),
			ServingWeightGrams: numberField(row, columns, "serving_weight_grams", "serving_grams", "grams"),
		}
		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("csv %s contains no food rows", path)
	}
	return records, nil
}

func columnIndex(columns map[string]int, names ...string) (int, bool) {
	for _, name := range names {
		if idx, ok := columns[name]; ok {
			return idx, true
		}
	}
	return 0, false
}

func field(row []string, columns map[string]int, names ...string) string {
	idx, ok := columnIndex(columns, names...)
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func number(row []string, idx int) float64 {
	if idx >= len(row) {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
	if err != nil {
		return 0
	}
	return v
}

func numberField(row []string, columns map[string]int, names ...string) float64 {
	idx, ok := columnIndex(columns, names...)
	if !ok {
		return 0
	}
	return number(row, idx)
}
