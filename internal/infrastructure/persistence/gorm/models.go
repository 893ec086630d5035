// Package gorm provides GORM model definitions for the application
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel represents the GORM model for users
type UserModel struct {
	ID           uuid.UUID    `gorm:"type:char(36);primaryKey"`
	Email        string       `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName     string       `gorm:"type:varchar(255);not null"`
	PasswordHash string       `gorm:"type:varchar(255);not null"`
	IsActive     bool         `gorm:"default:true"`
	Profile      ProfileModel `gorm:"embedded;embeddedPrefix:profile_"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastLoginAt  *time.Time

	// Relationships
	FoodLogs  []FoodLogModel  `gorm:"foreignKey:UserID"`
	MealPlans []MealPlanModel `gorm:"foreignKey:UserID"`
}

// TableName overrides the table name
func (UserModel) TableName() string {
	return "users"
}

// ProfileModel represents the embedded nutrition profile
type ProfileModel struct {
	WeightKG           float64 `gorm:"default:0"`
	HeightCM           float64 `gorm:"default:0"`
	Age                int     `gorm:"default:0"`
	Gender             string  `gorm:"type:varchar(20)"`
	ActivityLevel      string  `gorm:"type:varchar(30)"`
	Goals              string  `gorm:"type:varchar(100)"`
	DietaryPreferences string  `gorm:"type:varchar(255)"`
}

// FoodItemModel represents the GORM model for catalog foods
type FoodItemModel struct {
	ID                 uint    `gorm:"primaryKey;autoIncrement"`
	Name               string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	Category           string  `gorm:"type:varchar(100);index"`
	Calories           float64 `gorm:"not null"`
	Protein            float64 `gorm:"default:0"`
	Carbs              float64 `gorm:"default:0"`
	Fat                float64 `gorm:"default:0"`
	Fiber              float64 `gorm:"default:0"`
	Sugar              float64 `gorm:"default:0"`
	ServingWeightGrams float64 `gorm:"default:0"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName overrides the table name
func (FoodItemModel) TableName() string {
	return "food_items"
}

// FoodLogModel represents the GORM model for food log entries
type FoodLogModel struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID      uuid.UUID `gorm:"type:char(36);not null;index"`
	FoodName    string    `gorm:"type:varchar(255);not null"`
	MealType    string    `gorm:"type:varchar(50);index"`
	Calories    float64   `gorm:"not null"`
	Protein     float64   `gorm:"default:0"`
	Carbs       float64   `gorm:"default:0"`
	Fat         float64   `gorm:"default:0"`
	Fiber       *float64
	Sugar       *float64
	ServingSize string    `gorm:"type:varchar(100)"`
	Servings    float64   `gorm:"default:1"`
	LoggedAt    time.Time `gorm:"index"`
	CreatedAt   time.Time

	// Relationships
	User UserModel `gorm:"foreignKey:UserID"`
}

// TableName overrides the table name
func (FoodLogModel) TableName() string {
	return "food_logs"
}

// MealPlanModel represents the GORM model for stored meal plans
type MealPlanModel struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `gorm:"type:char(36);not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	PlanData  JSONField `gorm:"type:json"`
	StartDate time.Time
	EndDate   time.Time
	IsActive  bool      `gorm:"default:true;index"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	// Relationships
	User UserModel `gorm:"foreignKey:UserID"`
}

// TableName overrides the table name
func (MealPlanModel) TableName() string {
	return "meal_plans"
}

// JSONField custom type for handling JSON fields
type JSONField map[string]interface{}

// Scan implements the sql.Scanner interface
func (j *JSONField) Scan(value interface{}) error {
	if value == nil {
		*j = JSONField{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	default:
		return fmt.Errorf("cannot scan %T into JSONField", value)
	}
}

// Value implements the driver.Valuer interface
func (j JSONField) Value() (driver.Value, error) {
	if len(j) == 0 {
		return "{}", nil
	}
	return json.Marshal(j)
}

// BeforeCreate hook for UserModel
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for FoodLogModel
func (f *FoodLogModel) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for MealPlanModel
func (m *MealPlanModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
