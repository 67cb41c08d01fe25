package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// JSONStringArray stores a string slice as a JSON text column so that
// ingredient lists and dietary tags round-trip losslessly through the
// database.
type JSONStringArray []string

// Value implements the driver.Valuer interface
func (a JSONStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for JSONStringArray", value)
	}

	return json.Unmarshal(bytes, a)
}

// Recipe is an AI-generated (or fallback) recipe. Recipes are immutable once
// stored: inserts use insert-if-absent semantics, so the first write for a
// given id wins and later generations never overwrite it.
type Recipe struct {
	ID                string          `gorm:"size:50;primaryKey" json:"id"`
	Name              string          `gorm:"size:200;not null" json:"name"`
	Description       string          `gorm:"type:text" json:"description"`
	Ingredients       JSONStringArray `gorm:"type:text" json:"ingredients"`
	Instructions      string          `gorm:"type:text" json:"instructions"`
	NutritionBenefits string          `gorm:"type:text" json:"nutrition_benefits"`
	Servings          int             `json:"servings"`
	PrepTime          string          `gorm:"size:50" json:"prep_time"`
	DietaryTags       JSONStringArray `gorm:"type:text" json:"dietary_tags"`
	CreatedAt         time.Time       `json:"created_at"`
	PopularityScore   float64         `gorm:"default:0" json:"popularity_score"`
}

// SavedRecipe links a user to a recipe they kept. Uniqueness of the
// (user, recipe) pair is enforced by a pre-check in the service layer, not a
// database constraint; concurrent saves of the same pair can still produce
// duplicates.
type SavedRecipe struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID   string    `gorm:"size:50;not null;index" json:"user_id"`
	RecipeID string    `gorm:"size:50;not null" json:"recipe_id"`
	SavedAt  time.Time `json:"saved_at"`
}
