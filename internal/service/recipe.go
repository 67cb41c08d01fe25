package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nutriai/backend/internal/models"
)

// SavedRecipeView is a stored recipe together with the moment the user saved it
type SavedRecipeView struct {
	models.Recipe
	SavedAt time.Time `json:"saved_at"`
}

// RecipeService owns recipe persistence: storing generated batches and the
// per-user saved list.
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// StoreGenerated persists a generated batch as a single unit of work.
// Inserts are insert-if-absent: a recipe id that already exists keeps its
// stored row untouched (first write wins). Any failure rolls back the whole
// batch.
func (s *RecipeService) StoreGenerated(ctx context.Context, generated []GeneratedRecipe, dietaryTags []string) error {
	tags := models.JSONStringArray{}
	if len(dietaryTags) > 0 {
		tags = models.JSONStringArray(dietaryTags)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, gen := range generated {
			recipe := models.Recipe{
				ID:                gen.ID,
				Name:              gen.Name,
				Description:       gen.Description,
				Ingredients:       models.JSONStringArray(gen.UsedIngredients),
				Instructions:      gen.Instructions,
				NutritionBenefits: gen.NutritionBenefits,
				Servings:          gen.Servings,
				PrepTime:          gen.PrepTime,
				DietaryTags:       tags,
				CreatedAt:         time.Now().UTC(),
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&recipe).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store generated recipes: %w", err)
	}
	return nil
}

// SaveForUser links a recipe to a user unless the link already exists.
// Returns whether a new link was created. The check and the insert are not
// atomic, so racing saves of the same pair can still both insert.
func (s *RecipeService) SaveForUser(ctx context.Context, userID, recipeID string) (bool, error) {
	var existing models.SavedRecipe
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, fmt.Errorf("failed to check saved recipe: %w", err)
	}

	saved := models.SavedRecipe{
		UserID:   userID,
		RecipeID: recipeID,
		SavedAt:  time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&saved).Error; err != nil {
		return false, fmt.Errorf("failed to save recipe: %w", err)
	}
	return true, nil
}

// ListSavedByUser returns the user's saved recipes with their stored fields
// and save timestamps.
func (s *RecipeService) ListSavedByUser(ctx context.Context, userID string) ([]SavedRecipeView, error) {
	var saved []models.SavedRecipe
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("saved_at").
		Find(&saved).Error; err != nil {
		return nil, fmt.Errorf("failed to list saved recipes: %w", err)
	}

	if len(saved) == 0 {
		return []SavedRecipeView{}, nil
	}

	ids := make([]string, 0, len(saved))
	for _, sr := range saved {
		ids = append(ids, sr.RecipeID)
	}

	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to load saved recipes: %w", err)
	}
	byID := make(map[string]models.Recipe, len(recipes))
	for _, r := range recipes {
		byID[r.ID] = r
	}

	views := make([]SavedRecipeView, 0, len(saved))
	for _, sr := range saved {
		recipe, ok := byID[sr.RecipeID]
		if !ok {
			continue
		}
		views = append(views, SavedRecipeView{Recipe: recipe, SavedAt: sr.SavedAt})
	}
	return views, nil
}
