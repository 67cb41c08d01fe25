package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nutriai/backend/config"
	"github.com/nutriai/backend/internal/models"
	"github.com/nutriai/backend/internal/service"
	"github.com/nutriai/backend/internal/testhelpers"
)

// fakeProvider answers like a chat completions endpoint with the given content
func fakeProvider(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := json.Marshal(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": content}},
			},
		})
		require.NoError(t, err)
		w.Write(body)
	}))
}

const providerContent = `[
	{"name": "Bean Stew", "description": "Hearty.", "ingredients": ["beans", "salt"], "instructions": "Simmer.", "nutrition_benefits": "Protein.", "servings": 4, "prep_time": "40 minutes"},
	{"name": "Rice Bowl", "description": "Simple.", "ingredients": ["rice"], "instructions": "Boil.", "nutrition_benefits": "Energy.", "servings": 3, "prep_time": "25 minutes"},
	{"name": "Kale Salad", "description": "Fresh.", "ingredients": ["kale", "oil"], "instructions": "Toss.", "nutrition_benefits": "Vitamins.", "servings": 2, "prep_time": "10 minutes"}
]`

func setupRecipeTestRouter(t *testing.T, llmURL string) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDB(t)
	cfg := &config.Config{
		LLMAPIKey:  "test-key",
		LLMAPIURL:  llmURL,
		LLMModel:   "test-model",
		LLMTimeout: time.Second,
	}

	handler := NewRecipeHandler(
		service.NewLLMService(cfg),
		service.NewRecipeService(db),
		service.NewUserService(db),
		service.NewAnalyticsService(db),
	)

	router := gin.New()
	handler.RegisterRoutes(router.Group("/api"))
	return router, db
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGenerateRecipesMissingIngredients(t *testing.T) {
	router, _ := setupRecipeTestRouter(t, "http://127.0.0.1:1")

	w := postJSON(t, router, "/api/recipes/generate", map[string]interface{}{
		"user_id": "user-1",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
	assert.NotEmpty(t, response["error"])
}

func TestGenerateRecipesSuccess(t *testing.T) {
	provider := fakeProvider(t, providerContent)
	defer provider.Close()
	router, db := setupRecipeTestRouter(t, provider.URL)

	w := postJSON(t, router, "/api/recipes/generate", map[string]interface{}{
		"ingredients": []string{"beans", "rice", "kale"},
		"user_id":     "user-1",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	var response struct {
		Success bool                      `json:"success"`
		Recipes []service.GeneratedRecipe `json:"recipes"`
		Message string                    `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	require.Len(t, response.Recipes, 3)
	assert.Equal(t, "Generated 3 recipes successfully", response.Message)

	// User was lazily created
	var user models.User
	require.NoError(t, db.First(&user, "id = ?", "user-1").Error)

	// Recipes were persisted
	var recipeCount int64
	require.NoError(t, db.Model(&models.Recipe{}).Count(&recipeCount).Error)
	assert.Equal(t, int64(3), recipeCount)

	// Generation event was recorded
	var event models.UserAnalytics
	require.NoError(t, db.First(&event, "action = ?", "recipes_generated").Error)
	assert.Equal(t, "user-1", event.UserID)
	assert.JSONEq(t, `{"ingredients_count": 3, "dietary_needs": "", "recipes_count": 3}`, event.Data)
}

func TestGenerateRecipesProviderDownStillSucceeds(t *testing.T) {
	router, _ := setupRecipeTestRouter(t, "http://127.0.0.1:1")

	w := postJSON(t, router, "/api/recipes/generate", map[string]interface{}{
		"ingredients":   []string{"beans", "kale", "rice", "eggs"},
		"dietary_needs": "children",
		"user_id":       "user-2",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	var response struct {
		Success bool                      `json:"success"`
		Recipes []service.GeneratedRecipe `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	require.Len(t, response.Recipes, 3)
	assert.Equal(t, []string{"beans", "kale", "rice", "salt", "oil", "water"}, response.Recipes[0].UsedIngredients)
	assert.Contains(t, response.Recipes[0].NutritionBenefits, "growing children")
}

func TestGenerateRecipesWithoutUserID(t *testing.T) {
	provider := fakeProvider(t, providerContent)
	defer provider.Close()
	router, db := setupRecipeTestRouter(t, provider.URL)

	w := postJSON(t, router, "/api/recipes/generate", map[string]interface{}{
		"ingredients": []string{"beans"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	assert.Equal(t, int64(0), userCount)
}

func TestSaveRecipeValidation(t *testing.T) {
	router, _ := setupRecipeTestRouter(t, "http://127.0.0.1:1")

	w := postJSON(t, router, "/api/recipes/save", map[string]interface{}{
		"user_id": "user-3",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, router, "/api/recipes/save", map[string]interface{}{
		"recipe": map[string]interface{}{"id": "recipe_1_abc"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaveRecipeTwiceKeepsOneRow(t *testing.T) {
	provider := fakeProvider(t, providerContent)
	defer provider.Close()
	router, db := setupRecipeTestRouter(t, provider.URL)

	w := postJSON(t, router, "/api/recipes/generate", map[string]interface{}{
		"ingredients": []string{"beans"},
		"user_id":     "user-4",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var genResponse struct {
		Recipes []service.GeneratedRecipe `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &genResponse))
	recipeID := genResponse.Recipes[0].ID

	save := map[string]interface{}{
		"recipe":  map[string]interface{}{"id": recipeID},
		"user_id": "user-4",
	}
	for i := 0; i < 2; i++ {
		w = postJSON(t, router, "/api/recipes/save", save)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	var count int64
	require.NoError(t, db.Model(&models.SavedRecipe{}).
		Where("user_id = ? AND recipe_id = ?", "user-4", recipeID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetUserRecipesRoundTrip(t *testing.T) {
	provider := fakeProvider(t, providerContent)
	defer provider.Close()
	router, _ := setupRecipeTestRouter(t, provider.URL)

	w := postJSON(t, router, "/api/recipes/generate", map[string]interface{}{
		"ingredients": []string{"beans", "rice"},
		"user_id":     "user-5",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var genResponse struct {
		Recipes []service.GeneratedRecipe `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &genResponse))

	w = postJSON(t, router, "/api/recipes/save", map[string]interface{}{
		"recipe":  map[string]interface{}{"id": genResponse.Recipes[0].ID},
		"user_id": "user-5",
	})
	require.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest("GET", "/api/recipes/user/user-5", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var listResponse struct {
		Success bool `json:"success"`
		Recipes []struct {
			ID          string   `json:"id"`
			Name        string   `json:"name"`
			Ingredients []string `json:"ingredients"`
			SavedAt     string   `json:"saved_at"`
		} `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResponse))
	assert.True(t, listResponse.Success)
	require.Len(t, listResponse.Recipes, 1)
	assert.Equal(t, genResponse.Recipes[0].ID, listResponse.Recipes[0].ID)
	assert.Equal(t, genResponse.Recipes[0].UsedIngredients, listResponse.Recipes[0].Ingredients)
	assert.NotEmpty(t, listResponse.Recipes[0].SavedAt)
}

func TestGenerateRecipesStorageFailure(t *testing.T) {
	router, db := setupRecipeTestRouter(t, "http://127.0.0.1:1")
	require.NoError(t, db.Migrator().DropTable(&models.Recipe{}))

	w := postJSON(t, router, "/api/recipes/generate", map[string]interface{}{
		"ingredients": []string{"beans", "rice"},
		"user_id":     "user-6",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
	// Generic message only, no storage detail
	assert.Equal(t, "Failed to store recipes", response["error"])
}

func TestSaveRecipeStorageFailure(t *testing.T) {
	router, db := setupRecipeTestRouter(t, "http://127.0.0.1:1")
	require.NoError(t, db.Migrator().DropTable(&models.SavedRecipe{}))

	w := postJSON(t, router, "/api/recipes/save", map[string]interface{}{
		"recipe":  map[string]interface{}{"id": "recipe_1_abc"},
		"user_id": "user-7",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Failed to save recipe", response["error"])
}

func TestGetUserRecipesEmptyList(t *testing.T) {
	router, _ := setupRecipeTestRouter(t, "http://127.0.0.1:1")

	req := httptest.NewRequest("GET", "/api/recipes/user/nobody", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response struct {
		Success bool          `json:"success"`
		Recipes []interface{} `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Empty(t, response.Recipes)
}
