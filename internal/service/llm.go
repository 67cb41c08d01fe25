package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nutriai/backend/config"
)

// GeneratedRecipe is a recipe produced by the generation provider or by the
// static fallback. All descriptive fields are always populated and the ID is
// unique across calls.
type GeneratedRecipe struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Ingredients       []string `json:"ingredients"`
	Instructions      string   `json:"instructions"`
	NutritionBenefits string   `json:"nutrition_benefits"`
	Servings          int      `json:"servings"`
	PrepTime          string   `json:"prep_time"`
	UsedIngredients   []string `json:"usedIngredients"`
}

// recipeData is the strict shape expected from the provider. Anything that
// does not unmarshal into it is treated as a generation failure.
type recipeData struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Ingredients       []string `json:"ingredients"`
	Instructions      string   `json:"instructions"`
	NutritionBenefits string   `json:"nutrition_benefits"`
	Servings          int      `json:"servings"`
	PrepTime          string   `json:"prep_time"`
}

// LLMService calls an OpenAI-compatible chat completions endpoint to turn an
// ingredient list into recipe suggestions.
type LLMService struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
}

// NewLLMService creates a new LLMService instance
func NewLLMService(cfg *config.Config) *LLMService {
	return &LLMService{
		apiKey: cfg.LLMAPIKey,
		apiURL: cfg.LLMAPIURL,
		model:  cfg.LLMModel,
		client: &http.Client{Timeout: cfg.LLMTimeout},
	}
}

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request represents a chat completions request
type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

const systemPrompt = "You are a nutrition expert helping communities with limited resources create healthy, affordable meals."

// GenerateRecipes produces recipe suggestions for the given ingredients.
// It never fails: any provider error, timeout or unparseable response falls
// back to the static templates, so callers always get populated recipes.
func (s *LLMService) GenerateRecipes(ctx context.Context, ingredients []string, dietaryNeeds string) []GeneratedRecipe {
	parsed, err := s.callProvider(ctx, ingredients, dietaryNeeds)
	if err != nil {
		log.Printf("Recipe generation failed, using fallback templates: %v", err)
		return FallbackRecipes(ingredients, dietaryNeeds)
	}

	recipes := make([]GeneratedRecipe, 0, len(parsed))
	for _, data := range parsed {
		recipe := GeneratedRecipe{
			ID:                NewRecipeID(),
			Name:              data.Name,
			Description:       data.Description,
			Ingredients:       data.Ingredients,
			Instructions:      data.Instructions,
			NutritionBenefits: data.NutritionBenefits,
			Servings:          data.Servings,
			PrepTime:          data.PrepTime,
			UsedIngredients:   data.Ingredients,
		}
		if len(recipe.UsedIngredients) == 0 {
			recipe.UsedIngredients = ingredients
		}
		if recipe.Servings == 0 {
			recipe.Servings = 4
		}
		if recipe.PrepTime == "" {
			recipe.PrepTime = "30 minutes"
		}
		recipes = append(recipes, recipe)
	}
	return recipes
}

// callProvider submits the generation request and parses the response into
// the strict recipe shape.
func (s *LLMService) callProvider(ctx context.Context, ingredients []string, dietaryNeeds string) ([]recipeData, error) {
	prompt := s.buildPrompt(ingredients, dietaryNeeds)

	reqBody := Request{
		Model: s.model,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   1500,
		Temperature: 0.7,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status %d", resp.StatusCode)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("no response from API")
	}

	return parseRecipeList(result.Choices[0].Message.Content)
}

// parseRecipeList decodes the provider content as a recipe list. A bare JSON
// array is the documented shape; a {"recipes": [...]} wrapper is accepted
// because some models insist on a top-level object.
func parseRecipeList(content string) ([]recipeData, error) {
	content = strings.TrimSpace(content)

	var recipes []recipeData
	if err := json.Unmarshal([]byte(content), &recipes); err != nil {
		var wrapper struct {
			Recipes []recipeData `json:"recipes"`
		}
		if wrapErr := json.Unmarshal([]byte(content), &wrapper); wrapErr != nil || wrapper.Recipes == nil {
			return nil, fmt.Errorf("failed to parse recipe list: %w", err)
		}
		recipes = wrapper.Recipes
	}

	if len(recipes) == 0 {
		return nil, fmt.Errorf("provider returned no recipes")
	}
	for _, r := range recipes {
		if r.Name == "" {
			return nil, fmt.Errorf("provider returned a recipe without a name")
		}
	}
	return recipes, nil
}

// buildPrompt describes the ingredient constraints and desired output shape
func (s *LLMService) buildPrompt(ingredients []string, dietaryNeeds string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate 3 healthy, simple recipes using these available ingredients: %s.\n\n", strings.Join(ingredients, ", "))
	b.WriteString("Requirements:\n")
	b.WriteString("- Use only the provided ingredients plus basic seasonings (salt, oil, water)\n")
	b.WriteString("- Focus on nutritious, affordable meals for communities with limited resources\n")
	b.WriteString("- Include preparation instructions that are easy to follow\n")
	b.WriteString("- Provide nutrition benefits for each recipe\n")
	if dietaryNeeds != "" {
		fmt.Fprintf(&b, "- Make recipes suitable for %s\n", dietaryNeeds)
	}
	b.WriteString("\nReturn as a JSON array of objects with this structure:\n")
	b.WriteString(`{
    "name": "Recipe Name",
    "description": "Brief description",
    "ingredients": ["ingredient1", "ingredient2"],
    "instructions": "Step by step instructions",
    "nutrition_benefits": "Health benefits explanation",
    "servings": 4,
    "prep_time": "30 minutes"
}`)
	return b.String()
}

// NewRecipeID returns a fresh recipe identifier. The unix-time prefix keeps
// ids roughly ordered while the uuid-derived suffix keeps concurrent requests
// from colliding.
func NewRecipeID() string {
	return fmt.Sprintf("recipe_%d_%s", time.Now().Unix(), uuid.NewString()[:8])
}
