package service

// fallbackTemplates are served whenever the generation provider is
// unavailable or returns unusable output.
var fallbackTemplates = []GeneratedRecipe{
	{
		Name:              "Nutritious Protein Stew",
		Description:       "A hearty, protein-rich stew perfect for building strength.",
		Instructions:      "1. Heat oil and sauté onions. 2. Add protein and brown. 3. Add vegetables and water. 4. Simmer 30-45 minutes. 5. Season and serve.",
		NutritionBenefits: "High in protein and vitamins for immune support.",
		Servings:          4,
		PrepTime:          "45 minutes",
	},
	{
		Name:              "Simple Grain Bowl",
		Description:       "Complete protein combination that's filling and nutritious.",
		Instructions:      "1. Cook grains in salted water. 2. Cook legumes separately. 3. Combine and add oil. 4. Serve with vegetables.",
		NutritionBenefits: "Complete amino acids and high fiber content.",
		Servings:          3,
		PrepTime:          "30 minutes",
	},
	{
		Name:              "Fresh Vegetable Mix",
		Description:       "Light, nutrient-dense meal perfect for any time.",
		Instructions:      "1. Wash and chop vegetables. 2. Mix with available proteins. 3. Add lemon and oil. 4. Let marinate and serve.",
		NutritionBenefits: "Rich in vitamins and antioxidants.",
		Servings:          2,
		PrepTime:          "15 minutes",
	},
}

var fallbackStaples = []string{"salt", "oil", "water"}

// FallbackRecipes returns the 3 static recipe templates with fresh ids.
// Used ingredients are the first 3 supplied ingredients plus the staples.
// The "children" dietary label gets a child-specific clause appended to the
// benefits and instructions of every template.
func FallbackRecipes(ingredients []string, dietaryNeeds string) []GeneratedRecipe {
	used := ingredients
	if len(used) > 3 {
		used = used[:3]
	}
	used = append(append([]string{}, used...), fallbackStaples...)

	recipes := make([]GeneratedRecipe, 0, len(fallbackTemplates))
	for _, template := range fallbackTemplates {
		recipe := template
		recipe.ID = NewRecipeID()
		recipe.UsedIngredients = used
		recipe.Ingredients = used

		if dietaryNeeds == "children" {
			recipe.NutritionBenefits += " Specially formulated for growing children."
			recipe.Instructions += " Cut into child-friendly pieces."
		}

		recipes = append(recipes, recipe)
	}
	return recipes
}
