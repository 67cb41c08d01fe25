package service

// NutritionAnalysis is the result of scoring an ingredient list against the
// fixed food-category sets.
type NutritionAnalysis struct {
	TotalIngredients int      `json:"total_ingredients"`
	ProteinSources   int      `json:"protein_sources"`
	VegetableCount   int      `json:"vegetable_count"`
	GrainSources     int      `json:"grain_sources"`
	NutritionalScore int      `json:"nutritional_score"`
	Recommendations  []string `json:"recommendations"`
}

var (
	proteinSet = map[string]bool{
		"chicken": true, "fish": true, "beans": true, "lentils": true, "eggs": true,
	}
	vegetableSet = map[string]bool{
		"tomatoes": true, "kale": true, "cabbage": true, "carrots": true, "spinach": true,
	}
	grainSet = map[string]bool{
		"rice": true, "maize": true, "wheat": true, "millet": true,
	}
)

// AnalyzeIngredients scores an ingredient list. Deterministic, no side
// effects: 30 points for any protein, 40 for two or more vegetables, 20 for
// any grain and 10 for five or more ingredients overall.
func AnalyzeIngredients(ingredients []string) NutritionAnalysis {
	analysis := NutritionAnalysis{
		TotalIngredients: len(ingredients),
		Recommendations:  []string{},
	}

	for _, ingredient := range ingredients {
		if proteinSet[ingredient] {
			analysis.ProteinSources++
		}
		if vegetableSet[ingredient] {
			analysis.VegetableCount++
		}
		if grainSet[ingredient] {
			analysis.GrainSources++
		}
	}

	if analysis.ProteinSources > 0 {
		analysis.NutritionalScore += 30
	}
	if analysis.VegetableCount >= 2 {
		analysis.NutritionalScore += 40
	}
	if analysis.GrainSources > 0 {
		analysis.NutritionalScore += 20
	}
	if analysis.TotalIngredients >= 5 {
		analysis.NutritionalScore += 10
	}

	if analysis.ProteinSources == 0 {
		analysis.Recommendations = append(analysis.Recommendations, "Add a protein source like beans, lentils, or eggs")
	}
	if analysis.VegetableCount < 2 {
		analysis.Recommendations = append(analysis.Recommendations, "Include more vegetables for vitamins and minerals")
	}
	if analysis.GrainSources == 0 {
		analysis.Recommendations = append(analysis.Recommendations, "Add a grain like rice or maize for energy")
	}

	return analysis
}
