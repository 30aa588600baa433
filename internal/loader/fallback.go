package loader

import (
	"github.com/ovenworks/bakelab/internal/types"
)

// fallbackRecipes is the built-in recipes document served when the recipes
// resource cannot be fetched or fails validation. It must only reference
// templates from fallbackStepTemplates and ingredients from the built-in
// catalog so it always resolves.
func fallbackRecipes() *types.RecipesDocument {
	return &types.RecipesDocument{
		Recipes: []types.RawRecipeDefinition{
			{
				ID: "basic-cookies",
				Metadata: types.RecipeMetadata{
					Name:         "Basic Cookies",
					Description:  "Simple butter cookies that work every time.",
					BaseServings: 12,
					Difficulty:   "easy",
					BakingTime:   12,
					Icon:         "🍪",
					Tags:         []string{"cookies", "beginner"},
				},
				Steps: []types.RawStepDefinition{
					{
						Template: "combine",
						Params:   map[string]interface{}{"speed": "medium"},
						IngredientGroups: []types.IngredientGroup{
							{
								Name: "dry",
								Ingredients: []types.IngredientAmount{
									{IngredientID: "flour", Amount: 2},
									{IngredientID: "sugar", Amount: 1},
								},
							},
						},
					},
					{
						Template: "bake",
						Params:   map[string]interface{}{"time": 12, "temp": 350},
						Ingredients: []types.IngredientAmount{
							{IngredientID: "butter", Amount: 0.5},
							{IngredientID: "egg", Amount: 1},
						},
					},
				},
			},
		},
	}
}

// fallbackStepTemplates is the built-in step-templates document.
func fallbackStepTemplates() *types.StepTemplatesDocument {
	return &types.StepTemplatesDocument{
		StepTemplates: map[string]types.StepTemplateDefinition{
			"combine": {
				Name: "Combine ingredients",
				Type: "preparation",
				Instructions: []string{
					"Combine {group:dry} in a large bowl",
					"Mix at {speed} speed until smooth",
				},
				DefaultParams: map[string]interface{}{"speed": "low"},
			},
			"bake": {
				Name: "Bake",
				Type: "baking",
				Instructions: []string{
					"Preheat the oven to {temp}°F",
					"Bake for {time} minutes at {temp}°F",
				},
				RequiredParams: []string{"time"},
				DefaultParams:  map[string]interface{}{"temp": 350},
			},
			"cool": {
				Name: "Cool down",
				Type: "finishing",
				Instructions: []string{
					"Let cool for {minutes} minutes before serving",
				},
				DefaultParams: map[string]interface{}{"minutes": 10},
			},
		},
	}
}
