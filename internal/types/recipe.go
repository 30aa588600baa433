package types

// RecipeMetadata holds the display metadata of a recipe definition.
type RecipeMetadata struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	BaseServings int      `json:"baseServings"`
	Difficulty   string   `json:"difficulty"`
	BakingTime   int      `json:"bakingTime"`
	Icon         string   `json:"icon"`
	Tags         []string `json:"tags,omitempty"`
}

// IngredientAmount references a catalog ingredient by id with a quantity.
type IngredientAmount struct {
	IngredientID string  `json:"ingredientId"`
	Amount       float64 `json:"amount"`
}

// IngredientGroup is a named, ordered list of ingredient references.
type IngredientGroup struct {
	Name        string             `json:"name"`
	Ingredients []IngredientAmount `json:"ingredients"`
}

// RawStepDefinition is a single unresolved step of a recipe definition.
// Template references an entry in the step-templates document by id.
type RawStepDefinition struct {
	Template         string                 `json:"template"`
	Params           map[string]interface{} `json:"params,omitempty"`
	Ingredients      []IngredientAmount     `json:"ingredients,omitempty"`
	IngredientGroups []IngredientGroup      `json:"ingredientGroups,omitempty"`
}

// RawRecipeDefinition is a recipe straight out of the recipes document,
// before template and catalog resolution.
type RawRecipeDefinition struct {
	ID       string              `json:"id"`
	Metadata RecipeMetadata      `json:"metadata"`
	Steps    []RawStepDefinition `json:"steps"`
}

// RecipesDocument is the top-level shape of the recipes resource.
type RecipesDocument struct {
	Recipes []RawRecipeDefinition `json:"recipes"`
}
