package model

// Ingredient is a catalog record. UnitWeight is the weight in grams of one
// unit of the ingredient. The gorm tags only matter for catalogs backed by a
// database; the in-memory catalog ignores them.
type Ingredient struct {
	ID         string  `gorm:"primaryKey;size:64" json:"id"`
	Name       string  `gorm:"size:255;not null" json:"name"`
	Unit       string  `gorm:"size:32" json:"unit"`
	Icon       string  `gorm:"size:16" json:"icon"`
	UnitWeight float64 `gorm:"type:float" json:"unit_weight"`
}

// IngredientAmount pairs a resolved catalog ingredient with a quantity.
type IngredientAmount struct {
	Ingredient Ingredient `json:"ingredient"`
	Amount     float64    `json:"amount"`
}

// IngredientGroup is a named, ordered list of resolved ingredient amounts.
type IngredientGroup struct {
	Name  string             `json:"name"`
	Items []IngredientAmount `json:"items"`
}
