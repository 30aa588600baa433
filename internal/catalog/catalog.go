package catalog

import (
	"github.com/ovenworks/bakelab/internal/model"
)

// Catalog resolves ingredient ids to catalog records. Lookups are
// synchronous and side-effect free; an unknown id is signalled by ok=false,
// never by an error.
type Catalog interface {
	GetIngredient(id string) (model.Ingredient, bool)
}

// MemoryCatalog is an in-memory Catalog.
type MemoryCatalog struct {
	ingredients map[string]model.Ingredient
}

// NewMemoryCatalog creates a catalog holding the given ingredients.
func NewMemoryCatalog(ingredients ...model.Ingredient) *MemoryCatalog {
	m := make(map[string]model.Ingredient, len(ingredients))
	for _, ing := range ingredients {
		m[ing.ID] = ing
	}
	return &MemoryCatalog{ingredients: m}
}

// GetIngredient looks up an ingredient by id.
func (c *MemoryCatalog) GetIngredient(id string) (model.Ingredient, bool) {
	ing, ok := c.ingredients[id]
	return ing, ok
}

// Builtin returns the built-in baking catalog. It covers everything the
// fallback recipes reference.
func Builtin() *MemoryCatalog {
	return NewMemoryCatalog(BuiltinIngredients()...)
}

// BuiltinIngredients lists the built-in ingredient records. Also used by the
// catalog seeder.
func BuiltinIngredients() []model.Ingredient {
	return []model.Ingredient{
		{ID: "flour", Name: "Flour", Unit: "cups", Icon: "🌾", UnitWeight: 120},
		{ID: "sugar", Name: "Sugar", Unit: "cups", Icon: "🧂", UnitWeight: 200},
		{ID: "brown-sugar", Name: "Brown Sugar", Unit: "cups", Icon: "🟤", UnitWeight: 220},
		{ID: "butter", Name: "Butter", Unit: "cups", Icon: "🧈", UnitWeight: 227},
		{ID: "egg", Name: "Egg", Unit: "pieces", Icon: "🥚", UnitWeight: 50},
		{ID: "milk", Name: "Milk", Unit: "cups", Icon: "🥛", UnitWeight: 240},
		{ID: "vanilla", Name: "Vanilla Extract", Unit: "teaspoons", Icon: "🌼", UnitWeight: 4},
		{ID: "baking-powder", Name: "Baking Powder", Unit: "teaspoons", Icon: "✨", UnitWeight: 4},
		{ID: "salt", Name: "Salt", Unit: "teaspoons", Icon: "🧂", UnitWeight: 6},
		{ID: "cocoa", Name: "Cocoa Powder", Unit: "cups", Icon: "🍫", UnitWeight: 100},
		{ID: "chocolate-chips", Name: "Chocolate Chips", Unit: "cups", Icon: "🍫", UnitWeight: 170},
	}
}
