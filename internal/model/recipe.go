package model

import (
	"github.com/ovenworks/bakelab/internal/resolver"
)

// Difficulty classifies how hard a recipe is to make.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Step is a fully resolved recipe step. Params is the merged parameter set
// (template defaults overridden by step values). InstructionTemplates keeps
// the raw templates; formatted text is computed on demand, never cached,
// since the parameters are immutable after assembly.
type Step struct {
	Name                 string                 `json:"name"`
	Type                 string                 `json:"type"`
	Params               map[string]interface{} `json:"params"`
	Ingredients          []IngredientAmount     `json:"ingredients"`
	Groups               []IngredientGroup      `json:"groups"`
	InstructionTemplates []string               `json:"-"`
}

// FormattedInstructions renders the step's instruction templates against its
// merged parameters and resolved ingredient groups, one string per template
// in declaration order.
func (s *Step) FormattedInstructions() []string {
	groups := make(map[string][]resolver.GroupEntry, len(s.Groups))
	for _, g := range s.Groups {
		entries := make([]resolver.GroupEntry, len(g.Items))
		for i, item := range g.Items {
			entries[i] = resolver.GroupEntry{
				Amount: item.Amount,
				Unit:   item.Ingredient.Unit,
				Name:   item.Ingredient.Name,
			}
		}
		groups[g.Name] = entries
	}
	return resolver.ResolveInstructions(s.InstructionTemplates, s.Params, groups)
}

// Recipe is a fully resolved recipe. Instances are created once during
// assembly and never mutated afterwards.
type Recipe struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Icon         string     `json:"icon"`
	BaseServings int        `json:"base_servings"`
	Difficulty   Difficulty `json:"difficulty"`
	BakingTime   int        `json:"baking_time"`
	Tags         []string   `json:"tags,omitempty"`
	Steps        []Step     `json:"steps"`
}

// HasTag reports whether the recipe carries the given tag.
func (r *Recipe) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
