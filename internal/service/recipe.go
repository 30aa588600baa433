package service

import (
	"context"
	"log"
	"sync"

	"github.com/ovenworks/bakelab/internal/catalog"
	"github.com/ovenworks/bakelab/internal/loader"
	"github.com/ovenworks/bakelab/internal/model"
	"github.com/ovenworks/bakelab/internal/resolver"
	"github.com/ovenworks/bakelab/internal/types"
)

// RecipeService assembles resolved recipes from the configuration documents
// and the ingredient catalog, and answers queries against the assembled
// collection.
//
// A recipe referencing a template id that does not exist is dropped wholesale:
// templates define structure and must exist. An ingredient id the catalog
// cannot resolve only drops that entry: ingredients are content and may vary
// with catalog completeness.
type RecipeService struct {
	loader  *loader.Loader
	catalog catalog.Catalog

	mu          sync.Mutex
	initialized bool
	recipes     map[string]*model.Recipe
	order       []string
	templates   *types.StepTemplatesDocument
}

// NewRecipeService creates a new RecipeService instance.
func NewRecipeService(l *loader.Loader, c catalog.Catalog) *RecipeService {
	return &RecipeService{
		loader:  l,
		catalog: c,
		recipes: make(map[string]*model.Recipe),
	}
}

// Initialize loads the recipes document and assembles the recipe collection.
// It is idempotent: once initialized, further calls are no-ops and trigger no
// additional fetches. Assembly never fails; broken entries are skipped.
func (s *RecipeService) Initialize(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return
	}

	doc := s.loader.LoadRecipes(ctx)

	s.recipes = make(map[string]*model.Recipe, len(doc.Recipes))
	s.order = s.order[:0]

	for _, raw := range doc.Recipes {
		recipe, ok := s.assembleRecipe(ctx, raw)
		if !ok {
			continue
		}
		if _, exists := s.recipes[recipe.ID]; !exists {
			s.order = append(s.order, recipe.ID)
		}
		// Last definition wins on duplicate ids.
		s.recipes[recipe.ID] = recipe
	}

	s.initialized = true
	log.Printf("[RecipeService] initialized with %d of %d recipes", len(s.recipes), len(doc.Recipes))
}

// Reset clears the assembled collection and the loader's document caches so
// the next Initialize re-runs the whole pipeline from scratch.
func (s *RecipeService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loader.ClearCache()
	s.initialized = false
	s.recipes = make(map[string]*model.Recipe)
	s.order = nil
	s.templates = nil
}

// GetAllRecipes returns all resolved recipes in insertion order.
func (s *RecipeService) GetAllRecipes() []*model.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.Recipe, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.recipes[id])
	}
	return out
}

// GetRecipe returns the recipe with the given id, or ok=false if unknown.
func (s *RecipeService) GetRecipe(id string) (*model.Recipe, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.recipes[id]
	return r, ok
}

// GetRecipesByDifficulty returns recipes matching a difficulty, in insertion
// order.
func (s *RecipeService) GetRecipesByDifficulty(difficulty model.Difficulty) []*model.Recipe {
	return s.filter(func(r *model.Recipe) bool { return r.Difficulty == difficulty })
}

// GetRecipesByTag returns recipes carrying the given tag, in insertion order.
func (s *RecipeService) GetRecipesByTag(tag string) []*model.Recipe {
	return s.filter(func(r *model.Recipe) bool { return r.HasTag(tag) })
}

func (s *RecipeService) filter(keep func(*model.Recipe) bool) []*model.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*model.Recipe
	for _, id := range s.order {
		if r := s.recipes[id]; keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// stepTemplates loads the step-templates document on first use. Callers hold
// s.mu.
func (s *RecipeService) stepTemplates(ctx context.Context) *types.StepTemplatesDocument {
	if s.templates == nil {
		s.templates = s.loader.LoadStepTemplates(ctx)
	}
	return s.templates
}

// assembleRecipe resolves one raw definition. ok=false means the recipe
// referenced a missing template and must not appear in the collection.
func (s *RecipeService) assembleRecipe(ctx context.Context, raw types.RawRecipeDefinition) (*model.Recipe, bool) {
	steps := make([]model.Step, 0, len(raw.Steps))

	for _, rawStep := range raw.Steps {
		tpl, ok := s.stepTemplates(ctx).StepTemplates[rawStep.Template]
		if !ok {
			log.Printf("[RecipeService] dropping recipe %q: unknown step template %q", raw.ID, rawStep.Template)
			return nil, false
		}
		steps = append(steps, s.assembleStep(raw.ID, rawStep, tpl))
	}

	return &model.Recipe{
		ID:           raw.ID,
		Name:         raw.Metadata.Name,
		Description:  raw.Metadata.Description,
		Icon:         raw.Metadata.Icon,
		BaseServings: raw.Metadata.BaseServings,
		Difficulty:   model.Difficulty(raw.Metadata.Difficulty),
		BakingTime:   raw.Metadata.BakingTime,
		Tags:         raw.Metadata.Tags,
		Steps:        steps,
	}, true
}

func (s *RecipeService) assembleStep(recipeID string, rawStep types.RawStepDefinition, tpl types.StepTemplateDefinition) model.Step {
	merged := resolver.MergeParams(tpl.DefaultParams, rawStep.Params)

	for _, required := range tpl.RequiredParams {
		if _, ok := merged[required]; !ok {
			log.Printf("[RecipeService] recipe %q: template %q is missing required param %q", recipeID, rawStep.Template, required)
		}
	}

	return model.Step{
		Name:                 resolver.ResolveName(tpl.Name, merged),
		Type:                 tpl.Type,
		Params:               merged,
		Ingredients:          s.resolveIngredients(recipeID, rawStep.Ingredients),
		Groups:               s.resolveGroups(recipeID, rawStep.IngredientGroups),
		InstructionTemplates: tpl.Instructions,
	}
}

// resolveIngredients resolves catalog references, dropping entries the
// catalog does not know.
func (s *RecipeService) resolveIngredients(recipeID string, refs []types.IngredientAmount) []model.IngredientAmount {
	out := make([]model.IngredientAmount, 0, len(refs))
	for _, ref := range refs {
		ing, ok := s.catalog.GetIngredient(ref.IngredientID)
		if !ok {
			log.Printf("[RecipeService] recipe %q: dropping unknown ingredient %q", recipeID, ref.IngredientID)
			continue
		}
		out = append(out, model.IngredientAmount{Ingredient: ing, Amount: ref.Amount})
	}
	return out
}

func (s *RecipeService) resolveGroups(recipeID string, refs []types.IngredientGroup) []model.IngredientGroup {
	out := make([]model.IngredientGroup, 0, len(refs))
	for _, ref := range refs {
		out = append(out, model.IngredientGroup{
			Name:  ref.Name,
			Items: s.resolveIngredients(recipeID, ref.Ingredients),
		})
	}
	return out
}
