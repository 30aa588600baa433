package service

import (
	"context"

	"github.com/ovenworks/bakelab/internal/model"
)

// IRecipeService defines the interface for recipe query operations.
type IRecipeService interface {
	Initialize(ctx context.Context)
	GetAllRecipes() []*model.Recipe
	GetRecipe(id string) (*model.Recipe, bool)
	GetRecipesByDifficulty(difficulty model.Difficulty) []*model.Recipe
	GetRecipesByTag(tag string) []*model.Recipe
	Reset()
}
