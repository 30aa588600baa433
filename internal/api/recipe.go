package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/ovenworks/bakelab/internal/model"
	"github.com/ovenworks/bakelab/internal/service"
)

// instructionCacheTTL bounds how long rendered instruction text is served
// from Redis. Rendering is cheap; the TTL only smooths hot recipes.
const instructionCacheTTL = 10 * time.Minute

// RecipeHandler serves the recipe query endpoints.
type RecipeHandler struct {
	service service.IRecipeService
	redis   *redis.Client
}

// NewRecipeHandler creates a new RecipeHandler instance. redisClient may be
// nil, which disables the instruction cache.
func NewRecipeHandler(svc service.IRecipeService, redisClient *redis.Client) *RecipeHandler {
	return &RecipeHandler{
		service: svc,
		redis:   redisClient,
	}
}

// RegisterRoutes registers the public recipe routes.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.GET("/:id/instructions", h.GetInstructions)
	}
}

// ListRecipes returns all resolved recipes, optionally filtered by
// difficulty or tag.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	var recipes []*model.Recipe

	switch {
	case c.Query("difficulty") != "":
		recipes = h.service.GetRecipesByDifficulty(model.Difficulty(c.Query("difficulty")))
	case c.Query("tag") != "":
		recipes = h.service.GetRecipesByTag(c.Query("tag"))
	default:
		recipes = h.service.GetAllRecipes()
	}

	c.JSON(http.StatusOK, gin.H{
		"recipes": recipes,
	})
}

// GetRecipe returns a single resolved recipe.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, ok := h.service.GetRecipe(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// stepInstructions is one rendered step in the instructions response.
type stepInstructions struct {
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Instructions []string `json:"instructions"`
}

// GetInstructions returns the formatted instruction text for every step of a
// recipe, served from Redis when cached.
func (h *RecipeHandler) GetInstructions(c *gin.Context) {
	id := c.Param("id")
	cacheKey := "instructions:" + id

	if h.redis != nil {
		if cached, err := h.redis.Get(c.Request.Context(), cacheKey).Bytes(); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			return
		}
	}

	recipe, ok := h.service.GetRecipe(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	steps := make([]stepInstructions, len(recipe.Steps))
	for i := range recipe.Steps {
		step := &recipe.Steps[i]
		steps[i] = stepInstructions{
			Name:         step.Name,
			Type:         step.Type,
			Instructions: step.FormattedInstructions(),
		}
	}

	payload := gin.H{"id": recipe.ID, "name": recipe.Name, "steps": steps}

	if h.redis != nil {
		if raw, err := json.Marshal(payload); err == nil {
			if err := h.redis.Set(c.Request.Context(), cacheKey, raw, instructionCacheTTL).Err(); err != nil {
				log.Printf("[RecipeHandler] failed to cache instructions for %q: %v", id, err)
			}
		}
	}

	c.JSON(http.StatusOK, payload)
}
