package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/ovenworks/bakelab/internal/service"
)

// AdminHandler serves the operational endpoints.
type AdminHandler struct {
	service service.IRecipeService
	redis   *redis.Client
}

// NewAdminHandler creates a new AdminHandler instance.
func NewAdminHandler(svc service.IRecipeService, redisClient *redis.Client) *AdminHandler {
	return &AdminHandler{
		service: svc,
		redis:   redisClient,
	}
}

// RegisterRoutes registers the admin routes. Callers are expected to guard
// the group with AdminAuth.
func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	{
		admin.POST("/cache/clear", h.ClearCache)
	}
}

// ClearCache discards the cached configuration documents and the assembled
// collection, then re-runs the pipeline from scratch.
func (h *AdminHandler) ClearCache(c *gin.Context) {
	h.service.Reset()
	h.service.Initialize(c.Request.Context())
	h.flushInstructionCache(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Cache cleared and recipes re-initialized",
		"recipes": len(h.service.GetAllRecipes()),
	})
}

// flushInstructionCache drops cached rendered instructions so clients never
// see text from the previous document generation.
func (h *AdminHandler) flushInstructionCache(c *gin.Context) {
	if h.redis == nil {
		return
	}

	ctx := c.Request.Context()
	var cursor uint64
	for {
		keys, next, err := h.redis.Scan(ctx, cursor, "instructions:*", 100).Result()
		if err != nil {
			log.Printf("[AdminHandler] failed to scan instruction cache: %v", err)
			return
		}
		if len(keys) > 0 {
			if err := h.redis.Del(ctx, keys...).Err(); err != nil {
				log.Printf("[AdminHandler] failed to flush instruction cache: %v", err)
				return
			}
		}
		if next == 0 {
			return
		}
		cursor = next
	}
}
