package routes

import (
	"net/http"

	"careswipe_backend/internal/handlers"
	"careswipe_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every handler under /api/v1. Auth endpoints are
// public; everything else requires a bearer token.
func RegisterRoutes(engine *gin.Engine, h *handlers.AppHandlers) {
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api/v1")

	h.Auth.RegisterRoutes(api)

	protected := api.Group("", middleware.AuthMiddleware())
	{
		h.Profile.RegisterRoutes(protected)
		h.Swipe.RegisterRoutes(protected)
		h.Feed.RegisterRoutes(protected)
		h.Job.RegisterRoutes(protected)
		h.Review.RegisterRoutes(protected)
	}
}
