package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/darasa-app/darasa/internal/interfaces/http/handlers"
	"github.com/darasa-app/darasa/internal/interfaces/http/middleware"
)

// UserRouteConfig holds dependencies for user-scoped routes.
type UserRouteConfig struct {
	EntitlementHandler *handlers.EntitlementHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// SetupUserRoutes configures routes scoped to the authenticated user.
func SetupUserRoutes(engine *gin.Engine, cfg *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	{
		users.GET("/me/entitlements", cfg.EntitlementHandler.GetMyEntitlements)
	}
}
