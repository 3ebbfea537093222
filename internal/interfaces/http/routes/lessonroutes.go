package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/darasa-app/darasa/internal/interfaces/http/handlers"
	"github.com/darasa-app/darasa/internal/interfaces/http/middleware"
	"github.com/darasa-app/darasa/internal/shared/authorization"
)

// LessonRouteConfig holds dependencies for the lesson catalog routes.
type LessonRouteConfig struct {
	LessonHandler  *handlers.LessonHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupLessonRoutes configures the public catalog listing and the admin
// lesson lifecycle routes.
func SetupLessonRoutes(engine *gin.Engine, cfg *LessonRouteConfig) {
	engine.GET("/lessons", cfg.LessonHandler.ListLessons)

	admin := engine.Group("/admin/lessons")
	admin.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireRole(authorization.RoleAdmin))
	{
		admin.POST("", cfg.LessonHandler.CreateLesson)
		admin.POST("/:id/publish", cfg.LessonHandler.PublishLesson)
		admin.POST("/:id/unpublish", cfg.LessonHandler.UnpublishLesson)
	}
}
