package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/darasa-app/darasa/internal/interfaces/http/handlers"
	"github.com/darasa-app/darasa/internal/interfaces/http/middleware"
)

// ContentRouteConfig holds dependencies for the gated content routes.
type ContentRouteConfig struct {
	ContentHandler *handlers.ContentHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter // may be nil if Redis is not configured
}

// SetupContentRoutes configures the five content delivery routes. Identity is
// optional on all of them: the access gate, not the router, decides what an
// unauthenticated caller may see.
func SetupContentRoutes(engine *gin.Engine, cfg *ContentRouteConfig) {
	group := engine.Group("")
	group.Use(cfg.AuthMiddleware.OptionalAuth())
	if cfg.RateLimiter != nil {
		group.Use(cfg.RateLimiter.Limit())
	}
	{
		group.GET("/lessons/:id/content", cfg.ContentHandler.GetLessonContent)
		group.GET("/quizzes", cfg.ContentHandler.GetQuiz)
		group.GET("/flashcards", cfg.ContentHandler.GetFlashcards)
		group.GET("/exams", cfg.ContentHandler.GetExam)
		group.GET("/progress", cfg.ContentHandler.GetProgress)
	}
}
