// Package http wires repositories, use cases, handlers and middleware into
// the gin engine.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	appaccess "github.com/darasa-app/darasa/internal/application/access"
	entitlementusecases "github.com/darasa-app/darasa/internal/application/entitlement/usecases"
	lessonusecases "github.com/darasa-app/darasa/internal/application/lesson/usecases"
	"github.com/darasa-app/darasa/internal/infrastructure/auth"
	"github.com/darasa-app/darasa/internal/infrastructure/config"
	"github.com/darasa-app/darasa/internal/infrastructure/repository"
	"github.com/darasa-app/darasa/internal/interfaces/http/handlers"
	"github.com/darasa-app/darasa/internal/interfaces/http/middleware"
	"github.com/darasa-app/darasa/internal/interfaces/http/routes"
	"github.com/darasa-app/darasa/internal/shared/logger"
	"github.com/darasa-app/darasa/internal/shared/services/markdown"
)

// Router represents the HTTP router configuration
type Router struct {
	engine *gin.Engine
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.CustomLogger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	// Infrastructure
	lessonRepo := repository.NewLessonRepository(db, log)
	entitlementRepo := repository.NewUserEntitlementRepository(db, log)
	payloadRepo := repository.NewContentPayloadRepository(db, markdown.NewMarkdownService(), log)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	var rateLimiter *middleware.RateLimiter
	if redisClient != nil {
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.Content.RateLimitPerMinute, time.Minute)
	}

	// Use cases
	getContentUC := appaccess.NewGetContentUseCase(lessonRepo, payloadRepo, log)
	getEntitlementsUC := entitlementusecases.NewGetUserEntitlementsUseCase(entitlementRepo, log)
	createLessonUC := lessonusecases.NewCreateLessonUseCase(lessonRepo, log)
	publishLessonUC := lessonusecases.NewPublishLessonUseCase(lessonRepo, log)
	unpublishLessonUC := lessonusecases.NewUnpublishLessonUseCase(lessonRepo, log)
	listLessonsUC := lessonusecases.NewListPublishedLessonsUseCase(lessonRepo, log)

	// Handlers
	contentHandler := handlers.NewContentHandler(getContentUC, entitlementRepo, log)
	lessonHandler := handlers.NewLessonHandler(createLessonUC, publishLessonUC, unpublishLessonUC, listLessonsUC, log)
	entitlementHandler := handlers.NewEntitlementHandler(getEntitlementsUC, log)

	// Routes
	routes.SetupContentRoutes(engine, &routes.ContentRouteConfig{
		ContentHandler: contentHandler,
		AuthMiddleware: authMiddleware,
		RateLimiter:    rateLimiter,
	})
	routes.SetupLessonRoutes(engine, &routes.LessonRouteConfig{
		LessonHandler:  lessonHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupUserRoutes(engine, &routes.UserRouteConfig{
		EntitlementHandler: entitlementHandler,
		AuthMiddleware:     authMiddleware,
	})

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return &Router{engine: engine}
}

// Engine returns the underlying gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
