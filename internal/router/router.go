// Package router assembles the gin engine: middleware chain, handler wiring
// and route registration.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Amaspm/driver-management/internal/audit"
	"github.com/Amaspm/driver-management/internal/config"
	"github.com/Amaspm/driver-management/internal/events"
	"github.com/Amaspm/driver-management/internal/handlers"
	"github.com/Amaspm/driver-management/internal/middleware"
	"github.com/Amaspm/driver-management/internal/presence"
	"github.com/Amaspm/driver-management/internal/recordstore"
	"github.com/Amaspm/driver-management/internal/security"
	"github.com/Amaspm/driver-management/internal/session"
)

// Dependencies carries every shared component the routes need. Audit and
// Events may be nil; the handlers degrade gracefully.
type Dependencies struct {
	Config   *config.Config
	Logger   *zap.Logger
	Redis    *redis.Client
	Records  *recordstore.Client
	Presence *presence.Poller
	Sessions *session.Store
	Tokens   *security.TokenManager
	Audit    *audit.Store
	Events   *events.Publisher
}

// New builds the engine. Health and metrics stay outside the auth wall;
// everything under /api/v1 except login requires an admin session.
func New(deps Dependencies) *gin.Engine {
	r := gin.New()

	middleware.RegisterMetrics()
	r.Use(
		middleware.Recovery(deps.Logger),
		middleware.SecurityHeaders(),
		middleware.RequestIDMiddleware(),
		middleware.RequestLogger(deps.Logger),
		middleware.Metrics(),
	)
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.Config.Security.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	if deps.Redis != nil && deps.Config.Security.RateLimitRPS > 0 {
		r.Use(middleware.RateLimit(deps.Redis, deps.Config.Security.RateLimitRPS))
	}

	r.GET("/health", handlers.Health)
	r.GET("/metrics", middleware.MetricsHandler())

	authH := handlers.NewAuth(deps.Records, deps.Sessions, deps.Tokens, deps.Logger)
	driversH := handlers.NewDrivers(deps.Records, deps.Presence, deps.Audit, deps.Events, deps.Sessions, deps.Logger)
	adminH := handlers.NewAdmin(deps.Records, deps.Audit, deps.Sessions, deps.Logger)
	armadaH := handlers.NewArmada(deps.Records, deps.Sessions)
	trainingH := handlers.NewTraining(deps.Records, deps.Sessions)

	api := r.Group("/api/v1")
	api.POST("/auth/login", authH.Login)

	authed := api.Group("")
	authed.Use(middleware.RequireAdmin(deps.Tokens, deps.Sessions))

	registerAuthRoutes(authed, authH)
	registerDriverRoutes(authed, driversH)
	registerAdminRoutes(authed, adminH)
	registerArmadaRoutes(authed, armadaH)
	registerTrainingRoutes(authed, trainingH)

	return r
}
