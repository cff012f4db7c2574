package handlers

import (
	"log/slog"

	"github.com/SscSPs/attendance_bot/internal/bot"
	portssvc "github.com/SscSPs/attendance_bot/internal/core/ports/services"
	"github.com/SscSPs/attendance_bot/internal/middleware"
	"github.com/SscSPs/attendance_bot/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	router *bot.Router,
	replier Replier,
) error {
	if len(cfg.CORSAllowedOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
		corsCfg.AddAllowHeaders("Authorization")
		r.Use(cors.New(corsCfg))
	}

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	if err := registerWebhookRoutes(r, cfg, router, replier); err != nil {
		return err
	}

	if !cfg.AdminAPIEnabled() {
		slog.Info("Admin API disabled, ADMIN_PASSWORD_HASH is not set")
		return nil
	}

	// Register public authentication routes
	if err := registerAuthRoutes(r, cfg, services.User); err != nil {
		return err
	}

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	// Every admin API route needs a valid token whose subject is an admin in the Users table
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.RequireAdmin(service.User),
	)

	registerUserRoutes(v1, service.User)
	registerTaskRoutes(v1, service.Task)
	registerReportRoutes(v1, service.Report)
	registerWorkLogRoutes(v1, service.Attendance)

	slog.Debug("Admin API routes registered", slog.String("prefix", "/api/v1"))
}
