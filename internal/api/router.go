package api

import (
	"net/http"
	"time"

	"github.com/elearn-admin-gateway/internal/auth"
	"github.com/elearn-admin-gateway/internal/config"
	"github.com/elearn-admin-gateway/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router. limiter may be nil when
// no redis address is configured; login then runs unthrottled.
func NewRouter(services *service.Services, cfg *config.Config, verifier *auth.Verifier, limiter *RateLimiter, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware(cfg))

	// Handlers
	authHandler := NewAuthHandler(services, log)
	userHandler := NewUserHandler(services, log)
	dashboardHandler := NewDashboardHandler(services, log)
	bookHandler := NewBookHandler(services, cfg, log)
	exportHandler := NewExportHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)

	api := router.Group("/api")
	{
		login := api.Group("/auth")
		if limiter != nil {
			login.Use(limiter.Limit("login", cfg.RateLimit.LoginLimit, cfg.RateLimit.LoginWindow))
		}
		login.POST("/login", authHandler.Login)

		protected := api.Group("")
		protected.Use(AdminRequired(verifier))
		{
			dashboard := protected.Group("/dashboard")
			{
				dashboard.GET("/stats", dashboardHandler.Stats)
				dashboard.GET("/course-distribution", dashboardHandler.CourseDistribution)
			}

			users := protected.Group("/users")
			{
				users.GET("", userHandler.List)
				users.GET("/:id", userHandler.Get)
				users.POST("", userHandler.Create)
				users.PUT("/:id", userHandler.Update)
				users.DELETE("/:id", userHandler.Delete)
			}

			books := protected.Group("/books")
			{
				books.GET("", bookHandler.List)
				books.POST("/upload", bookHandler.Upload)
				books.DELETE("/:id", bookHandler.Delete)
			}

			protected.GET("/export", exportHandler.Stream)
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "elearn-admin-gateway",
	})
}

// corsMiddleware allows the dashboard origin
func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.Server.AllowedOrigins
	corsCfg.AllowCredentials = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	return cors.New(corsCfg)
}
