package handler

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blog-api/internal/auth"
	"blog-api/internal/middleware"
	"blog-api/internal/service"
)

// RouterConfig holds the dependencies of the HTTP router.
type RouterConfig struct {
	Posts              service.PostServiceInterface
	Users              service.UserServiceInterface
	Sessions           auth.Store
	Health             *HealthHandler
	CORSAllowedOrigins []string
	SecureCookies      bool
	AccessLog          bool
}

// NewRouter builds the gin engine with middleware, operational endpoints and the /api/v1 routes.
// The post routes are also served at /posts.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	if cfg.AccessLog {
		router.Use(gin.Logger())
	}
	router.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: msgNotFound})
	})

	// Health and metrics endpoints
	if cfg.Health != nil {
		router.GET("/health", cfg.Health.Health)
		router.GET("/ready", cfg.Health.Ready)
		router.GET("/live", cfg.Health.Live)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	postHandler := NewPostHandler(cfg.Posts)
	authHandler := NewAuthHandler(cfg.Users, cfg.Sessions, cfg.SecureCookies)
	requireSession := auth.RequireSession(cfg.Sessions, cfg.Users)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		mountPosts(v1.Group("/posts"), postHandler, requireSession)

		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/logout", requireSession, authHandler.Logout)
			authRoutes.GET("/me", requireSession, authHandler.Me)
		}
	}

	mountPosts(router.Group("/posts"), postHandler, requireSession)

	return router
}

func mountPosts(posts *gin.RouterGroup, h *PostHandler, requireSession gin.HandlerFunc) {
	posts.GET("", h.List)
	posts.GET("/:id", h.Get)
	posts.POST("", requireSession, h.Create)
	posts.PUT("/:id", requireSession, h.Update)
	posts.DELETE("/:id", requireSession, h.Delete)
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Type", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, origin := range origins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
