package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/roomly-dev/roomly/internal/handlers"
	"github.com/roomly-dev/roomly/internal/metrics"
	"github.com/roomly-dev/roomly/internal/middleware"
	"github.com/roomly-dev/roomly/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	collector := metrics.NewCollector()

	r.Use(middleware.RequestID())
	r.Use(collector.Middleware())

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/metrics", gin.WrapH(collector.Handler()))

	api := r.Group("/api")
	{
		api.GET("/", handlers.APIDocs)
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.GET("", handlers.GetAuthURL)
			auth.POST("", middleware.RateLimitExchange(), handlers.ExchangeAuthorization)
			auth.GET("/status", middleware.AuthMiddleware(), handlers.AuthStatus)
		}

		api.GET("/users/:userId", middleware.AuthMiddleware(), handlers.GetUser)

		rooms := api.Group("/rooms", middleware.AuthMiddleware())
		{
			rooms.POST("", handlers.CreateRoom)
			rooms.GET("", handlers.ListRooms)
		}

		invites := api.Group("/invites", middleware.AuthMiddleware())
		{
			invites.POST("", handlers.CreateInvite)
			invites.PUT("/:inviteId", handlers.UpdateInviteStatus)
		}

		api.GET("/calendar/list", middleware.AuthMiddleware(), handlers.ListCalendars)
	}

	return r
}
