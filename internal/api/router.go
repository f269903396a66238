package api

import (
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/d60-Lab/orkud/config"
	_ "github.com/d60-Lab/orkud/docs"
	"github.com/d60-Lab/orkud/internal/api/handler"
	"github.com/d60-Lab/orkud/internal/api/middleware"
)

// NewRouter wires middleware and routes onto a fresh gin engine.
func NewRouter(cfg *config.Config, h *handler.Handler) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.Sentry.DSN != "" {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	if cfg.Tracing.Enabled {
		r.Use(otelgin.Middleware(cfg.Tracing.ServiceName))
	}
	r.Use(middleware.RequestLogger())
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.GET("/health", h.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	if cfg.RateLimit.Enabled {
		api.Use(middleware.RateLimit(middleware.NewIPRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)))
	}
	{
		api.GET("/user/current", h.CurrentUser)

		posts := api.Group("/posts")
		posts.GET("", h.ListPosts)
		posts.POST("", h.CreatePost)
		posts.GET("/:id", h.GetPost)
		posts.POST("/:id/like", h.ToggleLike)
		posts.POST("/:id/comment", h.AddComment)

		users := api.Group("/users")
		users.GET("", h.ListUsers)
		users.GET("/:id", h.GetUser)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
		users.POST("/:id/follow", h.ToggleFollow)
		users.GET("/:id/follow-status", h.FollowStatus)
		users.GET("/:id/followers", h.ListFollowers)
		users.GET("/:id/following", h.ListFollowing)

		search := api.Group("/search")
		search.GET("/posts", h.SearchPosts)
		search.GET("/users", h.SearchUsers)

		tickets := api.Group("/support/tickets")
		tickets.POST("", h.CreateTicket)
		tickets.GET("", h.ListTickets)
		tickets.PATCH("/:id", h.UpdateTicketStatus)
	}
	return r
}
