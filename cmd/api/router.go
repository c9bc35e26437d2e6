package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"booktracker-backend/internal/shared/middleware"
	"booktracker-backend/internal/shared/response"
	"booktracker-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		middleware.RateLimit(c.Config.API.RateLimitRPS, c.Config.API.RateLimitBurst),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupAuthorRoutes(v1, c)
		setupPublisherRoutes(v1, c)
		setupGenreRoutes(v1, c)
		setupBookRoutes(v1, c)
		setupReviewRoutes(v1, c)
		setupCommentRoutes(v1, c)
		setupReadingStatusRoutes(v1, c)
		setupBookshelfRoutes(v1, c)
	}

	return router
}

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/refresh", c.UserHandler.Refresh)
	}
}

// Catalog resources: open read, writes from any authenticated user.

func setupAuthorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authors := v1.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.List)
		authors.GET("/:id", c.AuthorHandler.Get)

		authors.POST("", middleware.RequireAuth(c.JWTManager), c.AuthorHandler.Create)
		authors.PUT("/:id", middleware.RequireAuth(c.JWTManager), c.AuthorHandler.Update)
		authors.DELETE("/:id", middleware.RequireAuth(c.JWTManager), c.AuthorHandler.Delete)
	}
}

func setupPublisherRoutes(v1 *gin.RouterGroup, c *container.Container) {
	publishers := v1.Group("/publishers")
	{
		publishers.GET("", c.PublisherHandler.List)
		publishers.GET("/:id", c.PublisherHandler.Get)

		publishers.POST("", middleware.RequireAuth(c.JWTManager), c.PublisherHandler.Create)
		publishers.PUT("/:id", middleware.RequireAuth(c.JWTManager), c.PublisherHandler.Update)
		publishers.DELETE("/:id", middleware.RequireAuth(c.JWTManager), c.PublisherHandler.Delete)
	}
}

func setupGenreRoutes(v1 *gin.RouterGroup, c *container.Container) {
	genres := v1.Group("/genres")
	{
		genres.GET("", c.GenreHandler.List)
		genres.GET("/:id", c.GenreHandler.Get)

		genres.POST("", middleware.RequireAuth(c.JWTManager), c.GenreHandler.Create)
		genres.PUT("/:id", middleware.RequireAuth(c.JWTManager), c.GenreHandler.Update)
		genres.DELETE("/:id", middleware.RequireAuth(c.JWTManager), c.GenreHandler.Delete)
	}
}

func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	books := v1.Group("/books")
	{
		books.GET("", c.BookHandler.List)
		books.GET("/:id", c.BookHandler.Get)

		books.POST("", middleware.RequireAuth(c.JWTManager), c.BookHandler.Create)
		books.PUT("/:id", middleware.RequireAuth(c.JWTManager), c.BookHandler.Update)
		books.DELETE("/:id", middleware.RequireAuth(c.JWTManager), c.BookHandler.Delete)

		// Reviews are created only here, under their book
		books.POST("/:id/reviews", middleware.RequireAuth(c.JWTManager), c.ReviewHandler.Create)
	}
}

func setupReviewRoutes(v1 *gin.RouterGroup, c *container.Container) {
	reviews := v1.Group("/reviews")
	{
		// The top-level list shows the requester's own reviews
		reviews.GET("", middleware.OptionalAuth(c.JWTManager), c.ReviewHandler.List)
		reviews.GET("/:id", c.ReviewHandler.Get)
		reviews.GET("/:id/comments", c.CommentHandler.ListForReview)

		reviews.POST("", c.ReviewHandler.CreateTopLevel)
		reviews.PUT("/:id", middleware.RequireAuth(c.JWTManager), c.ReviewHandler.Update)
		reviews.DELETE("/:id", middleware.RequireAuth(c.JWTManager), c.ReviewHandler.Delete)

		// Comments are created only here, under their review
		reviews.POST("/:id/comments", middleware.RequireAuth(c.JWTManager), c.CommentHandler.Create)
	}
}

func setupCommentRoutes(v1 *gin.RouterGroup, c *container.Container) {
	comments := v1.Group("/comments")
	{
		comments.GET("", c.CommentHandler.List)
		comments.GET("/:id", c.CommentHandler.Get)

		comments.POST("", c.CommentHandler.CreateTopLevel)
		comments.PUT("/:id", middleware.RequireAuth(c.JWTManager), c.CommentHandler.Update)
		comments.DELETE("/:id", middleware.RequireAuth(c.JWTManager), c.CommentHandler.Delete)
	}
}

func setupReadingStatusRoutes(v1 *gin.RouterGroup, c *container.Container) {
	statuses := v1.Group("/reading-statuses")
	statuses.Use(middleware.RequireAuth(c.JWTManager))
	{
		statuses.GET("", c.ReadingStatusHandler.List)
		statuses.GET("/:id", c.ReadingStatusHandler.Get)
		statuses.POST("", c.ReadingStatusHandler.Create)
		statuses.PUT("/:id", c.ReadingStatusHandler.Update)
		statuses.DELETE("/:id", c.ReadingStatusHandler.Delete)
	}
}

func setupBookshelfRoutes(v1 *gin.RouterGroup, c *container.Container) {
	shelves := v1.Group("/bookshelves")
	shelves.Use(middleware.RequireAuth(c.JWTManager))
	{
		shelves.GET("", c.BookshelfHandler.List)
		shelves.GET("/:id", c.BookshelfHandler.Get)
		shelves.POST("", c.BookshelfHandler.Create)
		shelves.PUT("/:id", c.BookshelfHandler.Update)
		shelves.DELETE("/:id", c.BookshelfHandler.Delete)

		shelves.GET("/:id/books", c.BookshelfHandler.ListBooks)
		shelves.POST("/:id/books", c.BookshelfHandler.AddBook)
		shelves.DELETE("/:id/books", c.BookshelfHandler.RemoveBook)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dbStatus := "up"
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			dbStatus = "down"
		}

		cacheStatus := "up"
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			cacheStatus = "down"
		}

		status := http.StatusOK
		overall := "ok"
		if dbStatus == "down" {
			status = http.StatusServiceUnavailable
			overall = "degraded"
		}

		response.JSON(ctx, status, gin.H{
			"status":   overall,
			"version":  c.Config.App.Version,
			"database": dbStatus,
			"cache":    cacheStatus,
		})
	}
}
