package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rebook-backend/internal/shared/middleware"
	"rebook-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupReviewRoutes(v1, c)
		setupMemberRoutes(v1, c)
		setupBookRoutes(v1, c)
	}

	return router
}

// ========================================
// REVIEW ROUTES
// ========================================
func setupReviewRoutes(v1 *gin.RouterGroup, c *container.Container) {
	reviews := v1.Group("/reviews")
	{
		// Public listing
		reviews.GET("/book/:book_id", c.ReviewHandler.ListReviews)

		// Token-gated writes. Handlers read the Authorization header
		// themselves, so no auth middleware is registered here.
		reviews.POST("/:book_id", c.ReviewHandler.CreateReview)
		reviews.PUT("/:review_id", c.ReviewHandler.UpdateReview)
		reviews.DELETE("/:review_id", c.ReviewHandler.DeleteReview)
	}
}

// ========================================
// MEMBER ROUTES
// ========================================
func setupMemberRoutes(v1 *gin.RouterGroup, c *container.Container) {
	members := v1.Group("/members")
	{
		members.GET("/me", c.MemberHandler.GetProfile)
	}
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	books := v1.Group("/books")
	{
		books.GET("", c.BookHandler.ListBooks)
		books.GET("/:book_id", c.BookHandler.GetBookDetail)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  gin.H{},
		}

		// Check database
		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Check redis. Redis being down degrades performance, not
		// availability, so it never flips the status code.
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
