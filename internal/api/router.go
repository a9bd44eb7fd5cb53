package api

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/quotegate/quotegate/internal/middleware"
)

// requestTimeout bounds one request end to end. It sits just above the
// upstream client's own network timeout so slow provider calls surface
// as upstream failures rather than silent request drops.
const requestTimeout = 25 * time.Second

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, CORS, RateLimiter).
//   - Adds request timeout handling.
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures the public data routes (/api/public).
//
// Note:
//   - The health endpoint (/health) is registered in app.InitializeApp().
func NewRouter(handler *Handler) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(),
	)

	// Open CORS: this is a public read-only data API
	router.Use(cors.Default())

	// ─── Timeout ──────────────────────────────────
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── Public data API ──────────────────────────
	public := router.Group("/api/public")
	{
		public.GET("/ohlcv", handler.GetOHLCV)
		public.GET("/dividends", handler.GetDividends)
		public.GET("/splits", handler.GetSplits)
		public.GET("/info", handler.GetInfo)
		public.GET("/universe", handler.GetUniverse)
	}

	return router
}
