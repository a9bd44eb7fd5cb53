package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quotegate/quotegate/config"
	"github.com/quotegate/quotegate/internal/api"
	"github.com/quotegate/quotegate/internal/cache"
	"github.com/quotegate/quotegate/internal/service"
	"github.com/quotegate/quotegate/internal/upstream"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the tuned HTTP client and upstream provider client.
//   - Constructs the shared result cache (created here at process start,
//     never torn down except at process exit; no hidden singletons).
//   - Wires the service and HTTP handler layers.
//   - Configures the Gin router with all API routes.
//   - Registers the health probe.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	if cfg.Upstream.BaseURL == "" {
		return nil, nil, fmt.Errorf("upstream base URL is not configured")
	}
	if cfg.Cache.MaxEntries <= 0 || cfg.Cache.TTLSec <= 0 {
		return nil, nil, fmt.Errorf("invalid cache configuration: %+v", cfg.Cache)
	}

	// Outbound HTTP client with the fixed per-call network timeout
	httpClient := upstream.NewHTTPClient(time.Duration(cfg.Upstream.TimeoutSec) * time.Second)

	// Upstream provider client (the only external collaborator)
	fetcher := upstream.NewClient(cfg.Upstream.BaseURL, httpClient)

	// Shared result cache, dependency-injected into the service layer
	store := cache.New(cfg.Cache.MaxEntries, time.Duration(cfg.Cache.TTLSec)*time.Second)

	// Business flow: normalize -> cache -> fetch -> store
	svc := service.NewMarketDataService(fetcher, store)

	// HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health probe
	api.NewHealthHandler().Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		httpClient.CloseIdleConnections()
	}

	return router, cleanup, nil
}
