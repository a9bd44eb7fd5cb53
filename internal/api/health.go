package api

import "github.com/gin-gonic/gin"

// HealthHandler provides the liveness endpoint for the service.
// The service holds no connections worth probing beyond the process
// itself, so a static response is sufficient.
type HealthHandler struct{}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Register mounts the health endpoint into the provided Gin router.
//
// Routes:
//   - GET /health: Always returns {"ok": true} while the process is up.
func (h *HealthHandler) Register(r *gin.Engine) {
	// Register godoc
	// @Summary      Liveness probe
	// @Description  Returns ok while the service is running
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]bool
	// @Router       /health [get]
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
}
