package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quotegate/quotegate/internal/domain/dto"
	"github.com/quotegate/quotegate/internal/logger"
)

// ErrorHandler converts errors attached to the Gin context into a
// standardized JSON response. Handlers that already wrote a response are
// left alone; only unhandled c.Error() entries trigger the fallback 500.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled request error")
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}

// AbortWithError stops the request with the given status and a
// standardized error body.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
