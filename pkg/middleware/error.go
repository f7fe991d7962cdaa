package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"frotaweb/pkg/logger"
	"frotaweb/pkg/response"
)

// FailureRenderer writes the HTML error page for a browser request.
type FailureRenderer func(c *gin.Context, status int)

func wantsJSON(c *gin.Context) bool {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		return true
	}
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}

func abortWithFailure(c *gin.Context, status int, render FailureRenderer) {
	if wantsJSON(c) || render == nil {
		c.AbortWithStatusJSON(status, response.Error(c, status, http.StatusText(status)))
		return
	}
	c.Abort()
	render(c, status)
}

// ErrorHandler handles errors in Gin requests
func ErrorHandler(render FailureRenderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last()

		logger.Error("request error",
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Error(err.Err),
			zap.String("request_id", c.GetString(ContextKeyRequestID)),
			zap.Int("status", c.Writer.Status()),
		)

		// Don't override response if already written
		if c.Writer.Written() {
			return
		}
		status := c.Writer.Status()
		if status < http.StatusBadRequest {
			status = http.StatusInternalServerError
		}
		abortWithFailure(c, status, render)
	}
}

// Recovery handles panics and recovers gracefully
func Recovery(render FailureRenderer) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("panic recovered",
			zap.Any("error", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.String("request_id", c.GetString(ContextKeyRequestID)),
			zap.Stack("stack"),
		)

		abortWithFailure(c, http.StatusInternalServerError, render)
	})
}
