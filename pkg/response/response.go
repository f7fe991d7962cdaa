// Package response writes the JSON envelope used by the /api/v1 routes.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"frotaweb/pkg/logger"
)

// ContextKeyRequestID matches the key set by the request id middleware.
const ContextKeyRequestID = "RequestID"

// Envelope is the body of every API response.
type Envelope struct {
	Code      int    `json:"code" example:"200"`
	Message   string `json:"message" example:"OK"`
	Data      any    `json:"data,omitempty"`
	Details   string `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty" example:"0b7f6f0e-8d1c-4c9e-9d68-2f1c1f1d3f0a"`
}

// OK writes a 200 envelope around data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{
		Code:      http.StatusOK,
		Message:   http.StatusText(http.StatusOK),
		Data:      data,
		RequestID: c.GetString(ContextKeyRequestID),
	})
}

// Error builds an error envelope without writing it.
func Error(c *gin.Context, statusCode int, message string) Envelope {
	return Envelope{
		Code:      statusCode,
		Message:   message,
		RequestID: c.GetString(ContextKeyRequestID),
	}
}

// Fail writes an error envelope. err is logged but only its text reaches the
// client as details when the status is below 500.
func Fail(c *gin.Context, statusCode int, message string, err error) {
	env := Error(c, statusCode, message)
	if err != nil {
		if statusCode < http.StatusInternalServerError {
			env.Details = err.Error()
		}
		logger.Warn("API error",
			zap.String("message", message),
			zap.Error(err),
			zap.Int("status_code", statusCode),
			zap.String("request_id", env.RequestID))
	}
	c.AbortWithStatusJSON(statusCode, env)
}
