package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"frotaweb/pkg/logger"
)

// GinZapLogger creates a Gin logging middleware using zap directly
func GinZapLogger(zapLogger *zap.Logger) gin.HandlerFunc {
	if zapLogger == nil {
		zapLogger = logger.Logger
	}
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.Request.URL.Path
		if path == "/health" || path == "/favicon.ico" || path == "/robots.txt" {
			return
		}
		// Static assets and swagger resources are too noisy to log
		if strings.HasPrefix(path, "/static/") || strings.HasPrefix(path, "/imagens/") {
			return
		}
		if strings.HasPrefix(path, "/swagger/") && path != "/swagger/index.html" {
			return
		}

		latency := time.Since(start)

		fields := []zap.Field{
			zap.String("request_id", c.GetString(ContextKeyRequestID)),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("ip", c.ClientIP()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.Int("response_size", c.Writer.Size()),
		}

		if locale := c.GetString(ContextKeyLocale); locale != "" {
			fields = append(fields, zap.String("locale", locale))
		}

		if gin.Mode() == gin.DebugMode {
			fields = append(fields, zap.String("user_agent", c.Request.UserAgent()))
		}

		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("error", c.Errors.String()))
		}

		// Query strings are left out: form redirects may carry visitor data.
		statusCode := c.Writer.Status()
		switch {
		case statusCode >= 500:
			zapLogger.Error("Internal server error", fields...)
		case statusCode >= 400:
			zapLogger.Warn("Client request error", fields...)
		case statusCode >= 300:
			zapLogger.Info("Request redirect", fields...)
		default:
			zapLogger.Debug("HTTP request completed", fields...)
		}
	}
}
