package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger logs one line per request through the global zap logger.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if staff := c.GetHeader(HeaderStaffID); staff != "" {
			fields = append(fields, zap.String("staff_id", staff))
		}
		switch status := c.Writer.Status(); {
		case status >= 500:
			zap.L().Error("[http] request", fields...)
		case status >= 400:
			zap.L().Warn("[http] request", fields...)
		default:
			zap.L().Info("[http] request", fields...)
		}
	}
}
