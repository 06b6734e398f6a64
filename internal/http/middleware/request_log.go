package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"fitpick/internal/logger"
)

// RequestLogger logs one entry per request, levelled by response status.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if log == nil {
			return
		}

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		reqLog := log
		if id := c.GetString(KeyRequestID); id != "" {
			reqLog = reqLog.With("request_id", id)
		}
		if id := c.GetString(KeyTraceID); id != "" {
			reqLog = reqLog.With("trace_id", id)
		}

		fields := []interface{}{
			"method", strings.ToUpper(c.Request.Method),
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "error", c.Errors.Last().Error())
		}

		switch {
		case status >= 500:
			reqLog.Error("HTTP request", fields...)
		case status >= 400:
			reqLog.Warn("HTTP request", fields...)
		default:
			reqLog.Info("HTTP request", fields...)
		}
	}
}
