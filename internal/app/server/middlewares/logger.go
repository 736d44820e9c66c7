package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"

	"chatorder/internal/app/pkg/logger"
)

// RequestLogger 请求日志中间件
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.InfoContext(c.Request.Context(), "http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
		)
	}
}
