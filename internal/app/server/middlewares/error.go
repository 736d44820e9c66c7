package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chatorder/internal/app/pkg/ginx"
	"chatorder/internal/app/pkg/logger"
)

// Recovery panic 恢复中间件，返回统一 500 响应
func Recovery(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.ErrorContext(c.Request.Context(), "panic recovered",
					"path", c.Request.URL.Path, "panic", r)
				ginx.Error(c, http.StatusInternalServerError, "Internal server error")
				c.Abort()
			}
		}()
		c.Next()
	}
}
