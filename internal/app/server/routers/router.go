package routers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chatorder/internal/app/pkg/logger"
	"chatorder/internal/app/server/handlers/form"
	"chatorder/internal/app/server/handlers/order"
	"chatorder/internal/app/server/handlers/post"
	"chatorder/internal/app/server/handlers/vendor"
	"chatorder/internal/app/server/middlewares"
)

// Handlers 路由所需的全部处理器
type Handlers struct {
	Vendor *vendor.Handler
	Form   *form.Handler
	Order  *order.Handler
	Post   *post.Handler
}

// SetupRouter 装配路由
func SetupRouter(h *Handlers, log logger.Logger) *gin.Engine {
	engine := gin.New()

	engine.Use(
		middlewares.Recovery(log),
		middlewares.RequestLogger(log),
		middlewares.CORS(),
	)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := engine.Group("/api/v1")
	{
		vendors := v1.Group("/vendors")
		{
			vendors.POST("", h.Vendor.CreateVendor)
			vendors.GET("/:id", h.Vendor.GetVendor)
		}

		forms := v1.Group("/forms")
		{
			forms.POST("", h.Form.CreateForm)
			forms.GET("/:id", h.Form.GetForm)
		}

		orders := v1.Group("/orders")
		{
			orders.POST("", h.Order.CreateOrder)
			orders.GET("", h.Order.ListOrders)
			orders.GET("/:id", h.Order.GetOrder)
		}

		posts := v1.Group("/posts")
		{
			posts.POST("/analyze", h.Post.AnalyzePost)
		}
	}

	return engine
}
