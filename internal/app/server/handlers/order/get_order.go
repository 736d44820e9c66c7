package order

import (
	"errors"

	"github.com/gin-gonic/gin"

	"chatorder/internal/app/domains/apimodel/response"
	"chatorder/internal/app/pkg/errorx"
	"chatorder/internal/app/pkg/ginx"
)

// GetOrder 查询订单（轮询解析结果入口）
// GET /api/v1/orders/:id
func (h *Handler) GetOrder(c *gin.Context) {
	orderID := c.Param("id")
	if orderID == "" {
		ginx.BadRequest(c, "invalid order id")
		return
	}

	ord, err := h.orderSvc.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, errorx.ErrOrderNotFound) {
			ginx.NotFound(c, "order not found")
			return
		}
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, response.FromOrder(ord))
}
