package order

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"chatorder/internal/app/domains/apimodel/request"
	"chatorder/internal/app/domains/apimodel/response"
	"chatorder/internal/app/domains/entity/etorder"
	"chatorder/internal/app/pkg/errorx"
	"chatorder/internal/app/pkg/ginx"
)

// CreateOrder 创建订单（聊天消息进入解析流程）
// POST /api/v1/orders?wait=10
// wait 为 Smart Wait 等待秒数，0 或缺省不等待；超时返回 3001 引导轮询
func (h *Handler) CreateOrder(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	waitSec, _ := strconv.Atoi(c.Query("wait"))
	wait := time.Duration(waitSec) * time.Second

	ord, err := h.orderSvc.CreateOrder(c.Request.Context(), &req, wait)
	if err != nil {
		switch {
		case errors.Is(err, errorx.ErrVendorNotFound):
			ginx.NotFound(c, "vendor not found")
		case errors.Is(err, errorx.ErrFormNotFound):
			ginx.NotFound(c, "form not found")
		default:
			ginx.InternalError(c, err.Error())
		}
		return
	}

	// Smart Wait 超时时订单仍在解析中
	if wait > 0 && ord.Status == etorder.OrderStatusReceived {
		ginx.Processing(c, ord.ID, fmt.Sprintf("/api/v1/orders/%s", ord.ID))
		return
	}

	ginx.Success(c, response.FromOrder(ord))
}
