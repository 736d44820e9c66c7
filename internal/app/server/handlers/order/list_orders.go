package order

import (
	"github.com/gin-gonic/gin"

	"chatorder/internal/app/domains/apimodel/request"
	"chatorder/internal/app/domains/apimodel/response"
	"chatorder/internal/app/pkg/ginx"
)

// ListOrders 查询订单列表
// GET /api/v1/orders?vendor_id=1&page=1&limit=20
func (h *Handler) ListOrders(c *gin.Context) {
	var req request.ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	orders, total, err := h.orderSvc.ListOrders(c.Request.Context(), req.VendorID, req.Page, req.Limit)
	if err != nil {
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, response.FromOrderList(orders, total, req.Page, req.Limit))
}
