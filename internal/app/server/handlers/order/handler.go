package order

import "chatorder/internal/app/domains/services/svorder"

// Handler 订单接口处理器
type Handler struct {
	orderSvc *svorder.OrderService
}

// NewHandler 创建订单处理器
func NewHandler(orderSvc *svorder.OrderService) *Handler {
	return &Handler{orderSvc: orderSvc}
}
