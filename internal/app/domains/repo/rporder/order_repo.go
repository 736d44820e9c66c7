package rporder

import (
	"context"

	"chatorder/internal/app/domains/entity/etorder"
	"chatorder/internal/model"
)

// OrderRepository 订单仓储接口（只定义，不实现）
type OrderRepository interface {
	// Create 创建订单
	Create(ctx context.Context, order *etorder.Order) error

	// GetByID 根据ID查询订单
	GetByID(ctx context.Context, orderID string) (*etorder.Order, error)

	// UpdateParseResult 更新解析结果（支持成功/失败两种情况）
	// result: 解析结果（成功时传入，失败时传 nil）
	// status: 订单状态（PARSED 或 FAILED）
	// errorMsg: 失败原因（失败时传入）
	UpdateParseResult(ctx context.Context, orderID string, result *model.ParseResultData, status string, errorMsg string) error

	// List 查询订单列表
	List(ctx context.Context, vendorID int64, page, limit int) ([]*etorder.Order, int64, error)
}
