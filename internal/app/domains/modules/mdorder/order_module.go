package mdorder

import (
	"context"

	"chatorder/internal/app/domains/entity/etform"
	"chatorder/internal/app/domains/entity/etorder"
	"chatorder/internal/app/domains/entity/etvendor"
	"chatorder/internal/app/domains/repo/rpform"
	"chatorder/internal/app/domains/repo/rporder"
	"chatorder/internal/app/domains/repo/rpvendor"
	"chatorder/internal/model"
)

// OrderModule 订单模块（数据编排层）
type OrderModule struct {
	orderRepo  rporder.OrderRepository
	formRepo   rpform.FormRepository
	vendorRepo rpvendor.VendorRepository
}

// NewOrderModule 创建订单模块
func NewOrderModule(
	orderRepo rporder.OrderRepository,
	formRepo rpform.FormRepository,
	vendorRepo rpvendor.VendorRepository,
) *OrderModule {
	return &OrderModule{
		orderRepo:  orderRepo,
		formRepo:   formRepo,
		vendorRepo: vendorRepo,
	}
}

// CreateOrder 创建订单（数据操作）
func (m *OrderModule) CreateOrder(ctx context.Context, order *etorder.Order) error {
	return m.orderRepo.Create(ctx, order)
}

// GetOrder 查询订单
func (m *OrderModule) GetOrder(ctx context.Context, orderID string) (*etorder.Order, error) {
	return m.orderRepo.GetByID(ctx, orderID)
}

// ListOrders 查询订单列表
func (m *OrderModule) ListOrders(ctx context.Context, vendorID int64, page, limit int) ([]*etorder.Order, int64, error) {
	return m.orderRepo.List(ctx, vendorID, page, limit)
}

// UpdateParseResult 更新解析结果
func (m *OrderModule) UpdateParseResult(ctx context.Context, orderID string, result *model.ParseResultData, status string, errorMsg string) error {
	return m.orderRepo.UpdateParseResult(ctx, orderID, result, status, errorMsg)
}

// GetVendor 查询卖家
func (m *OrderModule) GetVendor(ctx context.Context, vendorID int64) (*etvendor.Vendor, error) {
	return m.vendorRepo.GetByID(ctx, vendorID)
}

// VendorExists 检查卖家是否存在
func (m *OrderModule) VendorExists(ctx context.Context, vendorID int64) (bool, error) {
	return m.vendorRepo.Exists(ctx, vendorID)
}

// GetForm 查询表单
func (m *OrderModule) GetForm(ctx context.Context, formID int64) (*etform.Form, error) {
	return m.formRepo.GetByID(ctx, formID)
}
