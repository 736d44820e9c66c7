package rporder

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"chatorder/internal/app/domains/entity/etorder"
	"chatorder/internal/entity"
	"chatorder/internal/model"
)

// OrderRepositoryImpl 订单仓储实现（MySQL）
type OrderRepositoryImpl struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储实例
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

// Create 创建订单，将领域对象转换为 GORM 模型后存储
func (r *OrderRepositoryImpl) Create(ctx context.Context, order *etorder.Order) error {
	po, err := r.toGormModel(order)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(po).Error
}

// GetByID 根据ID查询订单，将 GORM 模型转换为领域对象
func (r *OrderRepositoryImpl) GetByID(ctx context.Context, orderID string) (*etorder.Order, error) {
	var po entity.Order
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&po).Error
	if err != nil {
		return nil, err
	}
	return r.toDomainModel(&po)
}

// UpdateParseResult 更新解析结果（成功/失败两种情况）
func (r *OrderRepositoryImpl) UpdateParseResult(ctx context.Context, orderID string, result *model.ParseResultData, status string, errorMsg string) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}

	if result != nil {
		itemsJSON, err := json.Marshal(result.Items)
		if err != nil {
			return err
		}
		updates["items"] = itemsJSON
		updates["customer_name"] = result.CustomerName
		updates["customer_phone"] = result.CustomerPhone
	}

	if errorMsg != "" {
		updates["error_message"] = errorMsg
	}

	return r.db.WithContext(ctx).
		Model(&entity.Order{}).
		Where("id = ?", orderID).
		Updates(updates).Error
}

// List 分页查询订单列表
func (r *OrderRepositoryImpl) List(ctx context.Context, vendorID int64, page, limit int) ([]*etorder.Order, int64, error) {
	var total int64
	var pos []entity.Order

	query := r.db.WithContext(ctx).Model(&entity.Order{})
	if vendorID > 0 {
		query = query.Where("vendor_id = ?", vendorID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&pos).Error; err != nil {
		return nil, 0, err
	}

	orders := make([]*etorder.Order, 0, len(pos))
	for i := range pos {
		order, err := r.toDomainModel(&pos[i])
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, order)
	}

	return orders, total, nil
}

// toGormModel 领域对象转换为 GORM 模型
func (r *OrderRepositoryImpl) toGormModel(order *etorder.Order) (*entity.Order, error) {
	po := &entity.Order{
		ID:            order.ID,
		VendorID:      order.VendorID,
		FormID:        order.FormID,
		RawMessage:    order.RawMessage,
		Source:        order.Source,
		Status:        string(order.Status),
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		ErrorMessage:  order.ErrorMessage,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}

	if len(order.Items) > 0 {
		itemsJSON, err := json.Marshal(order.Items)
		if err != nil {
			return nil, err
		}
		po.Items = itemsJSON
	}

	return po, nil
}

// toDomainModel GORM 模型转换为领域对象
func (r *OrderRepositoryImpl) toDomainModel(po *entity.Order) (*etorder.Order, error) {
	order := &etorder.Order{
		ID:            po.ID,
		VendorID:      po.VendorID,
		FormID:        po.FormID,
		RawMessage:    po.RawMessage,
		Source:        po.Source,
		Status:        etorder.OrderStatus(po.Status),
		CustomerName:  po.CustomerName,
		CustomerPhone: po.CustomerPhone,
		ErrorMessage:  po.ErrorMessage,
		CreatedAt:     po.CreatedAt,
		UpdatedAt:     po.UpdatedAt,
	}

	if len(po.Items) > 0 {
		var items []etorder.Item
		if err := json.Unmarshal(po.Items, &items); err != nil {
			return nil, err
		}
		order.Items = items
	}

	return order, nil
}
