package rpvendor

import (
	"context"

	"chatorder/internal/app/domains/entity/etvendor"
)

// VendorRepository 卖家仓储接口（只定义，不实现）
type VendorRepository interface {
	// Create 创建卖家
	Create(ctx context.Context, vendor *etvendor.Vendor) error

	// GetByID 根据ID查询卖家
	GetByID(ctx context.Context, vendorID int64) (*etvendor.Vendor, error)

	// Exists 检查卖家是否存在
	Exists(ctx context.Context, vendorID int64) (bool, error)
}
