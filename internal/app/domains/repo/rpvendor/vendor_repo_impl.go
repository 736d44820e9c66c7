package rpvendor

import (
	"context"

	"gorm.io/gorm"

	"chatorder/internal/app/domains/entity/etvendor"
	"chatorder/internal/entity"
)

// VendorRepositoryImpl 卖家仓储实现（MySQL）
type VendorRepositoryImpl struct {
	db *gorm.DB
}

// NewVendorRepository 创建卖家仓储实例
func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &VendorRepositoryImpl{db: db}
}

// Create 创建卖家
func (r *VendorRepositoryImpl) Create(ctx context.Context, vendor *etvendor.Vendor) error {
	po := &entity.Vendor{
		ID:   vendor.ID,
		Name: vendor.Name,
		Mode: vendor.Mode,
	}
	if err := r.db.WithContext(ctx).Create(po).Error; err != nil {
		return err
	}
	// 将数据库生成的ID回写到领域对象
	vendor.ID = po.ID
	return nil
}

// GetByID 根据ID查询卖家
func (r *VendorRepositoryImpl) GetByID(ctx context.Context, vendorID int64) (*etvendor.Vendor, error) {
	var po entity.Vendor
	err := r.db.WithContext(ctx).Where("id = ?", vendorID).First(&po).Error
	if err != nil {
		return nil, err
	}
	return etvendor.NewVendor(po.ID, po.Name, po.Mode)
}

// Exists 检查卖家是否存在
func (r *VendorRepositoryImpl) Exists(ctx context.Context, vendorID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Vendor{}).Where("id = ?", vendorID).Count(&count).Error
	return count > 0, err
}
