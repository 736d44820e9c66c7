package svvendor

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"chatorder/internal/app/domains/entity/etvendor"
	"chatorder/internal/app/domains/repo/rpvendor"
	"chatorder/internal/app/pkg/errorx"
)

// VendorService 卖家服务
type VendorService struct {
	vendorRepo rpvendor.VendorRepository
}

// NewVendorService 创建卖家服务
func NewVendorService(vendorRepo rpvendor.VendorRepository) *VendorService {
	return &VendorService{vendorRepo: vendorRepo}
}

// CreateVendor 创建卖家
func (s *VendorService) CreateVendor(ctx context.Context, name, mode string) (*etvendor.Vendor, error) {
	vendor, err := etvendor.NewVendor(0, name, mode)
	if err != nil {
		return nil, err
	}

	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, err
	}

	return vendor, nil
}

// GetVendor 查询卖家
func (s *VendorService) GetVendor(ctx context.Context, vendorID int64) (*etvendor.Vendor, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.ErrVendorNotFound
		}
		return nil, err
	}
	return vendor, nil
}
