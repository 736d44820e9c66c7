package svform

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"chatorder/internal/app/domains/apimodel/request"
	"chatorder/internal/app/domains/entity/etform"
	"chatorder/internal/app/domains/repo/rpform"
	"chatorder/internal/app/domains/repo/rpvendor"
	"chatorder/internal/app/pkg/errorx"
	"chatorder/internal/app/pkg/idgen"
)

// FormService 表单服务
type FormService struct {
	formRepo   rpform.FormRepository
	vendorRepo rpvendor.VendorRepository
}

// NewFormService 创建表单服务
func NewFormService(formRepo rpform.FormRepository, vendorRepo rpvendor.VendorRepository) *FormService {
	return &FormService{
		formRepo:   formRepo,
		vendorRepo: vendorRepo,
	}
}

// CreateForm 创建开团表单
func (s *FormService) CreateForm(ctx context.Context, req *request.CreateFormRequest) (*etform.Form, error) {
	exists, err := s.vendorRepo.Exists(ctx, req.VendorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errorx.ErrVendorNotFound
	}

	form, err := etform.NewForm(idgen.GenerateID(), req.VendorID, req.Title, req.ToFormFields())
	if err != nil {
		return nil, err
	}
	form.Deadline = req.Deadline
	form.OrderDeadline = req.OrderDeadline

	if err := s.formRepo.Create(ctx, form); err != nil {
		return nil, err
	}

	return form, nil
}

// GetForm 查询表单
func (s *FormService) GetForm(ctx context.Context, formID int64) (*etform.Form, error) {
	form, err := s.formRepo.GetByID(ctx, formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.ErrFormNotFound
		}
		return nil, err
	}
	return form, nil
}
