package rpform

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"chatorder/internal/app/domains/entity/etform"
	"chatorder/internal/entity"
)

// FormRepositoryImpl 表单仓储实现（MySQL）
type FormRepositoryImpl struct {
	db *gorm.DB
}

// NewFormRepository 创建表单仓储实例
func NewFormRepository(db *gorm.DB) FormRepository {
	return &FormRepositoryImpl{db: db}
}

// Create 创建表单，字段描述序列化进 JSON 列
func (r *FormRepositoryImpl) Create(ctx context.Context, form *etform.Form) error {
	po, err := r.toGormModel(form)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(po).Error
}

// GetByID 根据ID查询表单
func (r *FormRepositoryImpl) GetByID(ctx context.Context, formID int64) (*etform.Form, error) {
	var po entity.Form
	err := r.db.WithContext(ctx).Where("id = ?", formID).First(&po).Error
	if err != nil {
		return nil, err
	}
	return r.toDomainModel(&po)
}

// toGormModel 领域对象转换为 GORM 模型
func (r *FormRepositoryImpl) toGormModel(form *etform.Form) (*entity.Form, error) {
	fieldsJSON, err := json.Marshal(form.Fields)
	if err != nil {
		return nil, err
	}

	return &entity.Form{
		ID:            form.ID,
		VendorID:      form.VendorID,
		Title:         form.Title,
		Fields:        fieldsJSON,
		Deadline:      form.Deadline,
		OrderDeadline: form.OrderDeadline,
		CreatedAt:     form.CreatedAt,
		UpdatedAt:     form.UpdatedAt,
	}, nil
}

// toDomainModel GORM 模型转换为领域对象
func (r *FormRepositoryImpl) toDomainModel(po *entity.Form) (*etform.Form, error) {
	var fields []etform.Field
	if err := json.Unmarshal(po.Fields, &fields); err != nil {
		return nil, err
	}

	return &etform.Form{
		ID:            po.ID,
		VendorID:      po.VendorID,
		Title:         po.Title,
		Fields:        fields,
		Deadline:      po.Deadline,
		OrderDeadline: po.OrderDeadline,
		CreatedAt:     po.CreatedAt,
		UpdatedAt:     po.UpdatedAt,
	}, nil
}
