package rpform

import (
	"context"

	"chatorder/internal/app/domains/entity/etform"
)

// FormRepository 表单仓储接口（只定义，不实现）
type FormRepository interface {
	// Create 创建表单
	Create(ctx context.Context, form *etform.Form) error

	// GetByID 根据ID查询表单
	GetByID(ctx context.Context, formID int64) (*etform.Form, error)
}
