package etform

import (
	"errors"
	"time"
)

// 错误定义
var (
	ErrInvalidFormID   = errors.New("invalid form ID")
	ErrInvalidVendorID = errors.New("invalid vendor ID")
	ErrInvalidTitle    = errors.New("form title cannot be empty")
	ErrNoFields        = errors.New("form must have at least one field")
)

// Form 开团表单聚合根
type Form struct {
	ID            int64     // 表单ID（雪花ID）
	VendorID      int64     // 卖家ID
	Title         string    // 表单标题
	Fields        []Field   // 字段描述
	Deadline      string    // 截止时间原文片段
	OrderDeadline string    // 结单时间 "2006-01-02 15:04"
	CreatedAt     time.Time // 创建时间
	UpdatedAt     time.Time // 更新时间
}

// Field 表单字段（值对象）
type Field struct {
	Name    string   // 字段键名
	Label   string   // 展示标签
	Options []string // 静态选项（商品类字段提供品名清单）
}

// NewForm 创建表单（工厂方法）
func NewForm(id, vendorID int64, title string, fields []Field) (*Form, error) {
	if id <= 0 {
		return nil, ErrInvalidFormID
	}
	if vendorID <= 0 {
		return nil, ErrInvalidVendorID
	}
	if title == "" {
		return nil, ErrInvalidTitle
	}
	if len(fields) == 0 {
		return nil, ErrNoFields
	}

	now := time.Now()
	return &Form{
		ID:        id,
		VendorID:  vendorID,
		Title:     title,
		Fields:    fields,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
