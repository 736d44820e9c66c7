package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Form 开团表单实体
type Form struct {
	ID       int64  `gorm:"column:id;primaryKey"`
	VendorID int64  `gorm:"column:vendor_id;not null;index:idx_vendor"`
	Title    string `gorm:"column:title;type:varchar(255);not null"`

	// 字段描述（含商品类字段的静态选项）
	Fields datatypes.JSON `gorm:"column:fields;type:json;not null"`

	// 截止信息（原文片段 / "2006-01-02 15:04"）
	Deadline      string `gorm:"column:deadline;type:varchar(64)"`
	OrderDeadline string `gorm:"column:order_deadline;type:varchar(32)"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定表名
func (Form) TableName() string {
	return "forms"
}
