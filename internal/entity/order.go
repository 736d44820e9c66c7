package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Order 订单实体（聊天消息 + 解析结果）
type Order struct {
	// 基础字段
	ID       string `gorm:"column:id;primaryKey;type:varchar(64)"`
	VendorID int64  `gorm:"column:vendor_id;not null;index:idx_vendor_status"`
	FormID   int64  `gorm:"column:form_id;index:idx_form"`

	// 原始消息
	RawMessage string `gorm:"column:raw_message;type:text;not null"`
	Source     string `gorm:"column:source;type:varchar(32)"`

	// 解析状态与结果
	Status        string         `gorm:"column:status;type:varchar(16);not null;default:'RECEIVED';index:idx_vendor_status"`
	Items         datatypes.JSON `gorm:"column:items;type:json"`
	CustomerName  string         `gorm:"column:customer_name;type:varchar(64)"`
	CustomerPhone string         `gorm:"column:customer_phone;type:varchar(32)"`
	ErrorMessage  string         `gorm:"column:error_message;type:varchar(255)"`

	// 时间戳
	CreatedAt time.Time `gorm:"column:created_at;not null;index:idx_created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}

// 订单状态常量
const (
	OrderStatusReceived = "RECEIVED"
	OrderStatusParsed   = "PARSED"
	OrderStatusFailed   = "FAILED"
)
