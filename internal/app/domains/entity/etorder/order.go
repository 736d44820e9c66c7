package etorder

import (
	"errors"
	"time"
)

// 错误定义
var (
	ErrInvalidOrderID    = errors.New("order ID cannot be empty")
	ErrInvalidVendorID   = errors.New("invalid vendor ID")
	ErrInvalidRawMessage = errors.New("raw message cannot be empty")
	ErrNilParseResult    = errors.New("parse result cannot be nil")
)

// Order 订单聚合根（领域对象）
type Order struct {
	ID            string       // 订单ID (UUID)
	VendorID      int64        // 卖家ID
	FormID        int64        // 表单ID（可为 0，表示无表单直收）
	RawMessage    string       // 原始聊天消息
	Source        string       // 消息来源渠道
	Status        OrderStatus  // 订单状态
	Items         []Item       // 解析出的品项
	CustomerName  string       // 客户称呼
	CustomerPhone string       // 客户电话
	ErrorMessage  string       // 解析失败原因
	CreatedAt     time.Time    // 创建时间
	UpdatedAt     time.Time    // 更新时间
}

// OrderStatus 订单状态
type OrderStatus string

const (
	OrderStatusReceived OrderStatus = "RECEIVED" // 已接收，等待解析
	OrderStatusParsed   OrderStatus = "PARSED"   // 解析完成
	OrderStatusFailed   OrderStatus = "FAILED"   // 解析失败，转人工
)

// Item 品项（值对象）
type Item struct {
	ProductName string
	Quantity    int
}

// ParseResult 解析结果（值对象）
type ParseResult struct {
	Items         []Item
	CustomerName  string
	CustomerPhone string
}

// NewOrder 创建订单（工厂方法）
func NewOrder(id string, vendorID, formID int64, rawMessage, source string) (*Order, error) {
	if id == "" {
		return nil, ErrInvalidOrderID
	}
	if vendorID <= 0 {
		return nil, ErrInvalidVendorID
	}
	if rawMessage == "" {
		return nil, ErrInvalidRawMessage
	}

	now := time.Now()
	return &Order{
		ID:         id,
		VendorID:   vendorID,
		FormID:     formID,
		RawMessage: rawMessage,
		Source:     source,
		Status:     OrderStatusReceived,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// ApplyParseResult 应用解析结果（领域行为）
func (o *Order) ApplyParseResult(result *ParseResult) error {
	if result == nil {
		return ErrNilParseResult
	}
	o.Items = result.Items
	o.CustomerName = result.CustomerName
	o.CustomerPhone = result.CustomerPhone
	o.Status = OrderStatusParsed
	o.ErrorMessage = ""
	o.UpdatedAt = time.Now()
	return nil
}

// MarkAsFailed 标记为失败，保留原因供人工处理（领域行为）
func (o *Order) MarkAsFailed(reason string) {
	o.Status = OrderStatusFailed
	o.ErrorMessage = reason
	o.UpdatedAt = time.Now()
}
