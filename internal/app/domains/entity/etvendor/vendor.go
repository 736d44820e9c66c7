package etvendor

import (
	"errors"
	"time"
)

// 错误定义
var (
	ErrInvalidVendorID = errors.New("invalid vendor ID")
	ErrInvalidName     = errors.New("vendor name cannot be empty")
	ErrInvalidMode     = errors.New("vendor mode must be groupbuy or proxy")
)

// 经营模式常量
const (
	ModeGroupBuy = "groupbuy"
	ModeProxy    = "proxy"
)

// Vendor 卖家实体
type Vendor struct {
	ID        int64     // 卖家ID
	Name      string    // 卖家名称
	Mode      string    // 经营模式: groupbuy / proxy
	CreatedAt time.Time // 创建时间
}

// NewVendor 创建卖家（工厂方法）
// id 为 0 表示新建，ID 由数据库生成
func NewVendor(id int64, name, mode string) (*Vendor, error) {
	if id < 0 {
		return nil, ErrInvalidVendorID
	}
	if name == "" {
		return nil, ErrInvalidName
	}
	if mode != ModeGroupBuy && mode != ModeProxy {
		return nil, ErrInvalidMode
	}

	return &Vendor{
		ID:        id,
		Name:      name,
		Mode:      mode,
		CreatedAt: time.Now(),
	}, nil
}
