package entity

import "time"

// Vendor 卖家实体
type Vendor struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"`
	Mode      string    `gorm:"column:mode;type:varchar(16);not null"` // groupbuy / proxy
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

// TableName 指定表名
func (Vendor) TableName() string {
	return "vendors"
}
