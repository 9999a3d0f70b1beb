package models

import "time"

// Return 退货申请，可针对整单或单条明细
type Return struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OrderID     uint      `gorm:"not null;index" json:"order_id"`
	OrderItemID *uint     `gorm:"index" json:"order_item_id,omitempty"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Status      string    `gorm:"size:32;not null;index" json:"status"`
	Reason      string    `gorm:"type:text;not null" json:"reason"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Order     *Order     `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	OrderItem *OrderItem `gorm:"foreignKey:OrderItemID" json:"order_item,omitempty"`
}

// TableName 表名
func (Return) TableName() string {
	return "returns"
}
