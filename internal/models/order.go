package models

import "time"

// Order 订单，total 始终等于明细快照金额之和
type Order struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	OrderNo          string    `gorm:"size:64;not null;uniqueIndex" json:"order_no"`
	UserID           uint      `gorm:"not null;index" json:"user_id"`
	Status           string    `gorm:"size:32;not null;index" json:"status"`
	Total            Money     `gorm:"type:decimal(12,2);not null" json:"total"`
	ShippingAddress  string    `gorm:"type:text;not null" json:"shipping_address"`
	PaymentReference string    `gorm:"size:128" json:"payment_reference,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// TableName 表名
func (Order) TableName() string {
	return "orders"
}
