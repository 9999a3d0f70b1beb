package models

import "time"

// OrderItem 订单明细，PriceAtPurchase 为下单时的价格快照
type OrderItem struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	OrderID         uint      `gorm:"not null;index" json:"order_id"`
	ProductID       uint      `gorm:"not null;index" json:"product_id"`
	Quantity        int       `gorm:"not null" json:"quantity"`
	PriceAtPurchase Money     `gorm:"type:decimal(12,2);not null" json:"price_at_purchase"`
	CreatedAt       time.Time `json:"created_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName 表名
func (OrderItem) TableName() string {
	return "order_items"
}

// LineTotal 该明细小计
func (i *OrderItem) LineTotal() Money {
	return i.PriceAtPurchase.MulInt(int64(i.Quantity))
}
