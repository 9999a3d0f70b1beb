package models

import "time"

// CartItem 购物车条目，同一用户同一商品唯一
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName 表名
func (CartItem) TableName() string {
	return "cart_items"
}

// LineTotal 该条目小计
func (c *CartItem) LineTotal() Money {
	if c.Product == nil {
		return Money{}
	}
	return c.Product.Price.MulInt(int64(c.Quantity))
}
