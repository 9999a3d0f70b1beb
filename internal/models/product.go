package models

import "time"

// Product 商品
type Product struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"size:255;not null;index" json:"name"`
	Description    string    `gorm:"type:text" json:"description"`
	Price          Money     `gorm:"type:decimal(12,2);not null" json:"price"`
	ImageURL       string    `gorm:"size:512" json:"image_url"`
	Category       string    `gorm:"size:64;index" json:"category"`
	InventoryCount int       `gorm:"not null;default:0" json:"inventory_count"`
	Featured       bool      `gorm:"not null;default:false;index" json:"featured"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName 表名
func (Product) TableName() string {
	return "products"
}
