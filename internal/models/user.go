package models

import "time"

// User 店铺顾客，账号体系在外部身份服务维护
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ExternalID string    `gorm:"size:64;uniqueIndex" json:"external_id"`
	Email      string    `gorm:"size:255;index" json:"email"`
	FullName   string    `gorm:"size:255" json:"full_name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName 表名
func (User) TableName() string {
	return "users"
}
