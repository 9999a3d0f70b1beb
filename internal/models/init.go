package models

import (
	"errors"
	"fmt"

	"github.com/shopfront-next/internal/constants"
	"github.com/shopfront-next/internal/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// InitDefaultStaff 如无任何运营账号则创建默认账号
func InitDefaultStaff(username, password string) error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}

	var existing Staff
	err := DB.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("query staff: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	staff := Staff{
		Username: username,
		Password: string(hashed),
		Role:     constants.StaffRoleOps,
		Active:   true,
	}
	if err := DB.Create(&staff).Error; err != nil {
		return fmt.Errorf("create default staff: %w", err)
	}

	logger.Infow("default_staff_created", "username", username, "role", staff.Role)
	return nil
}
