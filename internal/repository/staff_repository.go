package repository

import (
	"errors"

	"github.com/shopfront-next/internal/models"

	"gorm.io/gorm"
)

// StaffRepository 运营账号数据访问接口
type StaffRepository interface {
	GetByUsername(username string) (*models.Staff, error)
	GetByID(id uint) (*models.Staff, error)
}

// GormStaffRepository 运营账号仓储 GORM 实现
type GormStaffRepository struct {
	db *gorm.DB
}

// NewGormStaffRepository 创建运营账号仓储
func NewGormStaffRepository(db *gorm.DB) *GormStaffRepository {
	return &GormStaffRepository{db: db}
}

// GetByUsername 按用户名查询，未找到返回 nil
func (r *GormStaffRepository) GetByUsername(username string) (*models.Staff, error) {
	var staff models.Staff
	err := r.db.Where("username = ?", username).First(&staff).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &staff, nil
}

// GetByID 按 ID 查询，未找到返回 nil
func (r *GormStaffRepository) GetByID(id uint) (*models.Staff, error) {
	var staff models.Staff
	err := r.db.First(&staff, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &staff, nil
}
