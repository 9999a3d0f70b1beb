package repository

import (
	"errors"

	"github.com/shopfront-next/internal/constants"
	"github.com/shopfront-next/internal/models"

	"gorm.io/gorm"
)

// ReturnRepository 退货数据访问接口
type ReturnRepository interface {
	Create(ret *models.Return) error
	GetByID(id uint) (*models.Return, error)
	ListByUser(userID uint, filter ReturnFilter) ([]models.Return, int64, error)
	List(filter ReturnFilter) ([]models.Return, int64, error)
	// HasActive 判断订单（或其中一条明细）是否已有未关闭的退货
	HasActive(orderID uint, orderItemID *uint) (bool, error)
	UpdateStatus(id uint, status string) error
	WithTx(tx *gorm.DB) ReturnRepository
}

// GormReturnRepository 退货仓储 GORM 实现
type GormReturnRepository struct {
	db *gorm.DB
}

// NewGormReturnRepository 创建退货仓储
func NewGormReturnRepository(db *gorm.DB) *GormReturnRepository {
	return &GormReturnRepository{db: db}
}

// WithTx 返回绑定事务的仓储实例
func (r *GormReturnRepository) WithTx(tx *gorm.DB) ReturnRepository {
	return &GormReturnRepository{db: tx}
}

// Create 创建退货申请
func (r *GormReturnRepository) Create(ret *models.Return) error {
	return r.db.Create(ret).Error
}

// GetByID 按 ID 查询，未找到返回 nil
func (r *GormReturnRepository) GetByID(id uint) (*models.Return, error) {
	var ret models.Return
	err := r.db.Preload("Order").Preload("OrderItem").First(&ret, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ret, nil
}

// ListByUser 用户退货列表
func (r *GormReturnRepository) ListByUser(userID uint, filter ReturnFilter) ([]models.Return, int64, error) {
	return r.list(r.db.Where("user_id = ?", userID), filter)
}

// List 全量退货列表（运营后台）
func (r *GormReturnRepository) List(filter ReturnFilter) ([]models.Return, int64, error) {
	return r.list(r.db, filter)
}

func (r *GormReturnRepository) list(base *gorm.DB, filter ReturnFilter) ([]models.Return, int64, error) {
	query := base.Model(&models.Return{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var returns []models.Return
	err := applyPagination(query, filter.Page, filter.PageSize).
		Order("created_at DESC, id DESC").
		Find(&returns).Error
	if err != nil {
		return nil, 0, err
	}
	return returns, total, nil
}

// HasActive rejected 之外的状态均视为占用中（pending/approved/completed）
func (r *GormReturnRepository) HasActive(orderID uint, orderItemID *uint) (bool, error) {
	query := r.db.Model(&models.Return{}).
		Where("order_id = ?", orderID).
		Where("status <> ?", constants.ReturnStatusRejected)
	if orderItemID != nil {
		query = query.Where("order_item_id = ?", *orderItemID)
	} else {
		query = query.Where("order_item_id IS NULL")
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateStatus 更新退货状态
func (r *GormReturnRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Return{}).
		Where("id = ?", id).
		Update("status", status).Error
}
