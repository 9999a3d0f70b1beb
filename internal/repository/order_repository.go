package repository

import (
	"errors"

	"github.com/shopfront-next/internal/models"

	"gorm.io/gorm"
)

// OrderRepository 订单数据访问接口
type OrderRepository interface {
	// Create 创建订单及其全部明细
	Create(order *models.Order, items []models.OrderItem) error
	GetByID(id uint) (*models.Order, error)
	GetByIDAndUser(id, userID uint) (*models.Order, error)
	ListByUser(userID uint, filter OrderFilter) ([]models.Order, int64, error)
	List(filter OrderFilter) ([]models.Order, int64, error)
	UpdateStatus(id uint, status string) error
	UpdatePaymentReference(id uint, reference string) error
	WithTx(tx *gorm.DB) OrderRepository
}

// GormOrderRepository 订单仓储 GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository 创建订单仓储
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx 返回绑定事务的仓储实例
func (r *GormOrderRepository) WithTx(tx *gorm.DB) OrderRepository {
	return &GormOrderRepository{db: tx}
}

// Create 先写订单取得 ID，再批量写入明细
func (r *GormOrderRepository) Create(order *models.Order, items []models.OrderItem) error {
	if err := r.db.Create(order).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].OrderID = order.ID
	}
	if err := r.db.Create(&items).Error; err != nil {
		return err
	}
	order.Items = items
	return nil
}

// GetByID 按 ID 查询，未找到返回 nil
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").Preload("Items.Product").First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByIDAndUser 按 ID 与用户查询，未找到返回 nil
func (r *GormOrderRepository) GetByIDAndUser(id, userID uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").Preload("Items.Product").
		Where("id = ? AND user_id = ?", id, userID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// ListByUser 用户订单列表，按创建时间倒序
func (r *GormOrderRepository) ListByUser(userID uint, filter OrderFilter) ([]models.Order, int64, error) {
	return r.list(r.db.Where("user_id = ?", userID), filter)
}

// List 全量订单列表（运营后台）
func (r *GormOrderRepository) List(filter OrderFilter) ([]models.Order, int64, error) {
	return r.list(r.db, filter)
}

func (r *GormOrderRepository) list(base *gorm.DB, filter OrderFilter) ([]models.Order, int64, error) {
	query := base.Model(&models.Order{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := applyPagination(query, filter.Page, filter.PageSize).
		Preload("Items").
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// UpdateStatus 更新订单状态
func (r *GormOrderRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// UpdatePaymentReference 记录外部支付凭据
func (r *GormOrderRepository) UpdatePaymentReference(id uint, reference string) error {
	return r.db.Model(&models.Order{}).
		Where("id = ?", id).
		Update("payment_reference", reference).Error
}
