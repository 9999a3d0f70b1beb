package service

import (
	"fmt"

	"github.com/shopfront-next/internal/constants"
	"github.com/shopfront-next/internal/logger"
	"github.com/shopfront-next/internal/models"
	"github.com/shopfront-next/internal/repository"

	"gorm.io/gorm"
)

// ReturnService 退货流程服务
type ReturnService struct {
	db         *gorm.DB
	returnRepo repository.ReturnRepository
	orderRepo  repository.OrderRepository
}

// NewReturnService 创建退货服务
func NewReturnService(db *gorm.DB, returnRepo repository.ReturnRepository, orderRepo repository.OrderRepository) *ReturnService {
	return &ReturnService{db: db, returnRepo: returnRepo, orderRepo: orderRepo}
}

// RequestReturnInput 退货申请入参，OrderItemID 为空表示整单退货
type RequestReturnInput struct {
	UserID      uint
	OrderID     uint
	OrderItemID *uint
	Reason      string
}

// RequestReturn 发起退货：仅限已签收订单，同一目标只允许一个在途申请
func (s *ReturnService) RequestReturn(input RequestReturnInput) (*models.Return, error) {
	order, err := s.orderRepo.GetByIDAndUser(input.OrderID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("load order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status != constants.OrderStatusDelivered {
		return nil, fmt.Errorf("%w: order is %s", ErrOrderNotReturnable, order.Status)
	}
	if input.Reason == "" {
		return nil, ErrEmptyReason
	}

	if input.OrderItemID != nil {
		if !orderContainsItem(order, *input.OrderItemID) {
			return nil, ErrItemNotInOrder
		}
	}

	var ret *models.Return
	err = s.db.Transaction(func(tx *gorm.DB) error {
		returnRepo := s.returnRepo.WithTx(tx)

		active, err := returnRepo.HasActive(order.ID, input.OrderItemID)
		if err != nil {
			return fmt.Errorf("check active return: %w", err)
		}
		if active {
			return ErrReturnAlreadyActive
		}

		ret = &models.Return{
			OrderID:     order.ID,
			OrderItemID: input.OrderItemID,
			UserID:      input.UserID,
			Status:      constants.ReturnStatusPending,
			Reason:      input.Reason,
		}
		if err := returnRepo.Create(ret); err != nil {
			return fmt.Errorf("create return: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Infow("return_requested",
		"return_id", ret.ID,
		"order_id", ret.OrderID,
		"user_id", ret.UserID,
	)
	return ret, nil
}

// ReturnPage 退货分页结果
type ReturnPage struct {
	Returns  []models.Return `json:"returns"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// ListUserReturns 用户退货列表
func (s *ReturnService) ListUserReturns(userID uint, filter repository.ReturnFilter) (*ReturnPage, error) {
	if filter.Status != "" && !IsValidReturnStatus(filter.Status) {
		return nil, ErrInvalidStatus
	}
	returns, total, err := s.returnRepo.ListByUser(userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list returns: %w", err)
	}
	return newReturnPage(returns, total, filter), nil
}

// ListReturns 运营侧退货列表
func (s *ReturnService) ListReturns(filter repository.ReturnFilter) (*ReturnPage, error) {
	if filter.Status != "" && !IsValidReturnStatus(filter.Status) {
		return nil, ErrInvalidStatus
	}
	returns, total, err := s.returnRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("list returns: %w", err)
	}
	return newReturnPage(returns, total, filter), nil
}

// Review 运营侧审核退货：pending 可批可驳，approved 可完结
func (s *ReturnService) Review(returnID uint, newStatus string) (*models.Return, error) {
	if !IsValidReturnStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	ret, err := s.returnRepo.GetByID(returnID)
	if err != nil {
		return nil, fmt.Errorf("load return: %w", err)
	}
	if ret == nil {
		return nil, ErrReturnNotFound
	}
	if !CanTransitionReturn(ret.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, ret.Status, newStatus)
	}

	if err := s.returnRepo.UpdateStatus(ret.ID, newStatus); err != nil {
		return nil, fmt.Errorf("update return status: %w", err)
	}

	logger.Infow("return_reviewed",
		"return_id", ret.ID,
		"from", ret.Status,
		"to", newStatus,
	)
	ret.Status = newStatus
	return ret, nil
}

func newReturnPage(returns []models.Return, total int64, filter repository.ReturnFilter) *ReturnPage {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	return &ReturnPage{
		Returns:  returns,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}

func orderContainsItem(order *models.Order, itemID uint) bool {
	for i := range order.Items {
		if order.Items[i].ID == itemID {
			return true
		}
	}
	return false
}
