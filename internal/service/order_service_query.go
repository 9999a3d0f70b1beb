package service

import (
	"fmt"

	"github.com/shopfront-next/internal/models"
	"github.com/shopfront-next/internal/repository"
)

// OrderPage 订单分页结果
type OrderPage struct {
	Orders   []models.Order `json:"orders"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// ListUserOrders 用户订单列表，按创建时间倒序
func (s *OrderService) ListUserOrders(userID uint, filter repository.OrderFilter) (*OrderPage, error) {
	if filter.Status != "" && !IsValidOrderStatus(filter.Status) {
		return nil, ErrInvalidStatus
	}
	orders, total, err := s.orderRepo.ListByUser(userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return newOrderPage(orders, total, filter), nil
}

// GetUserOrder 用户订单详情，越权访问与不存在同样返回未找到
func (s *OrderService) GetUserOrder(orderID, userID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListOrders 运营侧全量订单列表
func (s *OrderService) ListOrders(filter repository.OrderFilter) (*OrderPage, error) {
	if filter.Status != "" && !IsValidOrderStatus(filter.Status) {
		return nil, ErrInvalidStatus
	}
	orders, total, err := s.orderRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return newOrderPage(orders, total, filter), nil
}

// GetOrder 运营侧订单详情
func (s *OrderService) GetOrder(orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func newOrderPage(orders []models.Order, total int64, filter repository.OrderFilter) *OrderPage {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	return &OrderPage{
		Orders:   orders,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}
