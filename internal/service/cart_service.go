package service

import (
	"fmt"

	"github.com/shopfront-next/internal/models"
	"github.com/shopfront-next/internal/repository"
)

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// CartView 购物车概览
type CartView struct {
	Items         []models.CartItem `json:"items"`
	TotalQuantity int               `json:"total_quantity"`
	TotalPrice    models.Money      `json:"total_price"`
}

// AddItem 加购：商品已在车中则数量合并，不产生重复行
func (s *CartService) AddItem(userID, productID uint, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	// 加购只校验商品存在，库存在结算时校验
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return fmt.Errorf("load product: %w", err)
	}
	if product == nil {
		return ErrProductNotFound
	}

	if err := s.cartRepo.UpsertAdd(userID, productID, quantity); err != nil {
		return fmt.Errorf("upsert cart item: %w", err)
	}
	return nil
}

// SetQuantity 覆盖写数量，数量降到零及以下等同移除
func (s *CartService) SetQuantity(userID, itemID uint, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(userID, itemID)
	}

	item, err := s.cartRepo.GetByIDAndUser(itemID, userID)
	if err != nil {
		return fmt.Errorf("load cart item: %w", err)
	}
	if item == nil {
		return ErrCartItemNotFound
	}

	if err := s.cartRepo.UpdateQuantity(item.ID, quantity); err != nil {
		return fmt.Errorf("update quantity: %w", err)
	}
	return nil
}

// RemoveItem 移除条目，对不存在的条目幂等成功
func (s *CartService) RemoveItem(userID, itemID uint) error {
	if _, err := s.cartRepo.DeleteByIDAndUser(itemID, userID); err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	return nil
}

// Clear 清空购物车
func (s *CartService) Clear(userID uint) error {
	if err := s.cartRepo.ClearByUser(userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

// GetCart 购物车明细及汇总
func (s *CartService) GetCart(userID uint) (*CartView, error) {
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}

	view := &CartView{Items: items}
	for i := range items {
		view.TotalQuantity += items[i].Quantity
		view.TotalPrice = view.TotalPrice.Add(items[i].LineTotal())
	}
	return view, nil
}
