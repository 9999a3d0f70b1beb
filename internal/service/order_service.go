package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/shopfront-next/internal/constants"
	"github.com/shopfront-next/internal/logger"
	"github.com/shopfront-next/internal/models"
	"github.com/shopfront-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderServiceConfig 结算参数（税率与运费仅用于预览展示）
type OrderServiceConfig struct {
	TaxRate     decimal.Decimal
	ShippingFee decimal.Decimal
}

// OrderService 订单服务：负责购物车转订单与订单状态流转
type OrderService struct {
	db          *gorm.DB
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	cfg         OrderServiceConfig
}

// NewOrderService 创建订单服务
func NewOrderService(
	db *gorm.DB,
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	cfg OrderServiceConfig,
) *OrderService {
	return &OrderService{
		db:          db,
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		cfg:         cfg,
	}
}

// CheckoutInput 结算入参
type CheckoutInput struct {
	UserID           uint
	ShippingAddress  string
	PaymentReference string
}

// Checkout 购物车转订单：快照价格、扣减库存、清空购物车，单事务完成
func (s *OrderService) Checkout(input CheckoutInput) (*models.Order, error) {
	address := strings.TrimSpace(input.ShippingAddress)
	if address == "" {
		return nil, ErrEmptyAddress
	}

	var order *models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		orderRepo := s.orderRepo.WithTx(tx)
		productRepo := s.productRepo.WithTx(tx)

		cartItems, err := cartRepo.ListByUser(input.UserID)
		if err != nil {
			return fmt.Errorf("load cart: %w", err)
		}
		if len(cartItems) == 0 {
			return ErrEmptyCart
		}

		var total models.Money
		orderItems := make([]models.OrderItem, 0, len(cartItems))
		for i := range cartItems {
			item := cartItems[i]
			if item.Product == nil {
				return ErrProductNotFound
			}
			// 以下单时刻的价格落库，后续改价不影响历史订单
			orderItems = append(orderItems, models.OrderItem{
				ProductID:       item.ProductID,
				Quantity:        item.Quantity,
				PriceAtPurchase: item.Product.Price,
			})
			total = total.Add(item.LineTotal())
		}

		newOrder := &models.Order{
			OrderNo:          generateOrderNo(),
			UserID:           input.UserID,
			Status:           constants.OrderStatusPending,
			Total:            total,
			ShippingAddress:  address,
			PaymentReference: strings.TrimSpace(input.PaymentReference),
		}
		if err := orderRepo.Create(newOrder, orderItems); err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		for i := range orderItems {
			ok, err := productRepo.DecrementInventory(orderItems[i].ProductID, orderItems[i].Quantity)
			if err != nil {
				return fmt.Errorf("decrement inventory: %w", err)
			}
			if !ok {
				return fmt.Errorf("%w: product %d", ErrInsufficientStock, orderItems[i].ProductID)
			}
		}

		if err := cartRepo.ClearByUser(input.UserID); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}

		order = newOrder
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Infow("order_created",
		"order_no", order.OrderNo,
		"user_id", order.UserID,
		"total", order.Total.String(),
		"item_count", len(order.Items),
	)
	return order, nil
}

// CheckoutPreview 结算预览金额
type CheckoutPreview struct {
	Subtotal   models.Money `json:"subtotal"`
	Tax        models.Money `json:"tax"`
	Shipping   models.Money `json:"shipping"`
	GrandTotal models.Money `json:"grand_total"`
}

// PreviewCheckout 计算结算页展示金额，税费与运费不落库
func (s *OrderService) PreviewCheckout(userID uint) (*CheckoutPreview, error) {
	cartItems, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(cartItems) == 0 {
		return nil, ErrEmptyCart
	}

	var subtotal models.Money
	for i := range cartItems {
		subtotal = subtotal.Add(cartItems[i].LineTotal())
	}

	tax := models.NewMoney(subtotal.Decimal.Mul(s.cfg.TaxRate))
	shipping := models.NewMoney(s.cfg.ShippingFee)
	return &CheckoutPreview{
		Subtotal:   subtotal,
		Tax:        tax,
		Shipping:   shipping,
		GrandTotal: subtotal.Add(tax).Add(shipping),
	}, nil
}

// UpdateStatus 运营侧订单状态流转
func (s *OrderService) UpdateStatus(orderID uint, newStatus string) (*models.Order, error) {
	if !IsValidOrderStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, fmt.Errorf("load order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !CanTransitionOrder(order.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, newStatus)
	}

	if err := s.orderRepo.UpdateStatus(order.ID, newStatus); err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	logger.Infow("order_status_updated",
		"order_no", order.OrderNo,
		"from", order.Status,
		"to", newStatus,
	)
	order.Status = newStatus
	return order, nil
}

// AttachPaymentReference 补记外部支付凭据
func (s *OrderService) AttachPaymentReference(orderID uint, reference string) error {
	reference = strings.TrimSpace(reference)
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return fmt.Errorf("load order: %w", err)
	}
	if order == nil {
		return ErrOrderNotFound
	}
	if err := s.orderRepo.UpdatePaymentReference(order.ID, reference); err != nil {
		return fmt.Errorf("update payment reference: %w", err)
	}
	return nil
}

const orderNoCharset = "0123456789ABCDEFGHJKLMNPQRSTUVWXYZ"

// generateOrderNo 时间前缀加随机后缀，唯一索引兜底冲突
func generateOrderNo() string {
	var sb strings.Builder
	sb.WriteString("SO")
	sb.WriteString(time.Now().Format("20060102150405"))
	charsetLen := big.NewInt(int64(len(orderNoCharset)))
	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, charsetLen)
		if err != nil {
			sb.WriteByte(orderNoCharset[time.Now().UnixNano()%int64(len(orderNoCharset))])
			continue
		}
		sb.WriteByte(orderNoCharset[n.Int64()])
	}
	return sb.String()
}
