package service

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/shopfront-next/internal/models"
	"github.com/shopfront-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Staff{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Return{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// testEnv 装配好的服务与仓储
type testEnv struct {
	db            *gorm.DB
	productRepo   repository.ProductRepository
	cartRepo      repository.CartRepository
	orderRepo     repository.OrderRepository
	returnRepo    repository.ReturnRepository
	cartService   *CartService
	orderService  *OrderService
	returnService *ReturnService
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	db := setupTestDB(t)
	productRepo := repository.NewGormProductRepository(db)
	cartRepo := repository.NewGormCartRepository(db)
	orderRepo := repository.NewGormOrderRepository(db)
	returnRepo := repository.NewGormReturnRepository(db)

	return &testEnv{
		db:          db,
		productRepo: productRepo,
		cartRepo:    cartRepo,
		orderRepo:   orderRepo,
		returnRepo:  returnRepo,
		cartService: NewCartService(cartRepo, productRepo),
		orderService: NewOrderService(db, orderRepo, cartRepo, productRepo, OrderServiceConfig{
			TaxRate:     decimal.NewFromFloat(0.08),
			ShippingFee: decimal.NewFromFloat(5.99),
		}),
		returnService: NewReturnService(db, returnRepo, orderRepo),
	}
}

func (e *testEnv) createProduct(t *testing.T, name, price string, inventory int) *models.Product {
	t.Helper()

	m, err := models.NewMoneyFromString(price)
	if err != nil {
		t.Fatalf("parse price: %v", err)
	}
	product := &models.Product{
		Name:           name,
		Price:          m,
		Category:       "test",
		InventoryCount: inventory,
	}
	if err := e.db.Create(product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return product
}

// checkoutOrder 走完加购到下单的完整路径
func (e *testEnv) checkoutOrder(t *testing.T, userID uint, product *models.Product, quantity int) *models.Order {
	t.Helper()

	if err := e.cartService.AddItem(userID, product.ID, quantity); err != nil {
		t.Fatalf("add to cart: %v", err)
	}
	order, err := e.orderService.Checkout(CheckoutInput{
		UserID:          userID,
		ShippingAddress: "1 Test Street",
	})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	return order
}

func (e *testEnv) setOrderStatus(t *testing.T, orderID uint, status string) {
	t.Helper()
	if err := e.orderRepo.UpdateStatus(orderID, status); err != nil {
		t.Fatalf("set order status: %v", err)
	}
}
