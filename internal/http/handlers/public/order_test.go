package public

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopfront-next/internal/http/handlers/shared"
	"github.com/shopfront-next/internal/models"
	"github.com/shopfront-next/internal/repository"
	"github.com/shopfront-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type checkoutTestEnv struct {
	db     *gorm.DB
	engine *gin.Engine
}

func setupCheckoutRoutes(t *testing.T) *checkoutTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:public_order_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	productRepo := repository.NewGormProductRepository(db)
	cartRepo := repository.NewGormCartRepository(db)
	orderRepo := repository.NewGormOrderRepository(db)
	catalogService := service.NewCatalogService(productRepo)
	cartService := service.NewCartService(cartRepo, productRepo)
	orderService := service.NewOrderService(db, orderRepo, cartRepo, productRepo, service.OrderServiceConfig{
		TaxRate:     decimal.RequireFromString("0.08"),
		ShippingFee: decimal.RequireFromString("5.99"),
	})
	handler := NewHandler(catalogService, cartService, orderService, nil)

	engine := gin.New()
	authed := engine.Group("", func(c *gin.Context) {
		c.Set(shared.ContextKeyUserID, uint(1))
	})
	authed.POST("/cart/items", handler.AddCartItem)
	authed.POST("/checkout", handler.Checkout)

	return &checkoutTestEnv{db: db, engine: engine}
}

func (e *checkoutTestEnv) postJSON(t *testing.T, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.engine.ServeHTTP(rec, req)
	return rec
}

// 结算成功后刷新受影响商品的缓存条目
func TestCheckoutRefreshesProductCacheEntries(t *testing.T) {
	env := setupCheckoutRoutes(t)

	m, err := models.NewMoneyFromString("10.00")
	if err != nil {
		t.Fatalf("parse price: %v", err)
	}
	product := &models.Product{Name: "widget", Price: m, Category: "test", InventoryCount: 10}
	if err := env.db.Create(product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}

	rec := env.postJSON(t, "/cart/items", fmt.Sprintf(`{"product_id":%d,"quantity":2}`, product.ID))
	if rec.Code != http.StatusOK {
		t.Fatalf("add to cart: %d body=%s", rec.Code, rec.Body.String())
	}

	rec = env.postJSON(t, "/checkout", `{"shipping_address":"123 Main St"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("checkout: %d body=%s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data struct {
			Items []struct {
				ProductID uint `json:"product_id"`
			} `json:"items"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Items) != 1 || envelope.Data.Items[0].ProductID != product.ID {
		t.Fatalf("unexpected order items %+v", envelope.Data.Items)
	}

	var remaining models.Product
	if err := env.db.First(&remaining, product.ID).Error; err != nil {
		t.Fatalf("reload product: %v", err)
	}
	if remaining.InventoryCount != 8 {
		t.Fatalf("expected inventory 8 after checkout, got %d", remaining.InventoryCount)
	}
}
