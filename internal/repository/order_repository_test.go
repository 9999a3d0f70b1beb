package repository

import (
	"testing"

	"github.com/shopfront-next/internal/constants"
	"github.com/shopfront-next/internal/models"
)

func newOrderForUser(t *testing.T, repo OrderRepository, userID, productID uint, orderNo string) *models.Order {
	t.Helper()

	price, _ := models.NewMoneyFromString("10.00")
	order := &models.Order{
		OrderNo:         orderNo,
		UserID:          userID,
		Status:          constants.OrderStatusPending,
		Total:           price.MulInt(3),
		ShippingAddress: "1 Test Street",
	}
	items := []models.OrderItem{
		{ProductID: productID, Quantity: 3, PriceAtPurchase: price},
	}
	if err := repo.Create(order, items); err != nil {
		t.Fatalf("create order: %v", err)
	}
	return order
}

func TestCreateAssignsOrderIDToItems(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	product := createTestProduct(t, db, "widget", "10.00", 10)

	order := newOrderForUser(t, repo, 1, product.ID, "SO-TEST-1")
	if order.ID == 0 {
		t.Fatal("expected order id to be set")
	}
	if len(order.Items) != 1 || order.Items[0].OrderID != order.ID {
		t.Fatalf("expected item bound to order, got %+v", order.Items)
	}
}

func TestGetByIDAndUserScopesToOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	product := createTestProduct(t, db, "widget", "10.00", 10)

	order := newOrderForUser(t, repo, 1, product.ID, "SO-TEST-2")

	got, err := repo.GetByIDAndUser(order.ID, 1)
	if err != nil {
		t.Fatalf("get as owner: %v", err)
	}
	if got == nil || got.ID != order.ID {
		t.Fatalf("expected order, got %+v", got)
	}
	if len(got.Items) != 1 || got.Items[0].Product == nil {
		t.Fatalf("expected preloaded items with product, got %+v", got.Items)
	}

	// 越权查询与不存在一致
	got, err = repo.GetByIDAndUser(order.ID, 2)
	if err != nil {
		t.Fatalf("get as other user: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for other user, got %+v", got)
	}
}

func TestListByUserFiltersStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormOrderRepository(db)
	product := createTestProduct(t, db, "widget", "10.00", 10)

	first := newOrderForUser(t, repo, 1, product.ID, "SO-TEST-3")
	newOrderForUser(t, repo, 1, product.ID, "SO-TEST-4")
	newOrderForUser(t, repo, 2, product.ID, "SO-TEST-5")

	if err := repo.UpdateStatus(first.ID, constants.OrderStatusProcessing); err != nil {
		t.Fatalf("update status: %v", err)
	}

	orders, total, err := repo.ListByUser(1, OrderFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 || len(orders) != 2 {
		t.Fatalf("expected 2 orders for user 1, got total=%d len=%d", total, len(orders))
	}

	orders, total, err = repo.ListByUser(1, OrderFilter{Status: constants.OrderStatusProcessing})
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if total != 1 || orders[0].ID != first.ID {
		t.Fatalf("status filter wrong: total=%d", total)
	}
}
