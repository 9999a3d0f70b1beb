package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopfront-next/internal/constants"
)

func TestCheckoutSnapshotsPricesAndTotals(t *testing.T) {
	env := setupEnv(t)
	product := env.createProduct(t, "widget", "10.00", 100)

	order := env.checkoutOrder(t, 1, product, 3)

	if order.Status != constants.OrderStatusPending {
		t.Fatalf("expected pending order, got %s", order.Status)
	}
	if order.Total.String() != "30.00" {
		t.Fatalf("expected total 30.00, got %s", order.Total.String())
	}
	if len(order.Items) != 1 {
		t.Fatalf("expected 1 order item, got %d", len(order.Items))
	}
	item := order.Items[0]
	if item.Quantity != 3 || item.PriceAtPurchase.String() != "10.00" {
		t.Fatalf("bad snapshot: qty=%d price=%s", item.Quantity, item.PriceAtPurchase.String())
	}
	if !strings.HasPrefix(order.OrderNo, "SO") {
		t.Fatalf("unexpected order number %q", order.OrderNo)
	}
}

func TestAddMergeThenCheckoutFlow(t *testing.T) {
	env := setupEnv(t)
	product := env.createProduct(t, "widget", "10.00", 100)

	if err := env.cartService.AddItem(1, product.ID, 2); err != nil {
		t.Fatalf("add 2: %v", err)
	}
	if err := env.cartService.AddItem(1, product.ID, 1); err != nil {
		t.Fatalf("add 1 more: %v", err)
	}

	cart, _ := env.cartService.GetCart(1)
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 3 {
		t.Fatalf("expected single merged item with quantity 3, got %+v", cart.Items)
	}

	order, err := env.orderService.Checkout(CheckoutInput{UserID: 1, ShippingAddress: "123 Main St"})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if order.Total.String() != "30.00" {
		t.Fatalf("expected total 30.00, got %s", order.Total.String())
	}
	if len(order.Items) != 1 || order.Items[0].Quantity != 3 || order.Items[0].PriceAtPurchase.String() != "10.00" {
		t.Fatalf("bad order items: %+v", order.Items)
	}

	cart, _ = env.cartService.GetCart(1)
	if len(cart.Items) != 0 {
		t.Fatalf("cart should be empty after checkout, got %d items", len(cart.Items))
	}
}

func TestCheckoutSnapshotSurvivesPriceChange(t *testing.T) {
	env := setupEnv(t)
	product := env.createProduct(t, "widget", "10.00", 100)
	order := env.checkoutOrder(t, 1, product, 2)

	// 改价不影响已生成订单
	if err := env.db.Model(product).Update("price", "99.99").Error; err != nil {
		t.Fatalf("update price: %v", err)
	}

	got, err := env.orderService.GetUserOrder(order.ID, 1)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if got.Items[0].PriceAtPurchase.String() != "10.00" {
		t.Fatalf("snapshot changed: %s", got.Items[0].PriceAtPurchase.String())
	}
	if got.Total.String() != "20.00" {
		t.Fatalf("total changed: %s", got.Total.String())
	}
}

func TestCheckoutClearsCartAndDecrementsInventory(t *testing.T) {
	env := setupEnv(t)
	product := env.createProduct(t, "widget", "10.00", 10)

	env.checkoutOrder(t, 1, product, 4)

	cart, err := env.cartService.GetCart(1)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected cart cleared, got %d items", len(cart.Items))
	}

	got, err := env.productRepo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if got.InventoryCount != 6 {
		t.Fatalf("expected inventory 6, got %d", got.InventoryCount)
	}
}

func TestCheckoutInsufficientStockRollsBack(t *testing.T) {
	env := setupEnv(t)
	product := env.createProduct(t, "widget", "10.00", 2)

	if err := env.cartService.AddItem(1, product.ID, 5); err != nil {
		t.Fatalf("add: %v", err)
	}

	_, err := env.orderService.Checkout(CheckoutInput{UserID: 1, ShippingAddress: "1 Test Street"})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	// 整单回滚：无订单、购物车保留、库存不变
	var orderCount int64
	if err := env.db.Table("orders").Count(&orderCount).Error; err != nil {
		t.Fatalf("count orders: %v", err)
	}
	if orderCount != 0 {
		t.Fatalf("expected no orders persisted, got %d", orderCount)
	}

	cart, _ := env.cartService.GetCart(1)
	if len(cart.Items) != 1 {
		t.Fatalf("cart should survive failed checkout, got %d items", len(cart.Items))
	}

	got, _ := env.productRepo.GetByID(product.ID)
	if got.InventoryCount != 2 {
		t.Fatalf("expected inventory untouched at 2, got %d", got.InventoryCount)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	env := setupEnv(t)

	_, err := env.orderService.Checkout(CheckoutInput{UserID: 1, ShippingAddress: "1 Test Street"})
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestCheckoutRequiresAddress(t *testing.T) {
	env := setupEnv(t)
	product := env.createProduct(t, "widget", "10.00", 100)
	if err := env.cartService.AddItem(1, product.ID, 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	_, err := env.orderService.Checkout(CheckoutInput{UserID: 1, ShippingAddress: "   "})
	if !errors.Is(err, ErrEmptyAddress) {
		t.Fatalf("expected ErrEmptyAddress, got %v", err)
	}

	// 失败后购物车保持原样
	cart, _ := env.cartService.GetCart(1)
	if len(cart.Items) != 1 {
		t.Fatalf("cart should be untouched, got %d items", len(cart.Items))
	}
}

func TestPreviewCheckoutComputesDisplayAmounts(t *testing.T) {
	env := setupEnv(t)
	product := env.createProduct(t, "widget", "10.00", 100)
	if err := env.cartService.AddItem(1, product.ID, 3); err != nil {
		t.Fatalf("add: %v", err)
	}

	preview, err := env.orderService.PreviewCheckout(1)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if preview.Subtotal.String() != "30.00" {
		t.Fatalf("subtotal: %s", preview.Subtotal.String())
	}
	if preview.Tax.String() != "2.40" {
		t.Fatalf("tax: %s", preview.Tax.String())
	}
	if preview.Shipping.String() != "5.99" {
		t.Fatalf("shipping: %s", preview.Shipping.String())
	}
	if preview.GrandTotal.String() != "38.39" {
		t.Fatalf("grand total: %s", preview.GrandTotal.String())
	}

	// 预览金额不落库：下单后 total 仍为小计
	order, err := env.orderService.Checkout(CheckoutInput{UserID: 1, ShippingAddress: "1 Test Street"})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if order.Total.String() != "30.00" {
		t.Fatalf("persisted total should exclude tax and shipping, got %s", order.Total.String())
	}
}

func TestPreviewCheckoutEmptyCart(t *testing.T) {
	env := setupEnv(t)

	_, err := env.orderService.PreviewCheckout(1)
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestGetUserOrderHidesOtherUsers(t *testing.T) {
	env := setupEnv(t)
	product := env.createProduct(t, "widget", "10.00", 100)
	order := env.checkoutOrder(t, 1, product, 1)

	_, err := env.orderService.GetUserOrder(order.ID, 2)
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound for other user, got %v", err)
	}
}

func TestUpdateStatusHonorsStateMachine(t *testing.T) {
	env := setupEnv(t)
	product := env.createProduct(t, "widget", "10.00", 100)
	order := env.checkoutOrder(t, 1, product, 1)

	for _, next := range []string{
		constants.OrderStatusProcessing,
		constants.OrderStatusShipped,
		constants.OrderStatusDelivered,
	} {
		if _, err := env.orderService.UpdateStatus(order.ID, next); err != nil {
			t.Fatalf("transition to %s: %v", next, err)
		}
	}

	// 终态不可再迁移
	_, err := env.orderService.UpdateStatus(order.ID, constants.OrderStatusCancelled)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition from delivered, got %v", err)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	env := setupEnv(t)
	product := env.createProduct(t, "widget", "10.00", 100)
	order := env.checkoutOrder(t, 1, product, 1)

	_, err := env.orderService.UpdateStatus(order.ID, "teleported")
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestUpdateStatusSkippingStepRejected(t *testing.T) {
	env := setupEnv(t)
	product := env.createProduct(t, "widget", "10.00", 100)
	order := env.checkoutOrder(t, 1, product, 1)

	_, err := env.orderService.UpdateStatus(order.ID, constants.OrderStatusDelivered)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for pending->delivered, got %v", err)
	}
}
