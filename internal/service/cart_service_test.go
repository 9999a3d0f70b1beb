package service

import (
	"errors"
	"testing"
)

func TestAddItemMergesDuplicates(t *testing.T) {
	env := setupEnv(t)
	product := env.createProduct(t, "widget", "10.00", 100)

	if err := env.cartService.AddItem(1, product.ID, 2); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := env.cartService.AddItem(1, product.ID, 3); err != nil {
		t.Fatalf("second add: %v", err)
	}

	cart, err := env.cartService.GetCart(1)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("expected single merged row, got %d", len(cart.Items))
	}
	if cart.TotalQuantity != 5 {
		t.Fatalf("expected total quantity 5, got %d", cart.TotalQuantity)
	}
	if cart.TotalPrice.String() != "50.00" {
		t.Fatalf("expected total 50.00, got %s", cart.TotalPrice.String())
	}
}

func TestAddItemRejectsBadInput(t *testing.T) {
	env := setupEnv(t)
	product := env.createProduct(t, "widget", "10.00", 100)

	if err := env.cartService.AddItem(1, product.ID, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if err := env.cartService.AddItem(1, product.ID, -2); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity for negative, got %v", err)
	}
	if err := env.cartService.AddItem(1, 9999, 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestAddItemAllowsOutOfStockProduct(t *testing.T) {
	env := setupEnv(t)
	product := env.createProduct(t, "widget", "10.00", 0)

	// 库存在结算时才校验
	if err := env.cartService.AddItem(1, product.ID, 1); err != nil {
		t.Fatalf("adding out-of-stock product to cart should succeed, got %v", err)
	}
}

func TestSetQuantityZeroRemovesItem(t *testing.T) {
	env := setupEnv(t)
	product := env.createProduct(t, "widget", "10.00", 100)

	if err := env.cartService.AddItem(1, product.ID, 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	cart, _ := env.cartService.GetCart(1)
	itemID := cart.Items[0].ID

	if err := env.cartService.SetQuantity(1, itemID, 0); err != nil {
		t.Fatalf("set quantity zero: %v", err)
	}

	cart, _ = env.cartService.GetCart(1)
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(cart.Items))
	}

	// 负数与零等同移除
	if err := env.cartService.AddItem(1, product.ID, 2); err != nil {
		t.Fatalf("re-add: %v", err)
	}
	cart, _ = env.cartService.GetCart(1)
	if err := env.cartService.SetQuantity(1, cart.Items[0].ID, -3); err != nil {
		t.Fatalf("set negative quantity: %v", err)
	}
	cart, _ = env.cartService.GetCart(1)
	if len(cart.Items) != 0 {
		t.Fatalf("negative quantity should remove the item, got %d items", len(cart.Items))
	}
}

func TestSetQuantityUpdatesValue(t *testing.T) {
	env := setupEnv(t)
	product := env.createProduct(t, "widget", "10.00", 100)

	if err := env.cartService.AddItem(1, product.ID, 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	cart, _ := env.cartService.GetCart(1)

	if err := env.cartService.SetQuantity(1, cart.Items[0].ID, 9); err != nil {
		t.Fatalf("set quantity: %v", err)
	}

	cart, _ = env.cartService.GetCart(1)
	if cart.Items[0].Quantity != 9 {
		t.Fatalf("expected quantity 9, got %d", cart.Items[0].Quantity)
	}
}

func TestSetQuantityUnknownItem(t *testing.T) {
	env := setupEnv(t)

	if err := env.cartService.SetQuantity(1, 42, 3); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	env := setupEnv(t)

	if err := env.cartService.RemoveItem(1, 42); err != nil {
		t.Fatalf("removing missing item should succeed, got %v", err)
	}
}
