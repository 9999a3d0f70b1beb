package public

import (
	"net/http"

	"github.com/shopfront-next/internal/http/handlers/shared"
	"github.com/shopfront-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

type addCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  *int `json:"quantity"`
}

// AddCartItem 加购
// POST /api/v1/cart/items
func (h *Handler) AddCartItem(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request body")
		return
	}
	// 仅在字段缺省时取 1，显式传入的数量原样交给服务层校验
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	if err := h.cartService.AddItem(userID, req.ProductID, quantity); err != nil {
		respondWithMappedError(c, err, "add_cart_item_failed")
		return
	}

	cart, err := h.cartService.GetCart(userID)
	if err != nil {
		shared.RespondInternal(c, "load_cart_failed", err)
		return
	}
	response.Success(c, cart)
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateCartItem 修改数量，数量小于等于零时移除
// PUT /api/v1/cart/items/:id
func (h *Handler) UpdateCartItem(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	itemID, ok := shared.ParseUintParam(c, "id")
	if !ok {
		shared.RespondError(c, http.StatusBadRequest, response.CodeBadRequest, "invalid cart item id")
		return
	}

	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request body")
		return
	}

	if err := h.cartService.SetQuantity(userID, itemID, req.Quantity); err != nil {
		respondWithMappedError(c, err, "update_cart_item_failed")
		return
	}

	cart, err := h.cartService.GetCart(userID)
	if err != nil {
		shared.RespondInternal(c, "load_cart_failed", err)
		return
	}
	response.Success(c, cart)
}

// RemoveCartItem 移除条目，幂等
// DELETE /api/v1/cart/items/:id
func (h *Handler) RemoveCartItem(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	itemID, ok := shared.ParseUintParam(c, "id")
	if !ok {
		shared.RespondError(c, http.StatusBadRequest, response.CodeBadRequest, "invalid cart item id")
		return
	}

	if err := h.cartService.RemoveItem(userID, itemID); err != nil {
		respondWithMappedError(c, err, "remove_cart_item_failed")
		return
	}
	response.Success(c, nil)
}

// ClearCart 清空购物车
// DELETE /api/v1/cart
func (h *Handler) ClearCart(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	if err := h.cartService.Clear(userID); err != nil {
		shared.RespondInternal(c, "clear_cart_failed", err)
		return
	}
	response.Success(c, nil)
}

// GetCart 购物车明细
// GET /api/v1/cart
func (h *Handler) GetCart(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	cart, err := h.cartService.GetCart(userID)
	if err != nil {
		shared.RespondInternal(c, "load_cart_failed", err)
		return
	}
	response.Success(c, cart)
}
