package public

import (
	"net/http"

	"github.com/shopfront-next/internal/http/handlers/shared"
	"github.com/shopfront-next/internal/http/response"
	"github.com/shopfront-next/internal/repository"
	"github.com/shopfront-next/internal/service"

	"github.com/gin-gonic/gin"
)

type checkoutRequest struct {
	ShippingAddress  string `json:"shipping_address" binding:"required"`
	PaymentReference string `json:"payment_reference"`
}

// Checkout 购物车转订单
// POST /api/v1/checkout
func (h *Handler) Checkout(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, http.StatusBadRequest, response.CodeBadRequest, "shipping address is required")
		return
	}

	order, err := h.orderService.Checkout(service.CheckoutInput{
		UserID:           userID,
		ShippingAddress:  req.ShippingAddress,
		PaymentReference: req.PaymentReference,
	})
	if err != nil {
		respondWithMappedError(c, err, "checkout_failed")
		return
	}
	// 结算扣减了库存，商品详情缓存需同步失效
	for i := range order.Items {
		h.catalogService.InvalidateProduct(c.Request.Context(), order.Items[i].ProductID)
	}
	response.Success(c, order)
}

// PreviewCheckout 结算金额预览，税费与运费仅展示
// GET /api/v1/checkout/preview
func (h *Handler) PreviewCheckout(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	preview, err := h.orderService.PreviewCheckout(userID)
	if err != nil {
		respondWithMappedError(c, err, "preview_checkout_failed")
		return
	}
	response.Success(c, preview)
}

// ListOrders 用户订单列表
// GET /api/v1/orders?status=&page=&page_size=
func (h *Handler) ListOrders(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	page, pageSize := shared.NormalizePagination(c)
	result, err := h.orderService.ListUserOrders(userID, repository.OrderFilter{
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondWithMappedError(c, err, "list_orders_failed")
		return
	}
	response.Success(c, result)
}

// GetOrder 用户订单详情
// GET /api/v1/orders/:id
func (h *Handler) GetOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, ok := shared.ParseUintParam(c, "id")
	if !ok {
		shared.RespondError(c, http.StatusBadRequest, response.CodeBadRequest, "invalid order id")
		return
	}

	order, err := h.orderService.GetUserOrder(orderID, userID)
	if err != nil {
		respondWithMappedError(c, err, "get_order_failed")
		return
	}
	response.Success(c, order)
}
