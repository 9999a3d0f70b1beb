package staff

import (
	"net/http"

	"github.com/shopfront-next/internal/http/handlers/shared"
	"github.com/shopfront-next/internal/http/response"
	"github.com/shopfront-next/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListOrders 全量订单列表
// GET /api/v1/staff/orders?status=&page=&page_size=
func (h *Handler) ListOrders(c *gin.Context) {
	page, pageSize := shared.NormalizePagination(c)
	result, err := h.orderService.ListOrders(repository.OrderFilter{
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondServiceError(c, err, "staff_list_orders_failed")
		return
	}
	response.Success(c, result)
}

// GetOrder 订单详情
// GET /api/v1/staff/orders/:id
func (h *Handler) GetOrder(c *gin.Context) {
	orderID, ok := shared.ParseUintParam(c, "id")
	if !ok {
		shared.RespondError(c, http.StatusBadRequest, response.CodeBadRequest, "invalid order id")
		return
	}

	order, err := h.orderService.GetOrder(orderID)
	if err != nil {
		respondServiceError(c, err, "staff_get_order_failed")
		return
	}
	response.Success(c, order)
}

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus 订单状态流转
// PUT /api/v1/staff/orders/:id/status
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	orderID, ok := shared.ParseUintParam(c, "id")
	if !ok {
		shared.RespondError(c, http.StatusBadRequest, response.CodeBadRequest, "invalid order id")
		return
	}

	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, http.StatusBadRequest, response.CodeBadRequest, "status is required")
		return
	}

	order, err := h.orderService.UpdateStatus(orderID, req.Status)
	if err != nil {
		respondServiceError(c, err, "staff_update_order_status_failed")
		return
	}
	response.Success(c, order)
}

type attachPaymentRequest struct {
	PaymentReference string `json:"payment_reference" binding:"required"`
}

// AttachPaymentReference 补记外部支付凭据
// PUT /api/v1/staff/orders/:id/payment
func (h *Handler) AttachPaymentReference(c *gin.Context) {
	orderID, ok := shared.ParseUintParam(c, "id")
	if !ok {
		shared.RespondError(c, http.StatusBadRequest, response.CodeBadRequest, "invalid order id")
		return
	}

	var req attachPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, http.StatusBadRequest, response.CodeBadRequest, "payment_reference is required")
		return
	}

	if err := h.orderService.AttachPaymentReference(orderID, req.PaymentReference); err != nil {
		respondServiceError(c, err, "staff_attach_payment_failed")
		return
	}
	response.Success(c, nil)
}
