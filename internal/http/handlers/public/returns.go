package public

import (
	"net/http"

	"github.com/shopfront-next/internal/http/handlers/shared"
	"github.com/shopfront-next/internal/http/response"
	"github.com/shopfront-next/internal/repository"
	"github.com/shopfront-next/internal/service"

	"github.com/gin-gonic/gin"
)

type requestReturnRequest struct {
	OrderID     uint   `json:"order_id" binding:"required"`
	OrderItemID *uint  `json:"order_item_id"`
	Reason      string `json:"reason" binding:"required"`
}

// RequestReturn 发起退货申请
// POST /api/v1/returns
func (h *Handler) RequestReturn(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req requestReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, http.StatusBadRequest, response.CodeBadRequest, "order_id and reason are required")
		return
	}

	ret, err := h.returnService.RequestReturn(service.RequestReturnInput{
		UserID:      userID,
		OrderID:     req.OrderID,
		OrderItemID: req.OrderItemID,
		Reason:      req.Reason,
	})
	if err != nil {
		respondWithMappedError(c, err, "request_return_failed")
		return
	}
	response.Success(c, ret)
}

// ListReturns 用户退货列表
// GET /api/v1/returns?status=&page=&page_size=
func (h *Handler) ListReturns(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	page, pageSize := shared.NormalizePagination(c)
	result, err := h.returnService.ListUserReturns(userID, repository.ReturnFilter{
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondWithMappedError(c, err, "list_returns_failed")
		return
	}
	response.Success(c, result)
}
