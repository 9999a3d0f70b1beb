package staff

import (
	"net/http"

	"github.com/shopfront-next/internal/http/handlers/shared"
	"github.com/shopfront-next/internal/http/response"
	"github.com/shopfront-next/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListReturns 全量退货列表
// GET /api/v1/staff/returns?status=&page=&page_size=
func (h *Handler) ListReturns(c *gin.Context) {
	page, pageSize := shared.NormalizePagination(c)
	result, err := h.returnService.ListReturns(repository.ReturnFilter{
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondServiceError(c, err, "staff_list_returns_failed")
		return
	}
	response.Success(c, result)
}

type reviewReturnRequest struct {
	Status string `json:"status" binding:"required"`
}

// ReviewReturn 审核退货申请
// PUT /api/v1/staff/returns/:id/status
func (h *Handler) ReviewReturn(c *gin.Context) {
	returnID, ok := shared.ParseUintParam(c, "id")
	if !ok {
		shared.RespondError(c, http.StatusBadRequest, response.CodeBadRequest, "invalid return id")
		return
	}

	var req reviewReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, http.StatusBadRequest, response.CodeBadRequest, "status is required")
		return
	}

	ret, err := h.returnService.Review(returnID, req.Status)
	if err != nil {
		respondServiceError(c, err, "staff_review_return_failed")
		return
	}
	response.Success(c, ret)
}
