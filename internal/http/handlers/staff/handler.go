package staff

import (
	"errors"
	"net/http"

	"github.com/shopfront-next/internal/http/handlers/shared"
	"github.com/shopfront-next/internal/http/response"
	"github.com/shopfront-next/internal/service"

	"github.com/gin-gonic/gin"
)

// Handler 运营后台 API 处理器
type Handler struct {
	authService   *service.AuthService
	orderService  *service.OrderService
	returnService *service.ReturnService
}

// NewHandler 创建运营后台处理器
func NewHandler(
	authService *service.AuthService,
	orderService *service.OrderService,
	returnService *service.ReturnService,
) *Handler {
	return &Handler{
		authService:   authService,
		orderService:  orderService,
		returnService: returnService,
	}
}

// respondServiceError 运营侧业务错误映射
func respondServiceError(c *gin.Context, err error, logMessage string) {
	switch {
	case errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrReturnNotFound):
		shared.RespondError(c, http.StatusNotFound, response.CodeNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidStatus):
		shared.RespondError(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidTransition):
		shared.RespondError(c, http.StatusConflict, response.CodeConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrStaffDisabled):
		shared.RespondError(c, http.StatusUnauthorized, response.CodeUnauthorized, err.Error())
	default:
		shared.RespondInternal(c, logMessage, err)
	}
}
