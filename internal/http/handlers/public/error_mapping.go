package public

import (
	"errors"
	"net/http"

	"github.com/shopfront-next/internal/http/handlers/shared"
	"github.com/shopfront-next/internal/http/response"
	"github.com/shopfront-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 业务哨兵错误到 HTTP 响应的映射
type mappedHandlerError struct {
	target     error
	httpStatus int
	code       int
}

var commonErrorMappings = []mappedHandlerError{
	{service.ErrProductNotFound, http.StatusNotFound, response.CodeNotFound},
	{service.ErrCartItemNotFound, http.StatusNotFound, response.CodeNotFound},
	{service.ErrOrderNotFound, http.StatusNotFound, response.CodeNotFound},
	{service.ErrReturnNotFound, http.StatusNotFound, response.CodeNotFound},
	{service.ErrInsufficientStock, http.StatusConflict, response.CodeConflict},
	{service.ErrReturnAlreadyActive, http.StatusConflict, response.CodeConflict},
	{service.ErrOrderNotReturnable, http.StatusConflict, response.CodeConflict},
	{service.ErrInvalidTransition, http.StatusConflict, response.CodeConflict},
	{service.ErrInvalidQuantity, http.StatusBadRequest, response.CodeBadRequest},
	{service.ErrEmptyCart, http.StatusBadRequest, response.CodeBadRequest},
	{service.ErrEmptyAddress, http.StatusBadRequest, response.CodeBadRequest},
	{service.ErrEmptyReason, http.StatusBadRequest, response.CodeBadRequest},
	{service.ErrItemNotInOrder, http.StatusBadRequest, response.CodeBadRequest},
	{service.ErrInvalidStatus, http.StatusBadRequest, response.CodeBadRequest},
}

// respondWithMappedError 按映射表返回业务错误，未命中则按内部错误处理
func respondWithMappedError(c *gin.Context, err error, logMessage string) {
	for _, mapping := range commonErrorMappings {
		if errors.Is(err, mapping.target) {
			shared.RespondError(c, mapping.httpStatus, mapping.code, err.Error())
			return
		}
	}
	shared.RespondInternal(c, logMessage, err)
}
