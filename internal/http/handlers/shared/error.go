package shared

import (
	"github.com/shopfront-next/internal/http/response"
	"github.com/shopfront-next/internal/logger"

	"github.com/gin-gonic/gin"
)

// RequestLog 记录 handler 内部错误，带请求上下文字段
func RequestLog(c *gin.Context, message string, err error) {
	logger.Errorw(message,
		"error", err,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"request_id", c.GetString(ContextKeyRequestID),
	)
}

// RespondError 统一错误响应出口
func RespondError(c *gin.Context, httpStatus, code int, msg string) {
	response.Error(c, httpStatus, code, msg)
}

// RespondInternal 记录并返回内部错误
func RespondInternal(c *gin.Context, logMessage string, err error) {
	RequestLog(c, logMessage, err)
	response.Error(c, 500, response.CodeInternal, "internal server error")
}
