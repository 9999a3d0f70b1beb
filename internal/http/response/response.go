package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// envelope 统一响应结构
type envelope struct {
	StatusCode int         `json:"status_code"`
	Msg        string      `json:"msg"`
	Data       interface{} `json:"data,omitempty"`
	RequestID  string      `json:"request_id,omitempty"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	body := envelope{
		StatusCode: CodeOK,
		Msg:        "ok",
		Data:       data,
	}
	attachRequestID(c, &body)
	c.JSON(http.StatusOK, body)
}

// Error 失败响应，HTTP 状态与业务码对齐
func Error(c *gin.Context, httpStatus, code int, msg string) {
	body := envelope{
		StatusCode: code,
		Msg:        msg,
	}
	attachRequestID(c, &body)
	c.JSON(httpStatus, body)
}

func attachRequestID(c *gin.Context, body *envelope) {
	if requestID := c.GetString("request_id"); requestID != "" {
		body.RequestID = requestID
	}
}
