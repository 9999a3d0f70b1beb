package public

import (
	"net/http"

	"github.com/shopfront-next/internal/http/handlers/shared"
	"github.com/shopfront-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// getUserID 从认证中间件注入的上下文取顾客 ID
func getUserID(c *gin.Context) (uint, bool) {
	userID, ok := shared.GetContextUint(c, shared.ContextKeyUserID)
	if !ok || userID == 0 {
		shared.RespondError(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return 0, false
	}
	return userID, true
}
