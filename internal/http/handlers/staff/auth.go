package staff

import (
	"net/http"

	"github.com/shopfront-next/internal/http/handlers/shared"
	"github.com/shopfront-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 运营账号登录
// POST /api/v1/staff/login
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, http.StatusBadRequest, response.CodeBadRequest, "username and password are required")
		return
	}

	token, staff, err := h.authService.StaffLogin(req.Username, req.Password)
	if err != nil {
		respondServiceError(c, err, "staff_login_failed")
		return
	}

	response.Success(c, gin.H{
		"token": token,
		"staff": gin.H{
			"id":       staff.ID,
			"username": staff.Username,
			"role":     staff.Role,
		},
	})
}
