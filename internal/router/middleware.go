package router

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shopfront-next/internal/authz"
	"github.com/shopfront-next/internal/config"
	"github.com/shopfront-next/internal/http/handlers/shared"
	"github.com/shopfront-next/internal/http/response"
	"github.com/shopfront-next/internal/logger"
	"github.com/shopfront-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDMiddleware 为每个请求注入请求 ID
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(shared.ContextKeyRequestID, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// LoggerMiddleware 访问日志
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Infow("http_request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
			"request_id", c.GetString(shared.ContextKeyRequestID),
		)
	}
}

// CORSMiddleware 跨域控制
func CORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowedMethods := strings.Join(cfg.AllowedMethods, ", ")
	allowedHeaders := strings.Join(cfg.AllowedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowed := resolveAllowedOrigin(cfg.AllowedOrigins, origin); allowed != "" {
			c.Header("Access-Control-Allow-Origin", allowed)
			if allowed != "*" {
				c.Header("Vary", "Origin")
			}
			if cfg.AllowCredentials && allowed != "*" {
				c.Header("Access-Control-Allow-Credentials", "true")
			}
			c.Header("Access-Control-Allow-Methods", allowedMethods)
			c.Header("Access-Control-Allow-Headers", allowedHeaders)
			if cfg.MaxAge > 0 {
				c.Header("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func resolveAllowedOrigin(allowed []string, origin string) string {
	for _, a := range allowed {
		if a == "*" {
			return "*"
		}
		if strings.EqualFold(a, origin) {
			return origin
		}
	}
	return ""
}

func extractBearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// UserAuthMiddleware 校验顾客令牌并注入 user_id
func UserAuthMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractBearerToken(c)
		if !ok {
			shared.RespondError(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
			c.Abort()
			return
		}

		claims, err := authService.ParseUserToken(token)
		if err != nil {
			shared.RespondError(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(shared.ContextKeyUserID, claims.UserID)
		c.Next()
	}
}

// StaffAuthMiddleware 校验运营令牌并注入身份与角色
func StaffAuthMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractBearerToken(c)
		if !ok {
			shared.RespondError(c, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
			c.Abort()
			return
		}

		claims, err := authService.ParseStaffToken(token)
		if err != nil {
			shared.RespondError(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(shared.ContextKeyStaffID, claims.StaffID)
		c.Set(shared.ContextKeyStaffRole, claims.Role)
		c.Next()
	}
}

// RBACMiddleware 按角色策略放行运营后台请求
func RBACMiddleware(authzService *authz.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := shared.GetContextString(c, shared.ContextKeyStaffRole)
		if !ok || role == "" {
			shared.RespondError(c, http.StatusForbidden, response.CodeForbidden, "access denied")
			c.Abort()
			return
		}

		subject := authz.SubjectForRole(role)
		if !authzService.Enforce(subject, c.FullPath(), c.Request.Method) {
			shared.RespondError(c, http.StatusForbidden, response.CodeForbidden, "access denied")
			c.Abort()
			return
		}
		c.Next()
	}
}
