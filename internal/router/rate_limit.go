package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopfront-next/internal/cache"
	"github.com/shopfront-next/internal/http/handlers/shared"
	"github.com/shopfront-next/internal/http/response"
	"github.com/shopfront-next/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// 固定窗口计数：首次自增时设置过期
var rateLimitScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
	redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RateLimitRule 限流规则
type RateLimitRule struct {
	Name        string
	Window      time.Duration
	MaxAttempts int
	KeyFunc     func(c *gin.Context) string
}

// KeyByIP 按客户端 IP 限流
func KeyByIP(c *gin.Context) string {
	return c.ClientIP()
}

// KeyByIPAndJSONField 按 IP 加请求体字段限流，读取后回填 body
func KeyByIPAndJSONField(field string) func(c *gin.Context) string {
	return func(c *gin.Context) string {
		raw, err := c.GetRawData()
		if err != nil {
			return c.ClientIP()
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(raw))

		var body map[string]interface{}
		if err := json.Unmarshal(raw, &body); err != nil {
			return c.ClientIP()
		}
		value, _ := body[field].(string)
		if value == "" {
			return c.ClientIP()
		}
		return c.ClientIP() + ":" + value
	}
}

// RateLimitMiddleware 基于 Redis 的固定窗口限流，Redis 不可用时直接放行
func RateLimitMiddleware(rule RateLimitRule) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cache.Enabled() {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s:%s", rule.Name, rule.KeyFunc(c))
		windowSeconds := int64(rule.Window.Seconds())
		if windowSeconds < 1 {
			windowSeconds = 1
		}

		result, err := rateLimitScript.Run(
			c.Request.Context(),
			cache.Client(),
			[]string{cache.Key(key)},
			windowSeconds,
		).Result()
		if err != nil {
			logger.Warnw("rate_limit_script_failed", "rule", rule.Name, "error", err)
			c.Next()
			return
		}

		if toInt64(result) > int64(rule.MaxAttempts) {
			shared.RespondError(c, http.StatusTooManyRequests, response.CodeTooManyRequests, "too many requests")
			c.Abort()
			return
		}
		c.Next()
	}
}

func toInt64(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case string:
		var n int64
		fmt.Sscanf(v, "%d", &n)
		return n
	default:
		return 0
	}
}
