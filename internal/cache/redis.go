package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopfront-next/internal/logger"

	"github.com/redis/go-redis/v9"
)

var (
	client *redis.Client
	prefix string
)

// Options Redis 连接参数
type Options struct {
	Host     string
	Port     int
	Password string
	DB       int
	Prefix   string
}

// Init 初始化 Redis 客户端，连接失败时降级为禁用
func Init(opts Options) error {
	prefix = opts.Prefix
	if prefix == "" {
		prefix = "sf"
	}

	c := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := c.Ping(ctx).Err(); err != nil {
		logger.Warnw("redis_ping_failed", "addr", c.Options().Addr, "error", err)
		return err
	}

	client = c
	logger.Infow("redis_connected", "addr", c.Options().Addr, "db", opts.DB)
	return nil
}

// Enabled Redis 是否可用
func Enabled() bool {
	return client != nil
}

// Client 返回底层客户端，未启用时为 nil
func Client() *redis.Client {
	return client
}

// Close 关闭连接
func Close() error {
	if client == nil {
		return nil
	}
	err := client.Close()
	client = nil
	return err
}

func buildKey(key string) string {
	return prefix + ":" + key
}

// Key 返回带前缀的完整键名，供直接操作客户端的调用方使用
func Key(key string) string {
	return buildKey(key)
}

// GetJSON 读取 JSON 值，返回是否命中
func GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	if client == nil {
		return false, nil
	}
	raw, err := client.Get(ctx, buildKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decode cache value: %w", err)
	}
	return true, nil
}

// SetJSON 写入 JSON 值
func SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode cache value: %w", err)
	}
	return client.Set(ctx, buildKey(key), raw, ttl).Err()
}

// Del 删除缓存键
func Del(ctx context.Context, keys ...string) error {
	if client == nil || len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = buildKey(k)
	}
	return client.Del(ctx, full...).Err()
}
