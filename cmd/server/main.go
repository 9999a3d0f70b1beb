package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/shopfront-next/internal/app"
	"github.com/shopfront-next/internal/cache"
	"github.com/shopfront-next/internal/config"
	"github.com/shopfront-next/internal/logger"
	"github.com/shopfront-next/internal/models"
)

const banner = `
   _____ __                 ____                 __
  / ___// /_  ____  ____   / __/________  ____  / /_
  \__ \/ __ \/ __ \/ __ \ / /_/ ___/ __ \/ __ \/ __/
 ___/ / / / / /_/ / /_/ // __/ /  / /_/ / / / / /_
/____/_/ /_/\____/ .___//_/ /_/   \____/_/ /_/\__/
                /_/
`

func main() {
	fmt.Print(banner)

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()

	warnWeakSecrets(cfg)

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		logger.Errorw("database_init_failed", "error", err)
		os.Exit(1)
	}
	if err := models.AutoMigrate(); err != nil {
		logger.Errorw("database_migrate_failed", "error", err)
		os.Exit(1)
	}
	if err := models.InitDefaultStaff("admin", "admin123"); err != nil {
		logger.Errorw("default_staff_init_failed", "error", err)
		os.Exit(1)
	}

	if cfg.Redis.Enabled {
		// Redis 故障不阻断启动，缓存与限流自动降级
		if err := cache.Init(cache.Options{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		}); err != nil {
			logger.Warnw("redis_init_failed_degrading", "error", err)
		}
		defer cache.Close()
	}

	if err := app.Run(context.Background(), cfg); err != nil {
		logger.Errorw("server_exited_with_error", "error", err)
		os.Exit(1)
	}
}

func warnWeakSecrets(cfg *config.Config) {
	if cfg.Server.Mode == "debug" {
		return
	}
	if strings.Contains(cfg.StaffJWT.SecretKey, "change-me") ||
		strings.Contains(cfg.UserJWT.SecretKey, "change-me") {
		logger.Warnw("weak_jwt_secret_detected",
			"hint", "set user_jwt.secret and staff_jwt.secret before production use",
		)
	}
}
