package app

import (
	"context"
	"fmt"
	"net"

	"github.com/shopfront-next/internal/config"
	"github.com/shopfront-next/internal/models"
	"github.com/shopfront-next/internal/provider"
	"github.com/shopfront-next/internal/router"
)

// BuildRunner 装配依赖并构建服务托管器
func BuildRunner(cfg *config.Config) (*Runner, error) {
	container, err := provider.NewContainer(cfg, models.DB)
	if err != nil {
		return nil, fmt.Errorf("build container: %w", err)
	}

	engine := router.New(cfg, container)
	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	httpService := NewHTTPService(addr, engine)

	return NewRunner(httpService), nil
}

// Run 构建并运行至退出
func Run(ctx context.Context, cfg *config.Config) error {
	runner, err := BuildRunner(cfg)
	if err != nil {
		return err
	}
	return runner.Run(ctx)
}
