package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopfront-next/internal/logger"
)

// Service 可启动与停止的长生命周期组件
type Service interface {
	Name() string
	Start() error
	Stop(ctx context.Context) error
}

// Runner 托管一组服务，任一出错或收到信号时整体退出
type Runner struct {
	services []Service
}

// NewRunner 创建服务托管器
func NewRunner(services ...Service) *Runner {
	return &Runner{services: services}
}

// Run 启动全部服务并阻塞至退出
func (r *Runner) Run(ctx context.Context) error {
	errCh := make(chan error, len(r.services))

	for _, svc := range r.services {
		svc := svc
		go func() {
			logger.Infow("service_starting", "service", svc.Name())
			if err := svc.Start(); err != nil {
				errCh <- err
			}
		}()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-sigCh:
		logger.Infow("shutdown_signal_received", "signal", sig.String())
	case err := <-errCh:
		logger.Errorw("service_failed", "error", err)
		runErr = err
	case <-ctx.Done():
		logger.Infow("context_cancelled")
	}

	r.stopAll(ctx)
	return runErr
}

func (r *Runner) stopAll(ctx context.Context) {
	// 逆序停止
	for i := len(r.services) - 1; i >= 0; i-- {
		svc := r.services[i]
		if err := svc.Stop(ctx); err != nil {
			logger.Errorw("service_stop_failed", "service", svc.Name(), "error", err)
		} else {
			logger.Infow("service_stopped", "service", svc.Name())
		}
	}
}
