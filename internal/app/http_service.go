package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/shopfront-next/internal/logger"
)

const shutdownTimeout = 15 * time.Second

// HTTPService 包装 http.Server 为托管服务
type HTTPService struct {
	server *http.Server
}

// NewHTTPService 创建 HTTP 服务
func NewHTTPService(addr string, handler http.Handler) *HTTPService {
	return &HTTPService{
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Name 服务名
func (s *HTTPService) Name() string {
	return "http"
}

// Start 启动监听，正常关闭不作为错误返回
func (s *HTTPService) Start() error {
	logger.Infow("http_listening", "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop 优雅停机
func (s *HTTPService) Stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}
