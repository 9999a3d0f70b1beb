package public

import "github.com/shopfront-next/internal/service"

// Handler 顾客侧 API 处理器
type Handler struct {
	catalogService *service.CatalogService
	cartService    *service.CartService
	orderService   *service.OrderService
	returnService  *service.ReturnService
}

// NewHandler 创建顾客侧处理器
func NewHandler(
	catalogService *service.CatalogService,
	cartService *service.CartService,
	orderService *service.OrderService,
	returnService *service.ReturnService,
) *Handler {
	return &Handler{
		catalogService: catalogService,
		cartService:    cartService,
		orderService:   orderService,
		returnService:  returnService,
	}
}
