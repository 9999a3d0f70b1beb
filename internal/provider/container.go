package provider

import (
	"fmt"

	"github.com/shopfront-next/internal/authz"
	"github.com/shopfront-next/internal/config"
	"github.com/shopfront-next/internal/http/handlers/public"
	"github.com/shopfront-next/internal/http/handlers/staff"
	"github.com/shopfront-next/internal/repository"
	"github.com/shopfront-next/internal/service"

	"gorm.io/gorm"
)

// Container 依赖装配容器
type Container struct {
	cfg *config.Config
	db  *gorm.DB

	// repositories
	ProductRepo repository.ProductRepository
	CartRepo    repository.CartRepository
	OrderRepo   repository.OrderRepository
	ReturnRepo  repository.ReturnRepository
	StaffRepo   repository.StaffRepository

	// services
	CatalogService *service.CatalogService
	CartService    *service.CartService
	OrderService   *service.OrderService
	ReturnService  *service.ReturnService
	AuthService    *service.AuthService
	AuthzService   *authz.Service

	// handlers
	PublicHandler *public.Handler
	StaffHandler  *staff.Handler
}

// NewContainer 按依赖顺序装配
func NewContainer(cfg *config.Config, db *gorm.DB) (*Container, error) {
	c := &Container{cfg: cfg, db: db}
	c.initRepositories()
	if err := c.initServices(); err != nil {
		return nil, err
	}
	c.initHandlers()
	return c, nil
}

func (c *Container) initRepositories() {
	c.ProductRepo = repository.NewGormProductRepository(c.db)
	c.CartRepo = repository.NewGormCartRepository(c.db)
	c.OrderRepo = repository.NewGormOrderRepository(c.db)
	c.ReturnRepo = repository.NewGormReturnRepository(c.db)
	c.StaffRepo = repository.NewGormStaffRepository(c.db)
}

func (c *Container) initServices() error {
	c.CatalogService = service.NewCatalogService(c.ProductRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.OrderService = service.NewOrderService(c.db, c.OrderRepo, c.CartRepo, c.ProductRepo, service.OrderServiceConfig{
		TaxRate:     c.cfg.Checkout.TaxRateDecimal(),
		ShippingFee: c.cfg.Checkout.ShippingFeeDecimal(),
	})
	c.ReturnService = service.NewReturnService(c.db, c.ReturnRepo, c.OrderRepo)
	c.AuthService = service.NewAuthService(
		c.StaffRepo,
		c.cfg.StaffJWT.SecretKey,
		c.cfg.StaffJWT.ExpireHours,
		c.cfg.UserJWT.SecretKey,
	)

	authzService, err := authz.NewService(c.db)
	if err != nil {
		return fmt.Errorf("init authz: %w", err)
	}
	if err := authzService.EnsureDefaultPolicies(); err != nil {
		return fmt.Errorf("ensure authz policies: %w", err)
	}
	c.AuthzService = authzService
	return nil
}

func (c *Container) initHandlers() {
	c.PublicHandler = public.NewHandler(c.CatalogService, c.CartService, c.OrderService, c.ReturnService)
	c.StaffHandler = staff.NewHandler(c.AuthService, c.OrderService, c.ReturnService)
}
