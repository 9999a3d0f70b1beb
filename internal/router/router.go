package router

import (
	"net/http"
	"time"

	"github.com/shopfront-next/internal/config"
	"github.com/shopfront-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// New 组装全部路由
func New(cfg *config.Config, container *provider.Container) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		RequestIDMiddleware(),
		LoggerMiddleware(),
		CORSMiddleware(cfg.CORS),
	)

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().Unix()})
	})

	api := engine.Group("/api/v1")

	// 商品目录无需认证
	publicGroup := api.Group("/public")
	{
		publicGroup.GET("/products", container.PublicHandler.ListProducts)
		publicGroup.GET("/products/:id", container.PublicHandler.GetProduct)
		publicGroup.GET("/categories", container.PublicHandler.ListCategories)
	}

	// 顾客侧需通过外部身份服务签发的令牌
	userGroup := api.Group("")
	userGroup.Use(UserAuthMiddleware(container.AuthService))
	{
		userGroup.GET("/cart", container.PublicHandler.GetCart)
		userGroup.DELETE("/cart", container.PublicHandler.ClearCart)
		userGroup.POST("/cart/items", container.PublicHandler.AddCartItem)
		userGroup.PUT("/cart/items/:id", container.PublicHandler.UpdateCartItem)
		userGroup.DELETE("/cart/items/:id", container.PublicHandler.RemoveCartItem)

		userGroup.POST("/checkout",
			RateLimitMiddleware(RateLimitRule{
				Name:        "checkout",
				Window:      time.Duration(cfg.Security.CheckoutRateLimit.WindowSeconds) * time.Second,
				MaxAttempts: cfg.Security.CheckoutRateLimit.MaxAttempts,
				KeyFunc:     KeyByIP,
			}),
			container.PublicHandler.Checkout,
		)
		userGroup.GET("/checkout/preview", container.PublicHandler.PreviewCheckout)

		userGroup.GET("/orders", container.PublicHandler.ListOrders)
		userGroup.GET("/orders/:id", container.PublicHandler.GetOrder)

		userGroup.POST("/returns", container.PublicHandler.RequestReturn)
		userGroup.GET("/returns", container.PublicHandler.ListReturns)
	}

	// 运营后台
	staffGroup := api.Group("/staff")
	{
		staffGroup.POST("/login",
			RateLimitMiddleware(RateLimitRule{
				Name:        "staff_login",
				Window:      time.Duration(cfg.Security.StaffLoginRateLimit.WindowSeconds) * time.Second,
				MaxAttempts: cfg.Security.StaffLoginRateLimit.MaxAttempts,
				KeyFunc:     KeyByIPAndJSONField("username"),
			}),
			container.StaffHandler.Login,
		)

		protected := staffGroup.Group("")
		protected.Use(
			StaffAuthMiddleware(container.AuthService),
			RBACMiddleware(container.AuthzService),
		)
		{
			protected.GET("/orders", container.StaffHandler.ListOrders)
			protected.GET("/orders/:id", container.StaffHandler.GetOrder)
			protected.PUT("/orders/:id/status", container.StaffHandler.UpdateOrderStatus)
			protected.PUT("/orders/:id/payment", container.StaffHandler.AttachPaymentReference)
			protected.GET("/returns", container.StaffHandler.ListReturns)
			protected.PUT("/returns/:id/status", container.StaffHandler.ReviewReturn)
		}
	}

	return engine
}
