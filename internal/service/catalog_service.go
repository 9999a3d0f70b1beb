package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopfront-next/internal/cache"
	"github.com/shopfront-next/internal/logger"
	"github.com/shopfront-next/internal/models"
	"github.com/shopfront-next/internal/repository"
)

const (
	productCacheTTL  = 5 * time.Minute
	categoryCacheKey = "catalog:categories"
)

// CatalogService 商品目录读取服务
type CatalogService struct {
	productRepo repository.ProductRepository
}

// NewCatalogService 创建商品目录服务
func NewCatalogService(productRepo repository.ProductRepository) *CatalogService {
	return &CatalogService{productRepo: productRepo}
}

// ProductPage 商品分页结果
type ProductPage struct {
	Products []models.Product `json:"products"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// ListProducts 按分类、推荐位与关键字过滤商品
func (s *CatalogService) ListProducts(filter repository.ProductFilter) (*ProductPage, error) {
	products, total, err := s.productRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	return &ProductPage{
		Products: products,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

// GetProduct 商品详情，带 Redis 读穿缓存
func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	cacheKey := fmt.Sprintf("catalog:product:%d", id)

	if cache.Enabled() {
		var cached models.Product
		ok, err := cache.GetJSON(ctx, cacheKey, &cached)
		if err != nil {
			logger.Warnw("product_cache_read_failed", "product_id", id, "error", err)
		} else if ok {
			return &cached, nil
		}
	}

	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if cache.Enabled() {
		if err := cache.SetJSON(ctx, cacheKey, product, productCacheTTL); err != nil {
			logger.Warnw("product_cache_write_failed", "product_id", id, "error", err)
		}
	}
	return product, nil
}

// ListCategories 商品分类列表，带 Redis 缓存
func (s *CatalogService) ListCategories(ctx context.Context) ([]string, error) {
	if cache.Enabled() {
		var cached []string
		ok, err := cache.GetJSON(ctx, categoryCacheKey, &cached)
		if err != nil {
			logger.Warnw("category_cache_read_failed", "error", err)
		} else if ok {
			return cached, nil
		}
	}

	categories, err := s.productRepo.Categories()
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	if cache.Enabled() {
		if err := cache.SetJSON(ctx, categoryCacheKey, categories, productCacheTTL); err != nil {
			logger.Warnw("category_cache_write_failed", "error", err)
		}
	}
	return categories, nil
}

// InvalidateProduct 商品变更后清理缓存
func (s *CatalogService) InvalidateProduct(ctx context.Context, id uint) {
	if !cache.Enabled() {
		return
	}
	keys := []string{
		fmt.Sprintf("catalog:product:%d", id),
		categoryCacheKey,
	}
	if err := cache.Del(ctx, keys...); err != nil {
		logger.Warnw("product_cache_invalidate_failed", "product_id", id, "error", err)
	}
}
