package public

import (
	"net/http"
	"strconv"

	"github.com/shopfront-next/internal/http/handlers/shared"
	"github.com/shopfront-next/internal/http/response"
	"github.com/shopfront-next/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListProducts 商品列表
// GET /api/v1/public/products?category=&featured=&search=&page=&page_size=
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := shared.NormalizePagination(c)
	filter := repository.ProductFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Page:     page,
		PageSize: pageSize,
	}
	if raw := c.Query("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			shared.RespondError(c, http.StatusBadRequest, response.CodeBadRequest, "invalid featured value")
			return
		}
		filter.Featured = &featured
	}

	result, err := h.catalogService.ListProducts(filter)
	if err != nil {
		shared.RespondInternal(c, "list_products_failed", err)
		return
	}
	response.Success(c, result)
}

// GetProduct 商品详情
// GET /api/v1/public/products/:id
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		shared.RespondError(c, http.StatusBadRequest, response.CodeBadRequest, "invalid product id")
		return
	}

	product, err := h.catalogService.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondWithMappedError(c, err, "get_product_failed")
		return
	}
	response.Success(c, product)
}

// ListCategories 商品分类列表
// GET /api/v1/public/categories
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		shared.RespondInternal(c, "list_categories_failed", err)
		return
	}
	response.Success(c, gin.H{"categories": categories})
}
