package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/oghenejabor/Firebaseadmin/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	shopListCacheKind = "shop_categories"
	homeListCacheKind = "home_collections"
)

// CatalogController exposes the collection endpoints the import screen
// needs: listing import targets and creating or removing named groups.
type CatalogController struct {
	service CatalogServiceAPI
	cache   *CacheManager
	timeout time.Duration
}

func NewCatalogController(service CatalogServiceAPI, cache *CacheManager) *CatalogController {
	return &CatalogController{
		service: service,
		cache:   cache,
		timeout: DefaultContextTimeout,
	}
}

func (ctrl *CatalogController) GetShopCategories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), ctrl.timeout)
	defer cancel()

	if cached, ok := ctrl.cache.GetList(ctx, shopListCacheKind); ok {
		c.Data(http.StatusOK, "application/json", cached)
		return
	}

	categories, err := ctrl.service.ListShopCategories(ctx)
	if err != nil {
		zap.L().Error("Failed to list shop categories", zap.Error(err))
		respondError(c, err)
		return
	}

	ctrl.cache.SetListAsync(shopListCacheKind, categories)
	c.JSON(http.StatusOK, categories)
}

func (ctrl *CatalogController) CreateShopCategory(c *gin.Context) {
	var req services.CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if err := validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), ctrl.timeout)
	defer cancel()

	id, err := ctrl.service.CreateShopCategory(ctx, req)
	if err != nil {
		zap.L().Error("Failed to create shop category", zap.Error(err))
		respondError(c, err)
		return
	}

	ctrl.invalidate(ctx)
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (ctrl *CatalogController) DeleteShopCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), ctrl.timeout)
	defer cancel()

	if err := ctrl.service.DeleteShopCategory(ctx, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	ctrl.invalidate(ctx)
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

func (ctrl *CatalogController) GetHomeCollections(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), ctrl.timeout)
	defer cancel()

	if cached, ok := ctrl.cache.GetList(ctx, homeListCacheKind); ok {
		c.Data(http.StatusOK, "application/json", cached)
		return
	}

	collections, err := ctrl.service.ListHomeCollections(ctx)
	if err != nil {
		zap.L().Error("Failed to list home collections", zap.Error(err))
		respondError(c, err)
		return
	}

	ctrl.cache.SetListAsync(homeListCacheKind, collections)
	c.JSON(http.StatusOK, collections)
}

func (ctrl *CatalogController) CreateHomeCollection(c *gin.Context) {
	var req services.CollectionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if err := validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), ctrl.timeout)
	defer cancel()

	id, err := ctrl.service.CreateHomeCollection(ctx, req)
	if err != nil {
		zap.L().Error("Failed to create home collection", zap.Error(err))
		respondError(c, err)
		return
	}

	ctrl.invalidate(ctx)
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (ctrl *CatalogController) DeleteHomeCollection(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), ctrl.timeout)
	defer cancel()

	if err := ctrl.service.DeleteHomeCollection(ctx, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	ctrl.invalidate(ctx)
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

func (ctrl *CatalogController) invalidate(ctx context.Context) {
	if err := ctrl.cache.Invalidate(ctx); err != nil {
		zap.L().Error("CRITICAL: Failed to invalidate catalog cache", zap.Error(err))
	}
}
