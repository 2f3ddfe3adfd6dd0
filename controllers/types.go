package controllers

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"time"

	apperrors "github.com/oghenejabor/Firebaseadmin/errors"
	"github.com/oghenejabor/Firebaseadmin/models"
	"github.com/oghenejabor/Firebaseadmin/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Default configuration values
const (
	DefaultCacheTTL       = 10 * time.Minute
	DefaultContextTimeout = 30 * time.Second
)

// ImportServiceAPI defines the interface for import workflow operations.
type ImportServiceAPI interface {
	ValidateImport(ctx context.Context, dest models.Destination, fileText string) (*services.ImportPreview, error)
	ProcessImport(ctx context.Context, req services.ImportRequest) (*models.ImportResult, error)
}

// CatalogServiceAPI defines the interface for collection operations.
type CatalogServiceAPI interface {
	ListShopCategories(ctx context.Context) ([]services.ShopCategorySummary, error)
	CreateShopCategory(ctx context.Context, req services.CategoryCreateRequest) (string, error)
	DeleteShopCategory(ctx context.Context, id string) error
	ListHomeCollections(ctx context.Context) ([]services.HomeCollectionSummary, error)
	CreateHomeCollection(ctx context.Context, req services.CollectionCreateRequest) (string, error)
	DeleteHomeCollection(ctx context.Context, id string) error
}

// UploadServiceAPI defines the interface for object-store uploads.
type UploadServiceAPI interface {
	Upload(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (string, string, error)
	PresignUpload(ctx context.Context, folder, filename, contentType string, expiresSeconds int64) (string, string, string, error)
}

// respondError maps an application error onto its HTTP status; anything else
// is logged and hidden behind a 500.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	zap.L().Error("Unhandled error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
