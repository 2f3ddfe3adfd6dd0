package controllers

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/oghenejabor/Firebaseadmin/models"
	"github.com/oghenejabor/Firebaseadmin/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ImportController handles the spreadsheet import workflow: upload a CSV for
// a duplicate-checked preview, then write the reviewed candidates back in
// one import action.
type ImportController struct {
	service   ImportServiceAPI
	cache     *CacheManager
	validator *RequestValidator
	timeout   time.Duration
}

func NewImportController(service ImportServiceAPI, cache *CacheManager, validator *RequestValidator) *ImportController {
	return &ImportController{
		service:   service,
		cache:     cache,
		validator: validator,
		timeout:   DefaultContextTimeout,
	}
}

// ValidateImport parses an uploaded CSV and returns the normalized candidate
// list annotated with duplicate flags plus aggregate counts. Nothing is
// written; the client holds the candidates for review.
func (ctrl *ImportController) ValidateImport(c *gin.Context) {
	file, err := ctrl.getAndValidateFile(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dest := models.Destination(c.PostForm("destination"))
	if !dest.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "destination must be store_products or website_links"})
		return
	}

	fileHandle, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open file"})
		return
	}
	defer fileHandle.Close()

	data, err := io.ReadAll(fileHandle)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), ctrl.timeout)
	defer cancel()

	preview, err := ctrl.service.ValidateImport(ctx, dest, string(data))
	if err != nil {
		zap.L().Warn("Import validation failed", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, preview)
}

// Import merges the reviewed candidates into the target category and
// performs the single collection write.
func (ctrl *ImportController) Import(c *gin.Context) {
	var req services.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if err := ctrl.validator.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), ctrl.timeout)
	defer cancel()

	result, err := ctrl.service.ProcessImport(ctx, req)
	if err != nil {
		zap.L().Warn("Import failed", zap.Error(err))
		respondError(c, err)
		return
	}

	if err := ctrl.cache.Invalidate(ctx); err != nil {
		zap.L().Error("CRITICAL: Failed to invalidate cache after import", zap.Error(err))
	}

	c.JSON(http.StatusOK, result)
}

func (ctrl *ImportController) getAndValidateFile(c *gin.Context) (*multipart.FileHeader, error) {
	file, err := c.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("file is required")
	}

	if !ctrl.validator.IsValidCSVFile(file) {
		return nil, fmt.Errorf("invalid file type. Only CSV files are allowed")
	}

	if err := ctrl.validator.ValidateFileSize(file); err != nil {
		return nil, err
	}

	return file, nil
}
