package controllers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UploadController mediates file uploads to the object store. Sibling admin
// screens use it for images and other media; the import workflow itself
// never touches it.
type UploadController struct {
	service   UploadServiceAPI
	validator *RequestValidator
	timeout   time.Duration
}

func NewUploadController(service UploadServiceAPI, validator *RequestValidator) *UploadController {
	return &UploadController{
		service:   service,
		validator: validator,
		timeout:   DefaultContextTimeout,
	}
}

// Upload stores a multipart file server-side and returns its public URL.
func (ctrl *UploadController) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if !ctrl.validator.IsValidImageType(file) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image type. Allowed: jpeg, jpg, png, webp, gif"})
		return
	}
	if err := ctrl.validator.ValidateFileSize(file); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), ctrl.timeout)
	defer cancel()

	url, key, err := ctrl.service.Upload(ctx, file, c.PostForm("folder"))
	if err != nil {
		zap.L().Error("Upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url, "key": key})
}

// Presign returns a presigned PUT URL for a browser-direct upload.
func (ctrl *UploadController) Presign(c *gin.Context) {
	filename := strings.TrimSpace(c.Query("filename"))
	if filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "filename is required"})
		return
	}
	contentType := strings.TrimSpace(c.Query("contentType"))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	expires := int64(900)
	if raw := strings.TrimSpace(c.Query("expires")); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid expires value"})
			return
		}
		if parsed > MaxPresignExpiry {
			parsed = MaxPresignExpiry
		}
		expires = parsed
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), ctrl.timeout)
	defer cancel()

	uploadURL, key, publicURL, err := ctrl.service.PresignUpload(ctx, c.Query("folder"), filename, contentType, expires)
	if err != nil {
		zap.L().Error("Presign failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to presign upload"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"uploadUrl": uploadURL,
		"key":       key,
		"publicUrl": publicURL,
		"expiresIn": expires,
	})
}
