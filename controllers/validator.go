package controllers

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validation constants
const (
	MaxUploadSize    = 50 * 1024 * 1024 // 50MB
	MaxPresignExpiry = 3600             // seconds
)

var (
	allowedCSVExtensions = map[string]bool{
		".csv": true,
		".txt": true,
	}

	allowedImageTypes = map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/webp": true,
		"image/gif":  true,
	}
)

var validate = validator.New()

// RequestValidator handles all input validation.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{
		validate: validate,
	}
}

// Struct validates a request struct against its validate tags.
func (rv *RequestValidator) Struct(s interface{}) error {
	return rv.validate.Struct(s)
}

// IsValidCSVFile checks if the file is a valid CSV.
func (rv *RequestValidator) IsValidCSVFile(file *multipart.FileHeader) bool {
	contentType := file.Header.Get("Content-Type")
	if contentType == "text/csv" || contentType == "application/csv" || contentType == "text/plain" {
		return true
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	return allowedCSVExtensions[ext]
}

// IsValidImageType checks if the file is a valid image.
func (rv *RequestValidator) IsValidImageType(file *multipart.FileHeader) bool {
	if allowedImageTypes[file.Header.Get("Content-Type")] {
		return true
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp", ".gif":
		return true
	}

	return false
}

// ValidateFileSize checks if file size is within limits.
func (rv *RequestValidator) ValidateFileSize(file *multipart.FileHeader) error {
	if file.Size > MaxUploadSize {
		return fmt.Errorf("file too large (max %dMB)", MaxUploadSize/(1024*1024))
	}
	return nil
}
