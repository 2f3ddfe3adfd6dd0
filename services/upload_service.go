package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// UploadService mediates file uploads to the object store for the sibling
// admin screens. It supports server-side uploads and presigned PUT URLs for
// browser-direct uploads.
type UploadService struct {
	s3Client      *s3.Client
	presignClient *s3.PresignClient
	bucket        string
	prefix        string
	endpoint      string
	cdnDomain     string
}

func NewUploadService(s3Client *s3.Client, presignClient *s3.PresignClient, bucket, prefix, endpoint, cdnDomain string) *UploadService {
	return &UploadService{
		s3Client:      s3Client,
		presignClient: presignClient,
		bucket:        bucket,
		prefix:        prefix,
		endpoint:      endpoint,
		cdnDomain:     cdnDomain,
	}
}

// Upload stores the file under {prefix}{folder}/{uuid}{ext} and returns the
// public URL and object key.
func (s *UploadService) Upload(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (string, string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", "", fmt.Errorf("failed to read upload: %w", err)
	}

	key := s.objectKey(folder, fileHeader.Filename)
	_, err = s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(fileHeader.Header.Get("Content-Type")),
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload object: %w", err)
	}

	return s.publicURL(key), key, nil
}

// PresignUpload returns a presigned PUT URL, the object key, and the public
// URL the object will be served from once uploaded.
func (s *UploadService) PresignUpload(ctx context.Context, folder, filename, contentType string, expiresSeconds int64) (string, string, string, error) {
	key := s.objectKey(folder, filename)
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}

	presignedReq, err := s.presignClient.PresignPutObject(ctx, input, func(opts *s3.PresignOptions) {
		opts.Expires = time.Duration(expiresSeconds) * time.Second
	})
	if err != nil {
		return "", "", "", fmt.Errorf("failed to presign put object: %w", err)
	}

	return presignedReq.URL, key, s.publicURL(key), nil
}

func (s *UploadService) objectKey(folder, filename string) string {
	folder = strings.Trim(folder, "/")
	if folder == "" {
		folder = "uploads"
	}
	ext := filepath.Ext(filename)
	return fmt.Sprintf("%s%s/%s%s", s.prefix, folder, uuid.New().String(), ext)
}

func (s *UploadService) publicURL(key string) string {
	if s.cdnDomain != "" {
		return fmt.Sprintf("https://%s/%s", strings.TrimRight(s.cdnDomain, "/"), key)
	}
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.endpoint, "/"), s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
}
