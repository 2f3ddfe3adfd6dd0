package main

import (
	"context"
	"os"

	aws_pkg "github.com/oghenejabor/Firebaseadmin/pkg/aws"
)

// Config holds all environment variables for the admin console service.
type Config struct {
	Port          string // Service port (default: 8080)
	Environment   string // "production" or "development"
	RedisURL      string // Redis connection URL for the catalog cache
	DocumentTable string // DynamoDB table backing the document store
	S3Bucket      string // Upload bucket
	S3Prefix      string // Key prefix for uploaded objects
	CDNDomain     string // Optional CloudFront domain for public URLs
}

// LoadConfig loads environment variables into a Config struct, applying
// defaults. If AWS_USE_SECRETS=true it will attempt to read the Redis URL
// from Secrets Manager and fall back to env vars on failure.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:          os.Getenv("PORT"),
		Environment:   os.Getenv("APP_ENV"),
		RedisURL:      os.Getenv("REDIS_URL"),
		DocumentTable: os.Getenv("DDB_TABLE_DOCUMENTS"),
		S3Bucket:      os.Getenv("AWS_S3_BUCKET"),
		S3Prefix:      os.Getenv("AWS_S3_PREFIX"),
		CDNDomain:     os.Getenv("AWS_CLOUDFRONT_DOMAIN"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.RedisURL == "" {
		cfg.RedisURL = "redis://redis:6379"
	}
	if cfg.DocumentTable == "" {
		cfg.DocumentTable = "AdminDocuments"
	}
	if cfg.S3Bucket == "" {
		cfg.S3Bucket = "admin-console"
	}
	if cfg.S3Prefix == "" {
		cfg.S3Prefix = "media/"
	}

	if os.Getenv("AWS_USE_SECRETS") == "true" {
		if awsCfg, err := aws_pkg.LoadAWSConfig(context.Background()); err == nil {
			sm := aws_pkg.NewSecretsClient(awsCfg)

			if redisURL, err := sm.GetSecret(context.Background(), "admin-console/REDIS_URL"); err == nil && redisURL != "" {
				cfg.RedisURL = redisURL
			}
		}
	}

	return cfg, nil
}
