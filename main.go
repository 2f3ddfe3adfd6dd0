package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oghenejabor/Firebaseadmin/controllers"
	"github.com/oghenejabor/Firebaseadmin/logger"
	aws_pkg "github.com/oghenejabor/Firebaseadmin/pkg/aws"
	"github.com/oghenejabor/Firebaseadmin/repository"
	"github.com/oghenejabor/Firebaseadmin/routes"
	"github.com/oghenejabor/Firebaseadmin/services"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log := logger.Initialize(cfg.Environment)
	defer log.Sync()

	// --- 1. Initialization ---

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		zap.L().Warn("Failed to parse REDIS_URL, falling back to default", zap.Error(err))
		redisOpts = &redis.Options{Addr: "redis:6379", DB: 0}
	}
	redisClient := redis.NewClient(redisOpts)

	awsCfg, err := aws_pkg.LoadAWSConfig(context.Background())
	if err != nil {
		zap.L().Fatal("Failed to load AWS config", zap.Error(err))
	}

	awsEndpoint := os.Getenv("AWS_ENDPOINT") // e.g. http://localstack:4566
	awsS3Endpoint := os.Getenv("AWS_S3_ENDPOINT")
	if awsS3Endpoint == "" {
		awsS3Endpoint = awsEndpoint
	}

	ddbClient := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if awsEndpoint != "" {
			o.BaseEndpoint = aws.String(awsEndpoint)
		}
	})

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true
		if awsS3Endpoint != "" {
			o.BaseEndpoint = aws.String(awsS3Endpoint)
		}
	})
	presignClient := s3.NewPresignClient(s3Client)

	// --- 2. Dependency Injection (Wiring the layers together) ---

	documentStore := repository.NewDynamoDocumentStore(ddbClient, cfg.DocumentTable)
	catalogRepo := repository.NewCatalogAdapter(documentStore)

	importService := services.NewImportService(catalogRepo)
	catalogService := services.NewCatalogService(catalogRepo)
	uploadService := services.NewUploadService(s3Client, presignClient, cfg.S3Bucket, cfg.S3Prefix, awsS3Endpoint, cfg.CDNDomain)

	validator := controllers.NewRequestValidator()
	cache := controllers.NewCacheManager(redisClient)

	importController := controllers.NewImportController(importService, cache, validator)
	catalogController := controllers.NewCatalogController(catalogService, cache)
	uploadController := controllers.NewUploadController(uploadService, validator)

	// --- 3. HTTP Server & Middleware ---

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger(log))

	// Bound every request so a stalled store call never leaves a client
	// waiting forever.
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// --- 4. Route Registration ---

	routes.RegisterRoutes(r, importController, catalogController, uploadController)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	// --- 5. Graceful Shutdown ---

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("Admin Console Service starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down Admin Console Service...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		zap.L().Error("Failed to close Redis", zap.Error(err))
	}

	zap.L().Info("Admin Console Service stopped gracefully")
}
