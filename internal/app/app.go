package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"go-hrm/internal/middleware"
	"go-hrm/internal/shared/connection"
	"go-hrm/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// BuildApp connects the infrastructure, applies migrations, and wires
// every module's routes onto the router.
func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		envOr("DB_SSLMODE", "disable"),
		5,
	)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	if err := connection.RunMigrations(connection.PostgresURL(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		envOr("DB_SSLMODE", "disable"),
	)); err != nil {
		return err
	}
	logger.Info("migrations applied")

	redisClient, err := connection.ConnectRedisWithRetry(envOr("REDIS_ADDR", "localhost:6379"), 5)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	store, uploadDir, err := buildStorage(context.Background())
	if err != nil {
		return err
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))
	router.Use(middleware.RateLimitByIP(rate.Every(time.Second/20), 40))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{envOr("CORS_ORIGIN", "*")},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID", "X-Actor", "Idempotency-Key"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	if uploadDir != "" {
		router.Static("/uploads", uploadDir)
	}

	return registerModules(router, gormDB, redisClient, store)
}

// buildStorage picks the avatar blob driver from STORAGE_DRIVER. The
// second return value is the local directory to serve, empty for s3.
func buildStorage(ctx context.Context) (storage.Storage, string, error) {
	switch driver := envOr("STORAGE_DRIVER", "local"); driver {
	case "local":
		dir := envOr("UPLOAD_DIR", "uploads")
		store, err := storage.NewLocalStorage(dir)
		if err != nil {
			return nil, "", err
		}
		return store, dir, nil
	case "s3":
		bucket := os.Getenv("S3_BUCKET")
		if bucket == "" {
			return nil, "", fmt.Errorf("S3_BUCKET is required when STORAGE_DRIVER=s3")
		}
		store, err := storage.NewS3Storage(ctx, bucket, os.Getenv("S3_PUBLIC_URL"))
		if err != nil {
			return nil, "", err
		}
		return store, "", nil
	default:
		return nil, "", fmt.Errorf("unknown STORAGE_DRIVER %q", driver)
	}
}
