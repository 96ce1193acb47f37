package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/et891/ecommerce-api/internal/config"
	"github.com/et891/ecommerce-api/internal/delivery/events"
	httpDelivery "github.com/et891/ecommerce-api/internal/delivery/http"
	"github.com/et891/ecommerce-api/internal/delivery/http/handler"
	"github.com/et891/ecommerce-api/internal/pkg/cache"
	"github.com/et891/ecommerce-api/internal/pkg/database"
	"github.com/et891/ecommerce-api/internal/pkg/logger"
	cacheRepo "github.com/et891/ecommerce-api/internal/repository/cache"
	"github.com/et891/ecommerce-api/internal/repository/postgres"
	"github.com/et891/ecommerce-api/internal/usecase/category"
	"github.com/et891/ecommerce-api/internal/usecase/product"
	"github.com/et891/ecommerce-api/internal/usecase/rating"
	"github.com/et891/ecommerce-api/internal/usecase/review"

	_ "github.com/et891/ecommerce-api/docs"
)

// @title E-Commerce API
// @version 1.0
// @description Product catalog, categories and reviews with write-time aggregate rating maintenance.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @tag.name Products
// @tag.description Product catalog endpoints

// @tag.name Reviews
// @tag.description Review management endpoints

// @tag.name Categories
// @tag.description Category management endpoints

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(cfg.Env)
	appLogger.Info("Starting E-Commerce API...")

	appLogger.Info("Connecting to PostgreSQL...")
	db, err := database.WaitForDB(cfg, 10, 2*time.Second)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		appLogger.Fatal("Failed to run migrations", err)
	}
	appLogger.Info("Connected to PostgreSQL successfully")

	appLogger.Info("Connecting to Redis...")
	redisClient, err := cache.WaitForRedis(cfg, 10, 2*time.Second)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()
	appLogger.Info("Connected to Redis successfully")

	appLogger.Info("Connecting to NATS...")
	publisher, err := events.NewPublisher(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create NATS publisher", err)
	}
	defer publisher.Close()

	txManager := postgres.NewTxManager(db)
	productRepo := postgres.NewProductRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	redisCache := cacheRepo.NewRedisCache(redisClient, cfg.Cache.ReviewsListTTL)

	ratingService := rating.NewService(productRepo, reviewRepo, appLogger)
	productService := product.NewService(productRepo, categoryRepo, appLogger)
	categoryService := category.NewService(categoryRepo, appLogger)
	reviewService := review.NewService(txManager, reviewRepo, productRepo, ratingService, redisCache, publisher, appLogger)

	productHandler := handler.NewProductHandler(productService, appLogger)
	reviewHandler := handler.NewReviewHandler(reviewService, appLogger)
	categoryHandler := handler.NewCategoryHandler(categoryService, appLogger)

	router := httpDelivery.NewRouter(productHandler, reviewHandler, categoryHandler, cfg, appLogger)
	httpHandler := router.Setup()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      httpHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		appLogger.Infof("HTTP server listening on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("HTTP server failed", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	appLogger.Info("Server stopped gracefully")
}
