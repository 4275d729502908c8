package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flashbot/backend/internal/config"
	"flashbot/backend/internal/handler"
	"flashbot/backend/internal/middleware"
	"flashbot/backend/internal/seed"
	"flashbot/backend/internal/store"
	"flashbot/backend/pkg/logger"
	"flashbot/backend/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file (ignore error in production)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Log.Level, cfg.Log.Format)
	log := logger.GetLogger()

	log.Info("Starting FlashBot Dashboard API...")
	log.Infof("Environment: %s", cfg.Server.Env)

	// Initialize the document store
	var (
		docStore    store.Store
		redisClient *redis.Client
	)
	switch cfg.Store.Driver {
	case "redis":
		log.Info("Connecting to Redis...")
		redisClient, err = redis.New(redis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal("Failed to connect to Redis", err)
		}
		docStore = store.NewRedis(redisClient, cfg.Store.OpTimeout)
		log.Info("Redis connected")
	default:
		docStore = store.NewMemory()
		log.Warn("Using in-memory store; data will not survive restarts")
	}
	defer docStore.Close()

	// Seed empty collections with demo data. Best effort: a failed seed is
	// logged, not fatal, and the next boot retries any still-empty
	// collection.
	if cfg.Seed.Disable {
		log.Info("Seed initializer disabled")
	} else {
		if err := seed.New(docStore, log).Run(context.Background()); err != nil {
			log.Error("Seed initializer failed", err)
		}
	}

	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Apply middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.CORS())
	if redisClient != nil {
		router.Use(middleware.RateLimit(redisClient, cfg.RateLimit.RequestsPerMinute))
	}

	handler.New(docStore).Register(router)

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infof("Server starting on %s", cfg.Server.Address())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", err)
		}
	}()

	log.Info("Server started successfully")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", err)
	}

	log.Info("Server exited")
}
