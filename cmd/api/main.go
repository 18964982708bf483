// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/freshify/freshify-backend/internal/config"
	"github.com/freshify/freshify-backend/internal/domain/catalog"
	"github.com/freshify/freshify-backend/internal/infrastructure/database/redis"
	"github.com/freshify/freshify-backend/internal/infrastructure/storage"
	"github.com/freshify/freshify-backend/internal/interfaces/http"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	logger := newLogger(cfg)

	// Product catalog is static reference data
	cat := catalog.Default()

	// Select the persistence substrate
	var (
		store       storage.Store
		redisClient *goredis.Client
	)
	switch cfg.Store.Driver {
	case "redis":
		conn, err := redis.NewConnection(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer conn.Close()

		if err := conn.Health(); err != nil {
			log.Fatalf("Redis health check failed: %v", err)
		}

		redisClient = conn.GetClient()
		store = storage.NewRedisStore(redisClient)
	case "memory":
		log.Println("⚠️  Using in-memory store; data is lost on restart")
		store = storage.NewMemoryStore()
	default:
		log.Fatalf("Unknown store driver %q", cfg.Store.Driver)
	}

	log.Println("✅ All systems operational!")

	// Create and start HTTP server
	server := http.NewServer(cfg, store, cat, redisClient, logger)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("👋 Shutting down gracefully...")

	// Give server 30 seconds to shutdown gracefully
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	log.Println("✅ Server shutdown completed")
}

func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
