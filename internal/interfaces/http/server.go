// internal/interfaces/http/server.go
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/freshify/freshify-backend/internal/config"
	"github.com/freshify/freshify-backend/internal/domain/catalog"
	"github.com/freshify/freshify-backend/internal/infrastructure/storage"
	"github.com/freshify/freshify-backend/internal/interfaces/http/middleware"
	"github.com/freshify/freshify-backend/internal/interfaces/http/routes"
)

// Server wraps the HTTP server and its dependencies
type Server struct {
	config     *config.Config
	router     *gin.Engine
	httpServer *http.Server
	log        *logrus.Logger
}

// NewServer creates a new HTTP server. redisClient may be nil when the
// in-memory store driver is active.
func NewServer(
	cfg *config.Config,
	store storage.Store,
	cat *catalog.Catalog,
	redisClient *goredis.Client,
	log *logrus.Logger,
) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(cfg))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Timeout(30 * time.Second))
	router.Use(middleware.RequestSizeLimit(1 << 20)) // 1 MB

	registerHealth(router, cfg, redisClient)
	routes.SetupRoutes(router, cfg, store, cat, redisClient, log)

	return &Server{
		config: cfg,
		router: router,
		log:    log,
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Router exposes the gin engine, mainly for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start begins listening for HTTP requests
func (s *Server) Start() error {
	s.log.WithFields(logrus.Fields{
		"port":        s.config.Server.Port,
		"environment": s.config.App.Environment,
	}).Info("🚀 HTTP server starting")

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

// registerHealth mounts liveness and readiness probes
func registerHealth(router *gin.Engine, cfg *config.Config, redisClient *goredis.Client) {
	router.GET("/health", func(c *gin.Context) {
		status := gin.H{
			"status":  "healthy",
			"service": cfg.App.Name,
			"version": cfg.App.Version,
			"time":    time.Now().UTC().Format(time.RFC3339),
		}

		if redisClient != nil {
			if err := redisClient.Ping(c.Request.Context()).Err(); err != nil {
				status["status"] = "degraded"
				status["redis"] = "unreachable"
				c.JSON(http.StatusServiceUnavailable, status)
				return
			}
			status["redis"] = "ok"
		}

		c.JSON(http.StatusOK, status)
	})
}
