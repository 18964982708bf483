// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/freshify/freshify-backend/internal/config"
	"github.com/freshify/freshify-backend/internal/domain/cart"
	"github.com/freshify/freshify-backend/internal/domain/catalog"
	"github.com/freshify/freshify-backend/internal/domain/consumption"
	"github.com/freshify/freshify-backend/internal/domain/order"
	"github.com/freshify/freshify-backend/internal/domain/scan"
	"github.com/freshify/freshify-backend/internal/domain/user"
	"github.com/freshify/freshify-backend/internal/infrastructure/storage"
	"github.com/freshify/freshify-backend/internal/interfaces/http/handlers"
	"github.com/freshify/freshify-backend/internal/interfaces/http/middleware"
	"github.com/freshify/freshify-backend/internal/pkg/auth"
	"github.com/freshify/freshify-backend/internal/pkg/userlock"
)

// SetupRoutes wires domain services and registers all API routes.
// redisClient may be nil when running on the in-memory store; redis-backed
// middleware is skipped in that case.
func SetupRoutes(
	router *gin.Engine,
	cfg *config.Config,
	store storage.Store,
	cat *catalog.Catalog,
	redisClient *goredis.Client,
	log *logrus.Logger,
) {
	locks := userlock.New()

	userService := user.NewService(store, cfg, log)
	cartService := cart.NewService(store, cat, locks, log)
	consumptionService := consumption.NewService(store, locks, log, consumption.WeekStartDay(cfg.Consumption.WeekStart))
	orderService := order.NewService(store, cat, cartService, consumptionService, locks, log)
	scanService := scan.NewService(store, cat, locks, log)

	jwtManager := auth.NewJWTManager(cfg)

	authHandler := handlers.NewAuthHandler(userService, jwtManager, log)
	catalogHandler := handlers.NewCatalogHandler(cat)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)
	consumptionHandler := handlers.NewConsumptionHandler(consumptionService)
	scanHandler := handlers.NewScanHandler(scanService)
	calculatorHandler := handlers.NewCalculatorHandler()
	adminHandler := handlers.NewAdminHandler(userService, log)

	v1 := router.Group("/api/v1")
	if redisClient != nil {
		v1.Use(middleware.RateLimit(cfg, redisClient))
	}

	// Public routes
	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/refresh", authHandler.RefreshToken)
	}

	products := v1.Group("/products")
	{
		products.GET("", catalogHandler.ListProducts)
		products.GET("/:id", catalogHandler.GetProduct)
		products.GET("/barcode/:barcode", catalogHandler.GetProductByBarcode)
	}

	calculator := v1.Group("/calculator")
	{
		calculator.POST("/calories", calculatorHandler.Calculate)
	}

	// Authenticated routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(cfg))
	{
		protected.GET("/auth/profile", authHandler.GetProfile)
		protected.POST("/auth/clear-data", authHandler.ClearData)

		cartRoutes := protected.Group("/cart")
		{
			cartRoutes.GET("", cartHandler.GetCart)
			cartRoutes.DELETE("", cartHandler.ClearCart)
			cartRoutes.GET("/count", cartHandler.GetItemCount)
			cartRoutes.POST("/items", cartHandler.AddItem)
			cartRoutes.PUT("/items/:productId", cartHandler.UpdateItem)
			cartRoutes.DELETE("/items/:productId", cartHandler.RemoveItem)
		}

		orderRoutes := protected.Group("/orders")
		{
			orderRoutes.POST("", orderHandler.CreateOrder)
			orderRoutes.GET("", orderHandler.ListOrders)
			orderRoutes.GET("/:id", orderHandler.GetOrder)
		}

		scanRoutes := protected.Group("/scans")
		{
			scanRoutes.POST("", scanHandler.LogScan)
			scanRoutes.GET("", scanHandler.GetHistory)
		}

		protected.GET("/consumption/weekly", consumptionHandler.GetWeekly)
	}

	// Admin routes
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.AdminMiddleware())
	{
		admin.GET("/users", adminHandler.ListUsers)
		admin.PUT("/users/role", adminHandler.UpdateRole)
	}
}
