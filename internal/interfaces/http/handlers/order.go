// internal/interfaces/http/handlers/order.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshify/freshify-backend/internal/domain/order"
	"github.com/freshify/freshify-backend/internal/interfaces/http/middleware"
)

// OrderHandler handles checkout and order history endpoints
type OrderHandler struct {
	orders *order.Service
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orders *order.Service) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// CreateOrder converts the user's cart into an order
// POST /api/v1/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req order.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ord, err := h.orders.CreateOrder(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		case errors.Is(err, order.ErrUnknownPaymentMethod), errors.Is(err, order.ErrInvalidPaymentDetails):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created successfully",
		"order":   ord,
	})
}

// ListOrders returns the user's order history, most recent first
// GET /api/v1/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	orders := h.orders.GetOrders(c.Request.Context(), userID)
	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"total":  len(orders),
	})
}

// GetOrder returns a single order from the user's history
// GET /api/v1/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	ord, err := h.orders.GetOrder(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": ord})
}
