// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshify/freshify-backend/internal/domain/cart"
	"github.com/freshify/freshify-backend/internal/domain/catalog"
	"github.com/freshify/freshify-backend/internal/interfaces/http/middleware"
)

// CartHandler handles shopping cart endpoints
type CartHandler struct {
	cart *cart.Service
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.Service) *CartHandler {
	return &CartHandler{cart: cartService}
}

// GetCart returns the priced cart view
// GET /api/v1/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	view := h.cart.GetView(c.Request.Context(), userID)
	c.JSON(http.StatusOK, gin.H{"cart": view})
}

// AddItem adds a product to the cart, merging quantities for repeat adds
// POST /api/v1/cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req cart.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	if err := h.cart.AddToCart(c.Request.Context(), userID, req.ProductID, quantity); err != nil {
		switch {
		case errors.Is(err, cart.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be at least 1"})
		case errors.Is(err, catalog.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
		}
		return
	}

	view := h.cart.GetView(c.Request.Context(), userID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart",
		"cart":    view,
	})
}

// UpdateItem replaces the quantity of a cart line. A quantity of zero or
// less removes the line.
// PUT /api/v1/cart/items/:productId
func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req cart.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	productID := c.Param("productId")
	if err := h.cart.UpdateQuantity(c.Request.Context(), userID, productID, req.Quantity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}

	view := h.cart.GetView(c.Request.Context(), userID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart updated",
		"cart":    view,
	})
}

// RemoveItem removes a cart line. Removing an absent line is a no-op.
// DELETE /api/v1/cart/items/:productId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	if err := h.cart.RemoveFromCart(c.Request.Context(), userID, c.Param("productId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
		return
	}

	view := h.cart.GetView(c.Request.Context(), userID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart",
		"cart":    view,
	})
}

// ClearCart empties the cart
// DELETE /api/v1/cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	if err := h.cart.ClearCart(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}

// GetItemCount returns the total quantity across cart lines
// GET /api/v1/cart/count
func (h *CartHandler) GetItemCount(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": h.cart.ItemCount(c.Request.Context(), userID)})
}
