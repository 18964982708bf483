// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshify/freshify-backend/internal/domain/catalog"
)

// CatalogHandler serves the product catalog
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// ListProducts returns all products, optionally filtered by category
// GET /api/v1/products?category=beverage
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var products []catalog.Product
	if category := c.Query("category"); category != "" {
		products = h.catalog.ListByCategory(catalog.Category(category))
	} else {
		products = h.catalog.List()
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"total":    len(products),
	})
}

// GetProduct returns one product by id
// GET /api/v1/products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	prod, err := h.catalog.ByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": prod})
}

// GetProductByBarcode resolves a product from its barcode
// GET /api/v1/products/barcode/:barcode
func (h *CatalogHandler) GetProductByBarcode(c *gin.Context) {
	prod, err := h.catalog.ByBarcode(c.Param("barcode"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": prod})
}
