// internal/interfaces/http/handlers/scan.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshify/freshify-backend/internal/domain/catalog"
	"github.com/freshify/freshify-backend/internal/domain/scan"
	"github.com/freshify/freshify-backend/internal/interfaces/http/middleware"
)

// ScanHandler handles the barcode scan log
type ScanHandler struct {
	scans *scan.Service
}

// NewScanHandler creates a new scan handler
func NewScanHandler(scans *scan.Service) *ScanHandler {
	return &ScanHandler{scans: scans}
}

// LogScanRequest identifies the scanned product by id or barcode
type LogScanRequest struct {
	ProductID string `json:"product_id"`
	Barcode   string `json:"barcode"`
}

// LogScan records a barcode scan in the user's history
// POST /api/v1/scans
func (h *ScanHandler) LogScan(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req LogScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ProductID == "" && req.Barcode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id or barcode is required"})
		return
	}

	record, err := h.scans.LogScan(c.Request.Context(), userID, req.ProductID, req.Barcode)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log scan"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Scan recorded",
		"scan":    record,
	})
}

// GetHistory returns the scan log, most recent first
// GET /api/v1/scans
func (h *ScanHandler) GetHistory(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	records := h.scans.GetHistory(c.Request.Context(), userID)
	c.JSON(http.StatusOK, gin.H{
		"scans": records,
		"total": len(records),
	})
}
