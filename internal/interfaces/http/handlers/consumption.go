// internal/interfaces/http/handlers/consumption.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshify/freshify-backend/internal/domain/consumption"
	"github.com/freshify/freshify-backend/internal/interfaces/http/middleware"
)

// ConsumptionHandler serves the weekly calorie ledger
type ConsumptionHandler struct {
	consumption *consumption.Service
}

// NewConsumptionHandler creates a new consumption handler
func NewConsumptionHandler(consumptionService *consumption.Service) *ConsumptionHandler {
	return &ConsumptionHandler{consumption: consumptionService}
}

// GetWeekly returns the current week's per-day calorie totals. The slice
// always holds seven entries, first slot being the configured week start.
// GET /api/v1/consumption/weekly
func (h *ConsumptionHandler) GetWeekly(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"weekly_calories": h.consumption.Weekly(c.Request.Context(), userID),
	})
}
