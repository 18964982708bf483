// internal/interfaces/http/handlers/calculator.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshify/freshify-backend/internal/domain/nutrition"
)

// CalculatorHandler serves the daily calorie-need calculator
type CalculatorHandler struct{}

// NewCalculatorHandler creates a new calculator handler
func NewCalculatorHandler() *CalculatorHandler {
	return &CalculatorHandler{}
}

// Calculate computes BMR, TDEE and weight-goal calorie targets
// POST /api/v1/calculator/calories
func (h *CalculatorHandler) Calculate(c *gin.Context) {
	var req nutrition.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	need, err := nutrition.Calculate(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"calorie_need": need})
}
