// internal/interfaces/http/handlers/admin.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/freshify/freshify-backend/internal/domain/user"
)

// AdminHandler handles account administration endpoints
type AdminHandler struct {
	users *user.Service
	log   *logrus.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(users *user.Service, log *logrus.Logger) *AdminHandler {
	return &AdminHandler{
		users: users,
		log:   log,
	}
}

// UpdateRoleRequest assigns a role to the account registered under an email
type UpdateRoleRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required"`
}

// ListUsers returns all account profiles
// GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	profiles, err := h.users.ListProfiles(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("failed to list profiles")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": profiles,
		"total": len(profiles),
	})
}

// UpdateRole changes the role of the account registered under an email
// PUT /api/v1/admin/users/role
func (h *AdminHandler) UpdateRole(c *gin.Context) {
	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.users.UpdateRole(c.Request.Context(), req.Email, user.Role(req.Role))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Role updated",
		"user":    profile,
	})
}
