// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/freshify/freshify-backend/internal/domain/user"
	"github.com/freshify/freshify-backend/internal/interfaces/http/middleware"
	"github.com/freshify/freshify-backend/internal/pkg/auth"
)

// AuthHandler handles registration, login and session endpoints
type AuthHandler struct {
	users *user.Service
	jwt   *auth.JWTManager
	log   *logrus.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(users *user.Service, jwt *auth.JWTManager, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		users: users,
		jwt:   jwt,
		log:   log,
	}
}

// Register handles user registration
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.users.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tokens, err := h.issueTokens(profile)
	if err != nil {
		h.log.WithError(err).Error("failed to issue tokens after registration")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue tokens"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"user":    profile,
		"tokens":  tokens,
	})
}

// Login handles user authentication
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.users.Authenticate(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	tokens, err := h.issueTokens(profile)
	if err != nil {
		h.log.WithError(err).Error("failed to issue tokens after login")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue tokens"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    profile,
		"tokens":  tokens,
	})
}

// RefreshRequest carries a refresh token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshToken exchanges a refresh token for a fresh token pair. The role is
// re-read from the profile so revocations take effect on rotation.
// POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, err := h.jwt.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
		return
	}

	profile, err := h.users.GetProfile(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account no longer exists"})
		return
	}

	tokens, err := h.issueTokens(profile)
	if err != nil {
		h.log.WithError(err).Error("failed to rotate tokens")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue tokens"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Token refreshed",
		"tokens":  tokens,
	})
}

// GetProfile returns the authenticated user's profile
// GET /api/v1/auth/profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	profile, err := h.users.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": profile})
}

// ClearData wipes the authenticated user's cart, orders, consumption ledger
// and scan history. The account itself survives.
// POST /api/v1/auth/clear-data
func (h *AuthHandler) ClearData(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	if err := h.users.ClearUserData(c.Request.Context(), userID); err != nil {
		h.log.WithError(err).WithField("user_id", userID).Error("failed to clear user data")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear user data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User data cleared"})
}

// tokenPair is the access/refresh token response payload
type tokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (h *AuthHandler) issueTokens(profile *user.Profile) (*tokenPair, error) {
	access, err := h.jwt.GenerateAccessToken(profile.ID, profile.Email, string(profile.Role))
	if err != nil {
		return nil, err
	}
	refresh, err := h.jwt.GenerateRefreshToken(profile.ID, profile.Email)
	if err != nil {
		return nil, err
	}
	return &tokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
