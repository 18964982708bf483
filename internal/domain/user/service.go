// internal/domain/user/service.go
package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/freshify/freshify-backend/internal/config"
	"github.com/freshify/freshify-backend/internal/infrastructure/storage"
	"github.com/freshify/freshify-backend/internal/pkg/auth"
)

// Service handles account profiles, roles and login credentials in the
// key-value store.
type Service struct {
	store     storage.Store
	passwords *auth.PasswordManager
	config    *config.Config
	log       *logrus.Logger
}

// NewService creates a new user service
func NewService(store storage.Store, cfg *config.Config, log *logrus.Logger) *Service {
	return &Service{
		store:     store,
		passwords: auth.NewPasswordManager(cfg),
		config:    cfg,
		log:       log,
	}
}

// RegisterRequest represents signup data
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

// LoginRequest represents login data
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates an account: credentials, profile and email index. The
// bootstrap admin email receives the admin role on signup.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*Profile, error) {
	email := normalizeEmail(req.Email)

	var idx emailIndex
	err := s.store.Get(ctx, email, storage.KindEmailIndex, &idx)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := s.passwords.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := RoleUser
	if email == normalizeEmail(s.config.Auth.AdminEmail) {
		role = RoleAdmin
	}

	profile := &Profile{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      req.Name,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}

	creds := credentials{
		UserID:       profile.ID,
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.store.Set(ctx, profile.ID, storage.KindCredentials, creds); err != nil {
		return nil, fmt.Errorf("failed to save credentials: %w", err)
	}
	if err := s.store.Set(ctx, profile.ID, storage.KindProfile, profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	if err := s.store.Set(ctx, email, storage.KindEmailIndex, emailIndex{UserID: profile.ID}); err != nil {
		return nil, fmt.Errorf("failed to save email index: %w", err)
	}

	s.log.WithFields(logrus.Fields{"user_id": profile.ID, "role": role}).Info("user registered")
	return profile, nil
}

// Authenticate verifies email and password and returns the profile
func (s *Service) Authenticate(ctx context.Context, req *LoginRequest) (*Profile, error) {
	email := normalizeEmail(req.Email)

	var idx emailIndex
	if err := s.store.Get(ctx, email, storage.KindEmailIndex, &idx); err != nil {
		return nil, ErrInvalidCredentials
	}

	var creds credentials
	if err := s.store.Get(ctx, idx.UserID, storage.KindCredentials, &creds); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.passwords.VerifyPassword(req.Password, creds.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.GetProfile(ctx, idx.UserID)
}

// GetProfile returns the profile for a user id
func (s *Service) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	var profile Profile
	err := s.store.Get(ctx, userID, storage.KindProfile, &profile)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return &profile, nil
}

// GetProfileByEmail returns the profile registered under an email
func (s *Service) GetProfileByEmail(ctx context.Context, email string) (*Profile, error) {
	var idx emailIndex
	err := s.store.Get(ctx, normalizeEmail(email), storage.KindEmailIndex, &idx)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve email: %w", err)
	}
	return s.GetProfile(ctx, idx.UserID)
}

// UpdateRole sets the role on the profile registered under an email
func (s *Service) UpdateRole(ctx context.Context, email string, role Role) (*Profile, error) {
	if role != RoleUser && role != RoleAdmin {
		return nil, fmt.Errorf("unknown role %q", role)
	}

	profile, err := s.GetProfileByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	profile.Role = role
	if err := s.store.Set(ctx, profile.ID, storage.KindProfile, profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	s.log.WithFields(logrus.Fields{"user_id": profile.ID, "role": role}).Info("role updated")
	return profile, nil
}

// ListProfiles returns all account profiles (admin surface)
func (s *Service) ListProfiles(ctx context.Context) ([]Profile, error) {
	ids, err := s.store.Keys(ctx, storage.KindProfile)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	profiles := make([]Profile, 0, len(ids))
	for _, id := range ids {
		var profile Profile
		if err := s.store.Get(ctx, id, storage.KindProfile, &profile); err != nil {
			s.log.WithError(err).WithField("user_id", id).Warn("skipping unreadable profile")
			continue
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

// ClearUserData wipes all per-user storefront state: cart, order history,
// consumption ledger and scan log. The account itself is kept.
func (s *Service) ClearUserData(ctx context.Context, userID string) error {
	kinds := []storage.Kind{
		storage.KindCart,
		storage.KindOrders,
		storage.KindConsumption,
		storage.KindScans,
	}

	for _, kind := range kinds {
		if err := s.store.Delete(ctx, userID, kind); err != nil {
			return fmt.Errorf("failed to clear %s data: %w", kind, err)
		}
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
