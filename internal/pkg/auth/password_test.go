// internal/pkg/auth/password_test.go
package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/freshify/freshify-backend/internal/config"
)

func newTestPasswordManager() *PasswordManager {
	cfg := &config.Config{}
	cfg.Security.BcryptCost = bcrypt.MinCost
	return NewPasswordManager(cfg)
}

func TestHashAndVerifyPassword(t *testing.T) {
	mgr := newTestPasswordManager()

	hash, err := mgr.HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.NoError(t, mgr.VerifyPassword("secret123", hash))
	assert.Error(t, mgr.VerifyPassword("wrong9999", hash))
}

func TestValidatePassword(t *testing.T) {
	mgr := newTestPasswordManager()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "secret123", false},
		{"too short", "abc1", true},
		{"too long", strings.Repeat("a1", 65), true},
		{"letters only", "secretpassword", true},
		{"numbers only", "1234567890", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mgr.ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
