// internal/domain/user/service_test.go
package user

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/freshify/freshify-backend/internal/config"
	"github.com/freshify/freshify-backend/internal/infrastructure/storage"
)

func newTestService() (*Service, storage.Store) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := &config.Config{}
	cfg.Auth.AdminEmail = "admin@gmail.com"
	cfg.Security.BcryptCost = bcrypt.MinCost

	store := storage.NewMemoryStore()
	return NewService(store, cfg, log), store
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	profile, err := svc.Register(ctx, &RegisterRequest{
		Email:    "Budi@Example.com",
		Password: "secret123",
		Name:     "Budi",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, profile.ID)
	assert.Equal(t, "budi@example.com", profile.Email)
	assert.Equal(t, RoleUser, profile.Role)

	authed, err := svc.Authenticate(ctx, &LoginRequest{
		Email:    "budi@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, profile.ID, authed.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterRequest{Email: "budi@example.com", Password: "secret123", Name: "Budi"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &RegisterRequest{Email: "BUDI@example.com", Password: "other456", Name: "Budi II"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterAdminBootstrap(t *testing.T) {
	svc, _ := newTestService()

	profile, err := svc.Register(context.Background(), &RegisterRequest{
		Email:    "admin@gmail.com",
		Password: "secret123",
		Name:     "Admin",
	})
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, profile.Role)
}

func TestRegisterWeakPassword(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Email:    "budi@example.com",
		Password: "short",
		Name:     "Budi",
	})
	assert.Error(t, err)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterRequest{Email: "budi@example.com", Password: "secret123", Name: "Budi"})
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, &LoginRequest{Email: "budi@example.com", Password: "wrong9999"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Authenticate(context.Background(), &LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateRole(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterRequest{Email: "budi@example.com", Password: "secret123", Name: "Budi"})
	require.NoError(t, err)

	promoted, err := svc.UpdateRole(ctx, "budi@example.com", RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, promoted.Role)

	// The change is persisted, not just returned.
	reloaded, err := svc.GetProfileByEmail(ctx, "budi@example.com")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, reloaded.Role)

	_, err = svc.UpdateRole(ctx, "budi@example.com", Role("owner"))
	assert.Error(t, err)

	_, err = svc.UpdateRole(ctx, "nobody@example.com", RoleAdmin)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListProfiles(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterRequest{Email: "a@example.com", Password: "secret123", Name: "A"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, &RegisterRequest{Email: "b@example.com", Password: "secret123", Name: "B"})
	require.NoError(t, err)

	profiles, err := svc.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Len(t, profiles, 2)
}

func TestClearUserData(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	profile, err := svc.Register(ctx, &RegisterRequest{Email: "budi@example.com", Password: "secret123", Name: "Budi"})
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, profile.ID, storage.KindCart, []string{"x"}))
	require.NoError(t, store.Set(ctx, profile.ID, storage.KindOrders, []string{"x"}))
	require.NoError(t, store.Set(ctx, profile.ID, storage.KindScans, []string{"x"}))

	require.NoError(t, svc.ClearUserData(ctx, profile.ID))

	var dest []string
	assert.ErrorIs(t, store.Get(ctx, profile.ID, storage.KindCart, &dest), storage.ErrNotFound)
	assert.ErrorIs(t, store.Get(ctx, profile.ID, storage.KindOrders, &dest), storage.ErrNotFound)
	assert.ErrorIs(t, store.Get(ctx, profile.ID, storage.KindScans, &dest), storage.ErrNotFound)

	// The account itself survives.
	_, err = svc.GetProfile(ctx, profile.ID)
	assert.NoError(t, err)
}
