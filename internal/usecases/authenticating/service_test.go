package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-comparison-api/internal/config"
	"github.com/vfg2006/sales-comparison-api/internal/domain"
	"github.com/vfg2006/sales-comparison-api/pkg/apiErrors"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func newTestService(t *testing.T) (*Service, *fakeClock) {
	t.Helper()

	service, err := NewService(config.Auth{
		Password:  "sales2025",
		SecretKey: "segredo-de-teste",
		TokenTTL:  12 * time.Hour,
	})
	require.NoError(t, err)

	clock := &fakeClock{now: time.Date(2025, time.March, 16, 9, 0, 0, 0, time.UTC)}
	service.now = clock.Now

	return service, clock
}

func requireAuthError(t *testing.T, err error, base error, code string) {
	t.Helper()

	var authErr *AuthError
	require.True(t, errors.As(err, &authErr), "esperado AuthError, obtido %v", err)
	assert.Equal(t, code, authErr.Code)
	assert.ErrorIs(t, err, base)
}

func TestNewService_RequiresConfig(t *testing.T) {
	_, err := NewService(config.Auth{Password: "x"})
	requireAuthError(t, err, ErrMissingRequiredData, apiErrors.ErrMissingRequiredData)
}

func TestService_Login(t *testing.T) {
	service, _ := newTestService(t)

	tests := []struct {
		name     string
		password string
		wantErr  error
		wantCode string
	}{
		{name: "empty password", password: "", wantErr: ErrMissingRequiredData, wantCode: apiErrors.ErrMissingRequiredData},
		{name: "wrong password", password: "errada", wantErr: ErrInvalidCredentials, wantCode: apiErrors.ErrInvalidCredentials},
		{name: "correct password", password: "sales2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.Login(tt.password)
			if tt.wantErr != nil {
				requireAuthError(t, err, tt.wantErr, tt.wantCode)
				assert.True(t, IsCredentialsError(err))
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}

	assert.Equal(t, 1, service.sessions.Len())
}

func TestService_ValidateToken(t *testing.T) {
	service, _ := newTestService(t)

	token, err := service.Login("sales2025")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.SessionID)
	assert.Equal(t, time.Date(2025, time.March, 16, 21, 0, 0, 0, time.UTC), claims.ExpiresAt.Time.UTC())

	_, err = service.ValidateToken(token + "x")
	requireAuthError(t, err, ErrInvalidToken, apiErrors.ErrInvalidToken)

	// mesma chave, mas a sessão só existe na instância que fez o login
	other, _ := newTestService(t)
	_, err = other.ValidateToken(token)
	requireAuthError(t, err, ErrSessionNotFound, apiErrors.ErrInvalidToken)
}

func TestService_ValidateToken_Expired(t *testing.T) {
	service, clock := newTestService(t)

	token, err := service.Login("sales2025")
	require.NoError(t, err)

	clock.now = clock.now.Add(13 * time.Hour)

	_, err = service.ValidateToken(token)
	requireAuthError(t, err, ErrExpiredToken, apiErrors.ErrExpiredToken)
	assert.True(t, IsAuthorizationError(err))
}

func TestService_Logout(t *testing.T) {
	service, _ := newTestService(t)

	token, err := service.Login("sales2025")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)

	require.NoError(t, service.Logout(claims.SessionID))

	_, err = service.ValidateToken(token)
	requireAuthError(t, err, ErrSessionNotFound, apiErrors.ErrInvalidToken)

	err = service.Logout(claims.SessionID)
	requireAuthError(t, err, ErrSessionNotFound, apiErrors.ErrInvalidToken)
}

func TestSessionStore_PurgesExpired(t *testing.T) {
	store := NewSessionStore()
	now := time.Date(2025, time.March, 16, 9, 0, 0, 0, time.UTC)

	store.Save(domain.Session{ID: "ativa", CreatedAt: now, ExpiresAt: now.Add(time.Hour)})
	store.Save(domain.Session{ID: "vencida", CreatedAt: now.Add(-2 * time.Hour), ExpiresAt: now})

	_, ok := store.Get("vencida", now)
	assert.False(t, ok)

	session, ok := store.Get("ativa", now)
	assert.True(t, ok)
	assert.Equal(t, "ativa", session.ID)

	assert.Equal(t, 1, store.Len())
	assert.True(t, store.Delete("ativa"))
	assert.False(t, store.Delete("ativa"))
}
