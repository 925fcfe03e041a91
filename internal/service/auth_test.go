package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolioapi/internal/auth"
	"portfolioapi/internal/config"
)

func TestAuthService_Login(t *testing.T) {
	hash, err := auth.HashPassword("hunter2")
	require.NoError(t, err)

	cfg := config.AuthConfig{
		AdminUsername:     "admin",
		AdminPasswordHash: hash,
	}
	tokens := auth.NewTokens("test-secret", 24*time.Hour)
	svc := NewAuthService(cfg, tokens)

	t.Run("valid credentials yield a verifiable token", func(t *testing.T) {
		token, err := svc.Login("admin", "hunter2")
		require.NoError(t, err)

		username, err := tokens.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, "admin", username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login("admin", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown username fails identically", func(t *testing.T) {
		_, err := svc.Login("nobody", "hunter2")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
