package service

import (
	"portfolioapi/internal/auth"
	"portfolioapi/internal/config"
)

// AuthService handles the single-admin login flow.
type AuthService interface {
	// Login verifies the credentials against the configured admin identity
	// and returns a signed, time-limited token. Unknown username and wrong
	// password produce the same ErrInvalidCredentials.
	Login(username, password string) (string, error)
}

type authService struct {
	cfg    config.AuthConfig
	tokens *auth.Tokens
}

// NewAuthService constructs the auth service.
func NewAuthService(cfg config.AuthConfig, tokens *auth.Tokens) AuthService {
	return &authService{cfg: cfg, tokens: tokens}
}

func (s *authService) Login(username, password string) (string, error) {
	if !auth.CheckCredentials(s.cfg.AdminUsername, s.cfg.AdminPasswordHash, username, password) {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(username)
}
