package services

import (
	"context"
	"log/slog"
	"time"

	"portfolio_api/internal/apperrors"
	"portfolio_api/internal/config"
	applog "portfolio_api/internal/log"
	"portfolio_api/internal/utils"
)

const DefaultTokenTTL = 24 * time.Hour

// TokenDenylist records revoked token ids.
type TokenDenylist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthService authenticates the single admin account and issues bearer
// tokens.
type AuthService struct {
	username     string
	passwordHash string
	secret       []byte
	ttl          time.Duration
	denylist     TokenDenylist
	logger       *slog.Logger
}

// NewAuthService prepares the admin credential. A plaintext ADMIN_PASSWORD
// is hashed once here and never kept. denylist may be nil.
func NewAuthService(cfg config.AuthConfig, denylist TokenDenylist) (*AuthService, error) {
	logger := applog.WithComponent("auth")

	hash := cfg.AdminPasswordHash
	if hash == "" && cfg.AdminPassword != "" {
		h, err := utils.HashPassword(cfg.AdminPassword)
		if err != nil {
			return nil, err
		}
		hash = h
	}
	if hash == "" {
		logger.Warn("no admin password configured, login is disabled")
	}

	secret := cfg.JWTSecret
	if secret == "" {
		s, err := utils.RandomSecret(32)
		if err != nil {
			return nil, err
		}
		secret = s
		logger.Warn("JWT_SECRET not set, using a random secret; tokens will not survive a restart")
	}

	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	return &AuthService{
		username:     cfg.AdminUsername,
		passwordHash: hash,
		secret:       []byte(secret),
		ttl:          ttl,
		denylist:     denylist,
		logger:       logger,
	}, nil
}

// Login returns a signed token when username and password match the admin
// credential.
func (s *AuthService) Login(username, password string) (string, *utils.Claims, error) {
	usernameOK := s.username != "" && utils.ConstantTimeEqual(username, s.username)

	passwordOK := false
	if s.passwordHash != "" {
		passwordOK = utils.VerifyPassword(s.passwordHash, password) == nil
	}

	if !usernameOK || !passwordOK {
		s.logger.Info("login rejected", slog.String("username", username))
		return "", nil, apperrors.New(apperrors.KindUnauthorized, "Invalid credentials")
	}

	token, claims, err := utils.GenerateJWT(s.username, s.ttl, s.secret)
	if err != nil {
		return "", nil, err
	}
	return token, claims, nil
}

// Authenticate validates a bearer token and checks it against the denylist.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*utils.Claims, error) {
	claims, err := utils.VerifyJWT(token, s.secret)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindForbidden, "Invalid or expired token", err)
	}

	if s.denylist != nil && claims.ID != "" {
		revoked, err := s.denylist.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, apperrors.Storage("failed to check token revocation", err)
		}
		if revoked {
			return nil, apperrors.New(apperrors.KindForbidden, "Invalid or expired token")
		}
	}

	return claims, nil
}

// Logout revokes the token for the rest of its lifetime. Without a denylist
// it is a no-op and the token stays valid until it expires.
func (s *AuthService) Logout(ctx context.Context, claims *utils.Claims) error {
	if s.denylist == nil || claims == nil || claims.ID == "" {
		return nil
	}

	ttl := time.Hour
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if err := s.denylist.Revoke(ctx, claims.ID, ttl); err != nil {
		return apperrors.Storage("failed to revoke token", err)
	}
	return nil
}

func (s *AuthService) RevocationEnabled() bool {
	return s.denylist != nil
}

func (s *AuthService) Username() string {
	return s.username
}
