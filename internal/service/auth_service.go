package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/leaselink/leaselink/internal/auth"
	"github.com/leaselink/leaselink/internal/config"
	"github.com/leaselink/leaselink/internal/domain"
	"github.com/leaselink/leaselink/internal/repository"
	apperrors "github.com/leaselink/leaselink/pkg/util"
)

// invalidCredentials is shared by the missing-user and wrong-password paths
// so a caller cannot tell whether the email exists.
func invalidCredentials() error {
	return apperrors.NewUnauthorized("invalid credentials")
}

// AuthService coordinates login, registration and session issuance.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL()),
		bcryptCost: cfg.BcryptCost,
	}
}

// Login verifies credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Identity, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Identity{}, "", time.Time{}, invalidCredentials()
		}
		return domain.Identity{}, "", time.Time{}, err
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return domain.Identity{}, "", time.Time{}, invalidCredentials()
	}

	identity := user.Identity()
	token, expiresAt, err := s.tokenMgr.Issue(identity)
	if err != nil {
		return domain.Identity{}, "", time.Time{}, err
	}
	return identity, token, expiresAt, nil
}

// Register creates a staff account. New credentials are always stored
// bcrypt-hashed; the legacy plaintext form is read-only compatibility.
func (s *AuthService) Register(ctx context.Context, email, password string, role domain.Role) (domain.Identity, string, time.Time, error) {
	if role == "" {
		role = domain.RoleStaff
	}
	if !domain.ValidRole(role) {
		return domain.Identity{}, "", time.Time{}, apperrors.NewValidationError("invalid role", map[string]any{"role": role})
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return domain.Identity{}, "", time.Time{}, apperrors.NewConflict("email already registered")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return domain.Identity{}, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return domain.Identity{}, "", time.Time{}, err
	}

	user := &domain.User{
		Email:    email,
		Password: hash,
		Role:     role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return domain.Identity{}, "", time.Time{}, err
	}

	identity := user.Identity()
	token, expiresAt, err := s.tokenMgr.Issue(identity)
	if err != nil {
		return domain.Identity{}, "", time.Time{}, err
	}
	return identity, token, expiresAt, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
