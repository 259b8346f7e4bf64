// Package auth implements account registration, password login and
// access token validation.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tarsojabbes/science/internal/config"
	"github.com/tarsojabbes/science/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, roles []string) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
}

// Service implements auth operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	jwt   jwtManager
	cfg   config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, jwt jwtManager, cfg config.AuthConfig) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		jwt:   jwt,
		cfg:   cfg,
	}
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	AccessToken string
	User        *domain.User
}

func roleTags(u *domain.User) []string {
	out := make([]string, len(u.Roles))
	for i, r := range u.Roles {
		out[i] = r.String()
	}
	return out
}
