package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tarsojabbes/science/internal/domain"
)

// Login authenticates a user with email and password.
// An unknown email and a wrong password both return ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Email = domain.NormalizeEmail(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateAccessToken(user.ID, roleTags(user))
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID.String()))

	return &AuthResult{AccessToken: token, User: user}, nil
}

// ValidateToken returns the user ID an access token was issued for.
// Any invalid token yields domain.ErrUnauthorized.
func (s *Service) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	userID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}

// GetUser returns the account by ID.
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
