package auth

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tarsojabbes/science/internal/domain"
)

// Register creates a new account and issues an access token for it.
// Returns ErrAlreadyExists if the email or ORCID is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Email = domain.NormalizeEmail(input.Email)
	input.Name = strings.TrimSpace(input.Name)
	input.Institution = strings.TrimSpace(input.Institution)
	if input.ORCID != nil {
		orcid := strings.ToUpper(strings.TrimSpace(*input.ORCID))
		if orcid == "" {
			input.ORCID = nil
		} else {
			input.ORCID = &orcid
		}
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	roles := slices.Clone(input.Roles)
	if len(roles) == 0 {
		roles = []domain.UserRole{domain.UserRoleResearcher}
	}
	slices.Sort(roles)
	roles = slices.Compact(roles)

	now := time.Now()
	// Email and ORCID uniqueness are enforced by DB constraints.
	user, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Institution:  input.Institution,
		ORCID:        input.ORCID,
		Roles:        roles,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwt.GenerateAccessToken(user.ID, roleTags(user))
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", slog.String("user_id", user.ID.String()))

	return &AuthResult{AccessToken: token, User: user}, nil
}
