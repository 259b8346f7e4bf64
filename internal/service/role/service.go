// Package role manages journal-scoped editor and reviewer assignments and
// picks reviewer candidates for new reviews.
package role

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/tarsojabbes/science/internal/domain"
)

type journalRepo interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type roleRepo interface {
	AddEditor(ctx context.Context, e domain.JournalEditor) error
	RemoveEditor(ctx context.Context, journalID, userID uuid.UUID) (bool, error)
	IsEditor(ctx context.Context, userID, journalID uuid.UUID) (bool, error)
	ListEditors(ctx context.Context, journalID uuid.UUID) ([]domain.JournalEditor, error)

	AddReviewer(ctx context.Context, rv domain.JournalReviewer) error
	RemoveReviewer(ctx context.Context, journalID, userID uuid.UUID) (bool, error)
	IsActiveReviewer(ctx context.Context, userID, journalID uuid.UUID) (bool, error)
	ActiveReviewerIDs(ctx context.Context, journalID uuid.UUID) ([]uuid.UUID, error)
	GetReviewer(ctx context.Context, journalID, userID uuid.UUID) (*domain.JournalReviewer, error)
	ListReviewers(ctx context.Context, f domain.ReviewerFilter) ([]domain.JournalReviewer, error)
	SetReviewerActive(ctx context.Context, journalID, userID uuid.UUID, active bool) (bool, error)
	UpdateExpertise(ctx context.Context, journalID, userID uuid.UUID, expertise []string) (bool, error)
}

// ShuffleFunc permutes n elements by calling swap, like rand.Shuffle.
type ShuffleFunc func(n int, swap func(i, j int))

// Service provides role assignment operations.
type Service struct {
	journals journalRepo
	users    userRepo
	roles    roleRepo
	shuffle  ShuffleFunc
	log      *slog.Logger
}

// NewService creates a new role service. A nil shuffle uses math/rand/v2.
func NewService(
	log *slog.Logger,
	journals journalRepo,
	users userRepo,
	roles roleRepo,
	shuffle ShuffleFunc,
) *Service {
	if shuffle == nil {
		shuffle = rand.Shuffle
	}
	return &Service{
		journals: journals,
		users:    users,
		roles:    roles,
		shuffle:  shuffle,
		log:      log.With("service", "role"),
	}
}
