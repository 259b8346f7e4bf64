// Package paper manages manuscript submissions and their researcher lists.
// Status changes happen only through the review and issue workflows.
package paper

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tarsojabbes/science/internal/domain"
)

type paperRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Paper, error)
	LockByID(ctx context.Context, id uuid.UUID) (*domain.Paper, error)
	List(ctx context.Context, f domain.PaperFilter) ([]domain.Paper, error)
	Create(ctx context.Context, p *domain.Paper) (*domain.Paper, error)
	SetResearchers(ctx context.Context, paperID uuid.UUID, researcherIDs []uuid.UUID) error
	Update(ctx context.Context, id uuid.UUID, name, url string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type userRepo interface {
	ExistingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
}

type journalRepo interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type reviewRepo interface {
	HasOpenReview(ctx context.Context, paperID uuid.UUID) (bool, error)
}

type roleChecker interface {
	IsEditorOf(ctx context.Context, userID, journalID uuid.UUID) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides paper operations.
type Service struct {
	log      *slog.Logger
	papers   paperRepo
	users    userRepo
	journals journalRepo
	reviews  reviewRepo
	roles    roleChecker
	tx       txManager
	now      func() time.Time
}

// NewService creates a new paper service.
func NewService(
	log *slog.Logger,
	papers paperRepo,
	users userRepo,
	journals journalRepo,
	reviews reviewRepo,
	roles roleChecker,
	tx txManager,
) *Service {
	return &Service{
		log:      log.With("service", "paper"),
		papers:   papers,
		users:    users,
		journals: journals,
		reviews:  reviews,
		roles:    roles,
		tx:       tx,
		now:      time.Now,
	}
}
