// Package issue composes approved papers into published journal issues.
package issue

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tarsojabbes/science/internal/domain"
)

type issueRepo interface {
	Create(ctx context.Context, is *domain.Issue) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Issue, error)
	LockByID(ctx context.Context, id uuid.UUID) (*domain.Issue, error)
	Update(ctx context.Context, id uuid.UUID, number, volume int) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, journalID *uuid.UUID, limit, offset int) ([]domain.Issue, error)
}

type paperRepo interface {
	LockByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Paper, error)
	SetPublication(ctx context.Context, id uuid.UUID, status domain.PaperStatus, issueID *uuid.UUID, publishedAt *time.Time) error
}

type journalRepo interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides issue composition operations.
type Service struct {
	issues   issueRepo
	papers   paperRepo
	journals journalRepo
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new issue service.
func NewService(
	log *slog.Logger,
	issues issueRepo,
	papers paperRepo,
	journals journalRepo,
	tx txManager,
) *Service {
	return &Service{
		issues:   issues,
		papers:   papers,
		journals: journals,
		tx:       tx,
		log:      log.With("service", "issue"),
	}
}
