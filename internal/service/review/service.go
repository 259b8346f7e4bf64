// Package review runs the peer-review workflow: requesting a review round,
// collecting the two reviewers' results and aggregating them into a decision
// that drives the paper's status.
package review

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
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PaperStatus) error
}

type reviewRepo interface {
	Create(ctx context.Context, rv *domain.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	LockByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	Complete(ctx context.Context, id uuid.UUID, decision domain.FinalDecision, at time.Time) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReviewStatus, notes *string) error
	List(ctx context.Context, f domain.ReviewFilter) ([]domain.Review, error)

	CreateResult(ctx context.Context, res *domain.ReviewResult) (*domain.ReviewResult, error)
	Results(ctx context.Context, reviewID uuid.UUID) ([]domain.ReviewResult, error)
	GetResult(ctx context.Context, reviewID, reviewerID uuid.UUID) (*domain.ReviewResult, error)
	SubmitResult(ctx context.Context, res *domain.ReviewResult) (*domain.ReviewResult, error)
}

// roleChecker is the slice of the role service the workflow depends on.
type roleChecker interface {
	SelectReviewers(ctx context.Context, journalID uuid.UUID, count int) ([]uuid.UUID, error)
	IsEditorOf(ctx context.Context, userID, journalID uuid.UUID) (bool, error)
}

type notifier interface {
	ReviewAssigned(ctx context.Context, rv *domain.Review, paper *domain.Paper) error
	ReviewCompleted(ctx context.Context, rv *domain.Review, paper *domain.Paper) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides review workflow operations.
type Service struct {
	papers  paperRepo
	reviews reviewRepo
	roles   roleChecker
	notify  notifier
	tx      txManager
	now     func() time.Time
	log     *slog.Logger
}

// NewService creates a new review workflow service.
func NewService(
	log *slog.Logger,
	papers paperRepo,
	reviews reviewRepo,
	roles roleChecker,
	notify notifier,
	tx txManager,
) *Service {
	return &Service{
		papers:  papers,
		reviews: reviews,
		roles:   roles,
		notify:  notify,
		tx:      tx,
		now:     func() time.Time { return time.Now().UTC() },
		log:     log.With("service", "review"),
	}
}
