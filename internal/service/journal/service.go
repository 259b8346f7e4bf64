// Package journal manages journals. The account that creates a journal
// becomes its first editor.
package journal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tarsojabbes/science/internal/domain"
)

type journalRepo interface {
	Create(ctx context.Context, j *domain.Journal) (*domain.Journal, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Journal, error)
	List(ctx context.Context, limit, offset int) ([]domain.Journal, error)
}

type editorRepo interface {
	AddEditor(ctx context.Context, e domain.JournalEditor) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides journal operations.
type Service struct {
	log      *slog.Logger
	journals journalRepo
	editors  editorRepo
	tx       txManager
}

// NewService creates a new journal service.
func NewService(log *slog.Logger, journals journalRepo, editors editorRepo, tx txManager) *Service {
	return &Service{
		log:      log.With("service", "journal"),
		journals: journals,
		editors:  editors,
		tx:       tx,
	}
}

const maxNameLen = 255

// CreateJournalInput holds the parameters for a new journal.
type CreateJournalInput struct {
	Name      string
	ISSN      string
	CreatorID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateJournalInput) Validate() error {
	var errs []domain.FieldError
	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if i.ISSN == "" {
		errs = append(errs, domain.FieldError{Field: "issn", Message: "required"})
	} else if !domain.ValidISSN(i.ISSN) {
		errs = append(errs, domain.FieldError{Field: "issn", Message: "must be a valid NNNN-NNNC ISSN"})
	}
	if i.CreatorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "creatorId", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateJournal stores a journal and makes its creator the first editor.
// Returns domain.ErrAlreadyExists when the ISSN is taken.
func (s *Service) CreateJournal(ctx context.Context, input CreateJournalInput) (*domain.Journal, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.ISSN = strings.ToUpper(strings.TrimSpace(input.ISSN))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Journal
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		now := time.Now()
		j, err := s.journals.Create(ctx, &domain.Journal{
			ID:        uuid.New(),
			Name:      input.Name,
			ISSN:      input.ISSN,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("create journal: %w", err)
		}

		if err := s.editors.AddEditor(ctx, domain.JournalEditor{
			JournalID:  j.ID,
			UserID:     input.CreatorID,
			AssignedAt: now,
		}); err != nil {
			return fmt.Errorf("add first editor: %w", err)
		}

		created = j
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "journal created",
		slog.String("journal_id", created.ID.String()),
		slog.String("editor_id", input.CreatorID.String()))

	return created, nil
}

// GetJournal returns a journal by ID.
func (s *Service) GetJournal(ctx context.Context, id uuid.UUID) (*domain.Journal, error) {
	j, err := s.journals.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get journal: %w", err)
	}
	return j, nil
}

// ListJournals returns one page of journals ordered by name.
func (s *Service) ListJournals(ctx context.Context, limit, offset int) ([]domain.Journal, error) {
	journals, err := s.journals.List(ctx, domain.ClampLimit(limit), max(offset, 0))
	if err != nil {
		return nil, fmt.Errorf("list journals: %w", err)
	}
	return journals, nil
}
