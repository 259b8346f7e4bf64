package role

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tarsojabbes/science/internal/domain"
)

// AddEditor grants editorial rights on a journal.
func (s *Service) AddEditor(ctx context.Context, input AssignmentInput) (*domain.JournalEditor, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkJournalAndUser(ctx, input.JournalID, input.UserID); err != nil {
		return nil, err
	}

	editor := domain.JournalEditor{
		JournalID:  input.JournalID,
		UserID:     input.UserID,
		AssignedAt: time.Now().UTC(),
	}
	if err := s.roles.AddEditor(ctx, editor); err != nil {
		return nil, fmt.Errorf("add editor: %w", err)
	}

	s.log.InfoContext(ctx, "editor added",
		slog.String("journal_id", input.JournalID.String()),
		slog.String("user_id", input.UserID.String()),
	)
	return &editor, nil
}

// RemoveEditor revokes editorial rights. Fails with domain.ErrNotEditor when
// the user holds no such assignment.
func (s *Service) RemoveEditor(ctx context.Context, input AssignmentInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	removed, err := s.roles.RemoveEditor(ctx, input.JournalID, input.UserID)
	if err != nil {
		return fmt.Errorf("remove editor: %w", err)
	}
	if !removed {
		return domain.ErrNotEditor
	}

	s.log.InfoContext(ctx, "editor removed",
		slog.String("journal_id", input.JournalID.String()),
		slog.String("user_id", input.UserID.String()),
	)
	return nil
}

// IsEditorOf reports whether userID edits journalID.
func (s *Service) IsEditorOf(ctx context.Context, userID, journalID uuid.UUID) (bool, error) {
	ok, err := s.roles.IsEditor(ctx, userID, journalID)
	if err != nil {
		return false, fmt.Errorf("check editor: %w", err)
	}
	return ok, nil
}

// ListEditors returns the editors of a journal.
func (s *Service) ListEditors(ctx context.Context, journalID uuid.UUID) ([]domain.JournalEditor, error) {
	if err := s.checkJournal(ctx, journalID); err != nil {
		return nil, err
	}
	editors, err := s.roles.ListEditors(ctx, journalID)
	if err != nil {
		return nil, fmt.Errorf("list editors: %w", err)
	}
	return editors, nil
}

func (s *Service) checkJournal(ctx context.Context, journalID uuid.UUID) error {
	exists, err := s.journals.Exists(ctx, journalID)
	if err != nil {
		return fmt.Errorf("check journal: %w", err)
	}
	if !exists {
		return domain.ErrJournalNotFound
	}
	return nil
}

func (s *Service) checkJournalAndUser(ctx context.Context, journalID, userID uuid.UUID) error {
	if err := s.checkJournal(ctx, journalID); err != nil {
		return err
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	return nil
}
