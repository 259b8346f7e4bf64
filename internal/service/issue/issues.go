package issue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tarsojabbes/science/internal/domain"
)

// CreateIssue creates an issue and publishes the given papers in it.
// Every paper must exist, be approved and belong to the issue's journal.
func (s *Service) CreateIssue(ctx context.Context, input CreateIssueInput) (*domain.Issue, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	is := &domain.Issue{
		ID:              uuid.New(),
		JournalID:       input.JournalID,
		Number:          input.Number,
		Volume:          input.Volume,
		PublicationDate: now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if input.PublicationDate != nil {
		is.PublicationDate = input.PublicationDate.UTC()
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		exists, err := s.journals.Exists(ctx, input.JournalID)
		if err != nil {
			return fmt.Errorf("check journal: %w", err)
		}
		if !exists {
			return domain.ErrJournalNotFound
		}

		members, err := s.lockMembers(ctx, input.JournalID, nil, input.PaperIDs)
		if err != nil {
			return err
		}

		if err := s.issues.Create(ctx, is); err != nil {
			return fmt.Errorf("create issue: %w", err)
		}
		if err := s.publish(ctx, is.ID, members, is.PublicationDate); err != nil {
			return err
		}

		is.PaperIDs = paperIDs(members)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "issue created",
		slog.String("issue_id", is.ID.String()),
		slog.String("journal_id", is.JournalID.String()),
		slog.Int("papers", len(is.PaperIDs)),
	)
	return is, nil
}

// UpdateIssue renumbers an issue and replaces its member papers. Papers
// dropped from the issue go back to approved.
func (s *Service) UpdateIssue(ctx context.Context, input UpdateIssueInput) (*domain.Issue, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Issue
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		is, err := s.issues.LockByID(ctx, input.ID)
		if err != nil {
			return fmt.Errorf("lock issue: %w", err)
		}
		if input.JournalID != nil && *input.JournalID != is.JournalID {
			return domain.NewValidationError("journalId", "an issue cannot move to another journal")
		}

		members, err := s.lockMembers(ctx, is.JournalID, &is.ID, input.PaperIDs)
		if err != nil {
			return err
		}

		removed, err := s.papers.LockByIDs(ctx, without(is.PaperIDs, paperIDs(members)))
		if err != nil {
			return fmt.Errorf("lock removed papers: %w", err)
		}
		if err := s.unpublish(ctx, removed); err != nil {
			return err
		}

		if err := s.issues.Update(ctx, is.ID, input.Number, input.Volume); err != nil {
			return fmt.Errorf("update issue: %w", err)
		}
		if err := s.publish(ctx, is.ID, members, is.PublicationDate); err != nil {
			return err
		}

		is.Number = input.Number
		is.Volume = input.Volume
		is.PaperIDs = paperIDs(members)
		updated = is
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "issue updated",
		slog.String("issue_id", updated.ID.String()),
		slog.Int("papers", len(updated.PaperIDs)),
	)
	return updated, nil
}

// DeleteIssue detaches all member papers, then removes the issue.
func (s *Service) DeleteIssue(ctx context.Context, id uuid.UUID) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		is, err := s.issues.LockByID(ctx, id)
		if err != nil {
			return fmt.Errorf("lock issue: %w", err)
		}

		members, err := s.papers.LockByIDs(ctx, is.PaperIDs)
		if err != nil {
			return fmt.Errorf("lock papers: %w", err)
		}
		if err := s.unpublish(ctx, members); err != nil {
			return err
		}

		if err := s.issues.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete issue: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "issue deleted", slog.String("issue_id", id.String()))
	return nil
}

// GetIssue returns an issue with its member paper IDs.
func (s *Service) GetIssue(ctx context.Context, id uuid.UUID) (*domain.Issue, error) {
	is, err := s.issues.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get issue: %w", err)
	}
	return is, nil
}

// ListIssues returns issues, optionally restricted to one journal.
func (s *Service) ListIssues(ctx context.Context, journalID *uuid.UUID, limit, offset int) ([]domain.Issue, error) {
	issues, err := s.issues.List(ctx, journalID, domain.ClampLimit(limit), max(offset, 0))
	if err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}
	return issues, nil
}

func paperIDs(papers []domain.Paper) []uuid.UUID {
	ids := make([]uuid.UUID, len(papers))
	for i, p := range papers {
		ids[i] = p.ID
	}
	return ids
}
