package role

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tarsojabbes/science/internal/domain"
)

// AddReviewer makes a user an active reviewer of a journal.
// A deactivated assignment still counts as existing: use ActivateReviewer.
func (s *Service) AddReviewer(ctx context.Context, input AddReviewerInput) (*domain.JournalReviewer, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkJournalAndUser(ctx, input.JournalID, input.UserID); err != nil {
		return nil, err
	}

	reviewer := domain.JournalReviewer{
		JournalID:  input.JournalID,
		UserID:     input.UserID,
		Expertise:  domain.NormalizeExpertise(input.Expertise),
		IsActive:   true,
		AssignedAt: time.Now().UTC(),
	}
	if err := s.roles.AddReviewer(ctx, reviewer); err != nil {
		return nil, fmt.Errorf("add reviewer: %w", err)
	}

	s.log.InfoContext(ctx, "reviewer added",
		slog.String("journal_id", input.JournalID.String()),
		slog.String("user_id", input.UserID.String()),
		slog.Int("expertise", len(reviewer.Expertise)),
	)
	return &reviewer, nil
}

// RemoveReviewer deletes a reviewer assignment.
func (s *Service) RemoveReviewer(ctx context.Context, input AssignmentInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	removed, err := s.roles.RemoveReviewer(ctx, input.JournalID, input.UserID)
	if err != nil {
		return fmt.Errorf("remove reviewer: %w", err)
	}
	if !removed {
		return domain.ErrNotReviewer
	}

	s.log.InfoContext(ctx, "reviewer removed",
		slog.String("journal_id", input.JournalID.String()),
		slog.String("user_id", input.UserID.String()),
	)
	return nil
}

// IsReviewerOf reports whether userID is an active reviewer of journalID.
func (s *Service) IsReviewerOf(ctx context.Context, userID, journalID uuid.UUID) (bool, error) {
	ok, err := s.roles.IsActiveReviewer(ctx, userID, journalID)
	if err != nil {
		return false, fmt.Errorf("check reviewer: %w", err)
	}
	return ok, nil
}

// ActivateReviewer makes an existing assignment eligible for selection again.
func (s *Service) ActivateReviewer(ctx context.Context, input AssignmentInput) error {
	return s.setActive(ctx, input, true)
}

// DeactivateReviewer excludes a reviewer from selection without deleting the assignment.
func (s *Service) DeactivateReviewer(ctx context.Context, input AssignmentInput) error {
	return s.setActive(ctx, input, false)
}

func (s *Service) setActive(ctx context.Context, input AssignmentInput, active bool) error {
	if err := input.Validate(); err != nil {
		return err
	}

	ok, err := s.roles.SetReviewerActive(ctx, input.JournalID, input.UserID, active)
	if err != nil {
		return fmt.Errorf("set reviewer active: %w", err)
	}
	if !ok {
		return domain.ErrNotReviewer
	}

	s.log.InfoContext(ctx, "reviewer activation changed",
		slog.String("journal_id", input.JournalID.String()),
		slog.String("user_id", input.UserID.String()),
		slog.Bool("active", active),
	)
	return nil
}

// UpdateExpertise replaces a reviewer's expertise tags.
func (s *Service) UpdateExpertise(ctx context.Context, input UpdateExpertiseInput) (*domain.JournalReviewer, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ok, err := s.roles.UpdateExpertise(ctx, input.JournalID, input.UserID, domain.NormalizeExpertise(input.Expertise))
	if err != nil {
		return nil, fmt.Errorf("update expertise: %w", err)
	}
	if !ok {
		return nil, domain.ErrNotReviewer
	}

	return s.GetReviewer(ctx, input.JournalID, input.UserID)
}

// GetReviewer returns one assignment, including its expertise tags.
func (s *Service) GetReviewer(ctx context.Context, journalID, userID uuid.UUID) (*domain.JournalReviewer, error) {
	rv, err := s.roles.GetReviewer(ctx, journalID, userID)
	if err != nil {
		return nil, fmt.Errorf("get reviewer: %w", err)
	}
	return rv, nil
}

// ListReviewers returns the active reviewers of a journal.
func (s *Service) ListReviewers(ctx context.Context, journalID uuid.UUID) ([]domain.JournalReviewer, error) {
	if err := s.checkJournal(ctx, journalID); err != nil {
		return nil, err
	}
	reviewers, err := s.roles.ListReviewers(ctx, domain.ReviewerFilter{JournalID: &journalID, ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("list reviewers: %w", err)
	}
	return reviewers, nil
}

// ListReviewerJournals returns every journal assignment of a reviewer, active or not.
func (s *Service) ListReviewerJournals(ctx context.Context, userID uuid.UUID) ([]domain.JournalReviewer, error) {
	reviewers, err := s.roles.ListReviewers(ctx, domain.ReviewerFilter{UserID: &userID})
	if err != nil {
		return nil, fmt.Errorf("list reviewer journals: %w", err)
	}
	return reviewers, nil
}
