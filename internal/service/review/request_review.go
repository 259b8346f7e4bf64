package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tarsojabbes/science/internal/domain"
)

// RequestReview opens a review round for a submitted paper. Two active
// reviewers of the paper's journal are drawn at random, a placeholder result
// is created for each, and the paper moves to under_review. All of it
// commits together or not at all.
func (s *Service) RequestReview(ctx context.Context, input RequestReviewInput) (*domain.Review, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		created *domain.Review
		paper   *domain.Paper
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		paper, err = s.papers.LockByID(ctx, input.PaperID)
		if err != nil {
			return fmt.Errorf("lock paper: %w", err)
		}
		if paper.Status != domain.PaperStatusSubmitted {
			return domain.ErrInvalidPaperState
		}

		reviewers, err := s.roles.SelectReviewers(ctx, paper.JournalID, domain.ReviewersPerRound)
		if err != nil {
			return fmt.Errorf("select reviewers: %w", err)
		}
		if len(reviewers) < domain.ReviewersPerRound {
			return domain.ErrInsufficientReviewers
		}

		next, err := domain.Transition(paper.Status, domain.EventReviewRequested)
		if err != nil {
			return err
		}

		now := s.now()
		rv := &domain.Review{
			ID:               uuid.New(),
			PaperID:          paper.ID,
			RequesterID:      input.RequesterID,
			FirstReviewerID:  reviewers[0],
			SecondReviewerID: reviewers[1],
			Status:           domain.ReviewStatusPending,
			RequestDate:      now,
			AssignedDate:     now,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := s.reviews.Create(ctx, rv); err != nil {
			return fmt.Errorf("create review: %w", err)
		}

		for _, reviewerID := range []uuid.UUID{rv.FirstReviewerID, rv.SecondReviewerID} {
			placeholder := domain.NewPlaceholderResult(rv.ID, reviewerID)
			res, err := s.reviews.CreateResult(ctx, &placeholder)
			if err != nil {
				return fmt.Errorf("create placeholder: %w", err)
			}
			rv.Results = append(rv.Results, *res)
		}

		if err := s.papers.UpdateStatus(ctx, paper.ID, next); err != nil {
			return fmt.Errorf("update paper status: %w", err)
		}
		paper.Status = next

		created = rv
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "review requested",
		slog.String("review_id", created.ID.String()),
		slog.String("paper_id", created.PaperID.String()),
		slog.String("requester_id", created.RequesterID.String()),
	)

	if err := s.notify.ReviewAssigned(ctx, created, paper); err != nil {
		s.log.WarnContext(ctx, "notify reviewers failed",
			slog.String("review_id", created.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	return created, nil
}
