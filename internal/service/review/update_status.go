package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tarsojabbes/science/internal/domain"
)

// UpdateStatus is an editor override of a review's status and notes. It
// never touches the paper. Completion is refused here because it requires a
// final decision, which only result aggregation produces.
func (s *Service) UpdateStatus(ctx context.Context, input UpdateStatusInput) (*domain.Review, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.Status == domain.ReviewStatusCompleted {
		return nil, domain.ErrManualCompletion
	}

	var updated *domain.Review
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		rv, err := s.reviews.LockByID(ctx, input.ReviewID)
		if err != nil {
			return fmt.Errorf("lock review: %w", err)
		}
		if rv.Status == domain.ReviewStatusCompleted {
			return domain.ErrReviewClosed
		}

		paper, err := s.papers.GetByID(ctx, rv.PaperID)
		if err != nil {
			return fmt.Errorf("get paper: %w", err)
		}
		ok, err := s.roles.IsEditorOf(ctx, input.EditorID, paper.JournalID)
		if err != nil {
			return fmt.Errorf("check editor: %w", err)
		}
		if !ok {
			return domain.ErrEditorRequired
		}

		notes := rv.EditorNotes
		if input.EditorNotes != nil {
			notes = input.EditorNotes
		}
		if err := s.reviews.UpdateStatus(ctx, rv.ID, input.Status, notes); err != nil {
			return fmt.Errorf("update review status: %w", err)
		}

		rv.Status = input.Status
		rv.EditorNotes = notes
		updated = rv
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "review status updated",
		slog.String("review_id", updated.ID.String()),
		slog.String("status", updated.Status.String()),
		slog.String("editor_id", input.EditorID.String()),
	)
	return updated, nil
}
