package review

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tarsojabbes/science/internal/domain"
)

// GetReview returns a review with both of its results.
func (s *Service) GetReview(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	rv, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}
	rv.Results, err = s.reviews.Results(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load results: %w", err)
	}
	return rv, nil
}

// ListByPaper returns every review round of a paper, newest first.
func (s *Service) ListByPaper(ctx context.Context, paperID uuid.UUID, limit, offset int) ([]domain.Review, error) {
	return s.list(ctx, domain.ReviewFilter{PaperID: &paperID, Limit: limit, Offset: offset})
}

// ListByReviewer returns reviews where the user is either reviewer.
func (s *Service) ListByReviewer(ctx context.Context, reviewerID uuid.UUID, limit, offset int) ([]domain.Review, error) {
	return s.list(ctx, domain.ReviewFilter{ReviewerID: &reviewerID, Limit: limit, Offset: offset})
}

// ListPendingForReviewer returns open reviews still waiting for the
// reviewer's result.
func (s *Service) ListPendingForReviewer(ctx context.Context, reviewerID uuid.UUID, limit, offset int) ([]domain.Review, error) {
	return s.list(ctx, domain.ReviewFilter{PendingFor: &reviewerID, Limit: limit, Offset: offset})
}

// ListReviews returns reviews matching an arbitrary filter.
func (s *Service) ListReviews(ctx context.Context, f domain.ReviewFilter) ([]domain.Review, error) {
	if f.Status != nil && !f.Status.IsValid() {
		return nil, domain.ErrInvalidReviewStatus
	}
	return s.list(ctx, f)
}

func (s *Service) list(ctx context.Context, f domain.ReviewFilter) ([]domain.Review, error) {
	reviews, err := s.reviews.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}
