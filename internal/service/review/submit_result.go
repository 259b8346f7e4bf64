package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tarsojabbes/science/internal/domain"
)

// SubmitResult records a reviewer's verdict. A result is write-once. When the
// second result lands the review is completed and the paper moves according
// to the aggregated decision.
//
// The review row is locked for the whole transaction, so concurrent
// submissions for one review run one after the other and exactly one of them
// observes both results submitted.
func (s *Service) SubmitResult(ctx context.Context, input SubmitResultInput) (*domain.ReviewResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		submitted *domain.ReviewResult
		completed *domain.Review
		paper     *domain.Paper
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		rv, err := s.reviews.LockByID(ctx, input.ReviewID)
		if err != nil {
			return fmt.Errorf("lock review: %w", err)
		}
		if !rv.IsAssigned(input.ReviewerID) {
			return domain.ErrNotAssignedReviewer
		}

		now := s.now()
		current, err := s.reviews.GetResult(ctx, rv.ID, input.ReviewerID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			current = nil
		case err != nil:
			return fmt.Errorf("get result: %w", err)
		case current.IsSubmitted:
			return domain.ErrAlreadySubmitted
		}
		if !rv.Status.IsOpen() {
			return domain.ErrReviewClosed
		}

		if current == nil {
			submitted, err = s.repairMissingResult(ctx, rv, input, now)
		} else {
			current.Recommendation = input.Recommendation
			current.Comments = input.Comments
			current.OverallScore = input.OverallScore
			current.ResultDate = &now
			submitted, err = s.reviews.SubmitResult(ctx, current)
		}
		if err != nil {
			return err
		}

		completed, paper, err = s.completeIfReady(ctx, rv, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "review result submitted",
		slog.String("review_id", input.ReviewID.String()),
		slog.String("reviewer_id", input.ReviewerID.String()),
		slog.String("recommendation", input.Recommendation.String()),
	)

	if completed != nil {
		s.log.InfoContext(ctx, "review completed",
			slog.String("review_id", completed.ID.String()),
			slog.String("paper_id", completed.PaperID.String()),
			slog.String("decision", completed.FinalDecision.String()),
			slog.String("paper_status", paper.Status.String()),
		)
		if err := s.notify.ReviewCompleted(ctx, completed, paper); err != nil {
			s.log.WarnContext(ctx, "notify requester failed",
				slog.String("review_id", completed.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	return submitted, nil
}

// repairMissingResult creates the reviewer's result row directly in the
// submitted state. Review creation always writes both placeholders, so
// reaching this means the data was modified outside the workflow.
func (s *Service) repairMissingResult(ctx context.Context, rv *domain.Review, input SubmitResultInput, now time.Time) (*domain.ReviewResult, error) {
	s.log.WarnContext(ctx, "review result placeholder missing, creating submitted result",
		slog.String("review_id", rv.ID.String()),
		slog.String("reviewer_id", input.ReviewerID.String()),
	)

	res := &domain.ReviewResult{
		ID:             uuid.New(),
		ReviewID:       rv.ID,
		ReviewerID:     input.ReviewerID,
		Recommendation: input.Recommendation,
		Comments:       input.Comments,
		OverallScore:   input.OverallScore,
		IsSubmitted:    true,
		ResultDate:     &now,
	}
	created, err := s.reviews.CreateResult(ctx, res)
	if err != nil {
		return nil, fmt.Errorf("repair result: %w", err)
	}
	return created, nil
}

// completeIfReady finishes the review when both results are submitted.
// Returns nil review when the review stays open.
func (s *Service) completeIfReady(ctx context.Context, rv *domain.Review, now time.Time) (*domain.Review, *domain.Paper, error) {
	results, err := s.reviews.Results(ctx, rv.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("load results: %w", err)
	}

	first, second, ok := submittedPair(rv, results)
	if !ok {
		return nil, nil, nil
	}

	decision := domain.Decide(first.Recommendation, second.Recommendation)
	if err := s.reviews.Complete(ctx, rv.ID, decision, now); err != nil {
		return nil, nil, fmt.Errorf("complete review: %w", err)
	}

	paper, err := s.papers.LockByID(ctx, rv.PaperID)
	if err != nil {
		return nil, nil, fmt.Errorf("lock paper: %w", err)
	}
	next, err := domain.Transition(paper.Status, domain.DecisionEvent(decision))
	if err != nil {
		return nil, nil, fmt.Errorf("paper %s: %w", paper.ID, err)
	}
	if err := s.papers.UpdateStatus(ctx, paper.ID, next); err != nil {
		return nil, nil, fmt.Errorf("update paper status: %w", err)
	}
	paper.Status = next

	rv.Status = domain.ReviewStatusCompleted
	rv.CompletedDate = &now
	rv.FinalDecision = &decision
	rv.Results = results
	return rv, paper, nil
}

// submittedPair returns the results of the first and second reviewer when
// both are submitted.
func submittedPair(rv *domain.Review, results []domain.ReviewResult) (first, second domain.ReviewResult, ok bool) {
	var haveFirst, haveSecond bool
	for _, res := range results {
		if !res.IsSubmitted {
			continue
		}
		switch res.ReviewerID {
		case rv.FirstReviewerID:
			first, haveFirst = res, true
		case rv.SecondReviewerID:
			second, haveSecond = res, true
		}
	}
	return first, second, haveFirst && haveSecond
}
