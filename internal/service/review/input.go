package review

import (
	"strings"

	"github.com/google/uuid"

	"github.com/tarsojabbes/science/internal/domain"
)

const maxCommentsLen = 20000

// RequestReviewInput holds the parameters for opening a review round.
type RequestReviewInput struct {
	PaperID     uuid.UUID
	RequesterID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i RequestReviewInput) Validate() error {
	var errs []domain.FieldError
	if i.PaperID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "paperId", Message: "required"})
	}
	if i.RequesterID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "requesterId", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SubmitResultInput holds a reviewer's verdict.
type SubmitResultInput struct {
	ReviewID       uuid.UUID
	ReviewerID     uuid.UUID
	Recommendation domain.Recommendation
	Comments       string
	OverallScore   int
}

// Validate fails on the first invalid field. Recommendation and score
// failures use their named errors so callers see the contract message.
func (i SubmitResultInput) Validate() error {
	if i.ReviewID == uuid.Nil {
		return domain.NewValidationError("reviewId", "required")
	}
	if i.ReviewerID == uuid.Nil {
		return domain.NewValidationError("reviewerId", "required")
	}
	if !i.Recommendation.IsValid() {
		return domain.ErrInvalidRecommendation
	}
	if !domain.ValidScore(i.OverallScore) {
		return domain.ErrInvalidScore
	}
	if len(i.Comments) > maxCommentsLen {
		return domain.NewValidationError("comments", "max 20000 characters")
	}
	return nil
}

// UpdateStatusInput holds an editor's manual status override.
type UpdateStatusInput struct {
	ReviewID    uuid.UUID
	EditorID    uuid.UUID
	Status      domain.ReviewStatus
	EditorNotes *string
}

// Validate checks all fields and collects all errors.
func (i UpdateStatusInput) Validate() error {
	if i.ReviewID == uuid.Nil {
		return domain.NewValidationError("reviewId", "required")
	}
	if !i.Status.IsValid() {
		return domain.ErrInvalidReviewStatus
	}
	if i.EditorNotes != nil && len(strings.TrimSpace(*i.EditorNotes)) > maxCommentsLen {
		return domain.NewValidationError("editorNotes", "max 20000 characters")
	}
	return nil
}
