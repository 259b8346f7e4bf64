package domain

import (
	"time"

	"github.com/google/uuid"
)

// Score bounds for a review result.
const (
	MinScore = 1
	MaxScore = 5
)

// ReviewersPerRound is the number of reviewers assigned to every review.
const ReviewersPerRound = 2

// Review is one review round of a paper by two reviewers.
type Review struct {
	ID               uuid.UUID
	PaperID          uuid.UUID
	RequesterID      uuid.UUID
	FirstReviewerID  uuid.UUID
	SecondReviewerID uuid.UUID
	Status           ReviewStatus
	RequestDate      time.Time
	AssignedDate     time.Time
	CompletedDate    *time.Time
	FinalDecision    *FinalDecision
	EditorNotes      *string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Results is filled by read operations that load the review with its results.
	Results []ReviewResult
}

// IsAssigned reports whether userID is one of the two reviewers.
func (r *Review) IsAssigned(userID uuid.UUID) bool {
	return r.FirstReviewerID == userID || r.SecondReviewerID == userID
}

// ReviewResult is a reviewer's verdict on a review. It starts as a
// placeholder and is submitted exactly once.
type ReviewResult struct {
	ID             uuid.UUID
	ReviewID       uuid.UUID
	ReviewerID     uuid.UUID
	Recommendation Recommendation
	Comments       string
	OverallScore   int
	IsSubmitted    bool
	ResultDate     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewPlaceholderResult builds the unsubmitted result row created with a review.
func NewPlaceholderResult(reviewID, reviewerID uuid.UUID) ReviewResult {
	return ReviewResult{
		ID:             uuid.New(),
		ReviewID:       reviewID,
		ReviewerID:     reviewerID,
		Recommendation: RecommendationNotReviewed,
		Comments:       "",
		OverallScore:   MinScore,
	}
}

// ValidScore reports whether score is within [MinScore, MaxScore].
func ValidScore(score int) bool {
	return score >= MinScore && score <= MaxScore
}

// Decide aggregates two recommendations. Only unanimous approve or
// unanimous reject are conclusive; everything else needs revision.
func Decide(first, second Recommendation) FinalDecision {
	switch first {
	case RecommendationApprove:
		if second == RecommendationApprove {
			return FinalDecisionApproved
		}
		return FinalDecisionNeedsRevision
	case RecommendationReject:
		if second == RecommendationReject {
			return FinalDecisionRejected
		}
		return FinalDecisionNeedsRevision
	case RecommendationMajorRevision, RecommendationMinorRevision, RecommendationNotReviewed:
		return FinalDecisionNeedsRevision
	}
	panic("domain: unhandled recommendation " + string(first))
}

// ReviewFilter contains filtering/pagination parameters for review listings.
type ReviewFilter struct {
	PaperID    *uuid.UUID
	ReviewerID *uuid.UUID
	Status     *ReviewStatus
	// PendingFor restricts to open reviews where this reviewer has not submitted.
	PendingFor *uuid.UUID
	Limit      int
	Offset     int
}
