package domain

// PaperStatus represents the lifecycle state of a submitted paper.
type PaperStatus string

const (
	PaperStatusSubmitted   PaperStatus = "submitted"
	PaperStatusUnderReview PaperStatus = "under_review"
	PaperStatusApproved    PaperStatus = "approved"
	PaperStatusRejected    PaperStatus = "rejected"
	PaperStatusPublished   PaperStatus = "published"
)

func (s PaperStatus) String() string { return string(s) }

func (s PaperStatus) IsValid() bool {
	switch s {
	case PaperStatusSubmitted, PaperStatusUnderReview, PaperStatusApproved,
		PaperStatusRejected, PaperStatusPublished:
		return true
	}
	return false
}

// ReviewStatus represents the state of a review round.
type ReviewStatus string

const (
	ReviewStatusPending    ReviewStatus = "pending"
	ReviewStatusInProgress ReviewStatus = "in_progress"
	ReviewStatusCompleted  ReviewStatus = "completed"
	ReviewStatusCancelled  ReviewStatus = "cancelled"
)

func (s ReviewStatus) String() string { return string(s) }

func (s ReviewStatus) IsValid() bool {
	switch s {
	case ReviewStatusPending, ReviewStatusInProgress, ReviewStatusCompleted, ReviewStatusCancelled:
		return true
	}
	return false
}

// IsOpen reports whether reviewers may still submit results.
func (s ReviewStatus) IsOpen() bool {
	return s == ReviewStatusPending || s == ReviewStatusInProgress
}

// FinalDecision is the aggregated outcome of a completed review.
type FinalDecision string

const (
	FinalDecisionApproved      FinalDecision = "approved"
	FinalDecisionRejected      FinalDecision = "rejected"
	FinalDecisionNeedsRevision FinalDecision = "needs_revision"
)

func (d FinalDecision) String() string { return string(d) }

func (d FinalDecision) IsValid() bool {
	switch d {
	case FinalDecisionApproved, FinalDecisionRejected, FinalDecisionNeedsRevision:
		return true
	}
	return false
}

// Recommendation is a single reviewer's verdict.
type Recommendation string

const (
	RecommendationApprove       Recommendation = "approve"
	RecommendationReject        Recommendation = "reject"
	RecommendationMajorRevision Recommendation = "major_revision"
	RecommendationMinorRevision Recommendation = "minor_revision"
	RecommendationNotReviewed   Recommendation = "not_reviewed"
)

func (r Recommendation) String() string { return string(r) }

func (r Recommendation) IsValid() bool {
	switch r {
	case RecommendationApprove, RecommendationReject, RecommendationMajorRevision,
		RecommendationMinorRevision, RecommendationNotReviewed:
		return true
	}
	return false
}

// AllRecommendations lists every recommendation value.
func AllRecommendations() []Recommendation {
	return []Recommendation{
		RecommendationApprove,
		RecommendationReject,
		RecommendationMajorRevision,
		RecommendationMinorRevision,
		RecommendationNotReviewed,
	}
}

// UserRole is an informational role tag stored on the user profile.
// Permissions come from journal-scoped editor and reviewer assignments.
type UserRole string

const (
	UserRoleResearcher UserRole = "researcher"
	UserRoleEditor     UserRole = "editor"
	UserRoleReviewer   UserRole = "reviewer"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleResearcher, UserRoleEditor, UserRoleReviewer:
		return true
	}
	return false
}
