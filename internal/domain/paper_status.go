package domain

// PaperEvent is something that happens to a paper and may move its status.
type PaperEvent string

const (
	EventReviewRequested   PaperEvent = "review_requested"
	EventReviewApproved    PaperEvent = "review_approved"
	EventReviewRejected    PaperEvent = "review_rejected"
	EventRevisionRequested PaperEvent = "revision_requested"
	EventPublished         PaperEvent = "published"
	EventRemovedFromIssue  PaperEvent = "removed_from_issue"
)

func (e PaperEvent) String() string { return string(e) }

type transitionKey struct {
	from  PaperStatus
	event PaperEvent
}

var paperTransitions = map[transitionKey]PaperStatus{
	{PaperStatusSubmitted, EventReviewRequested}:     PaperStatusUnderReview,
	{PaperStatusUnderReview, EventReviewApproved}:    PaperStatusApproved,
	{PaperStatusUnderReview, EventReviewRejected}:    PaperStatusRejected,
	{PaperStatusUnderReview, EventRevisionRequested}: PaperStatusSubmitted,
	{PaperStatusApproved, EventPublished}:            PaperStatusPublished,
	{PaperStatusPublished, EventRemovedFromIssue}:    PaperStatusApproved,
}

// Transition returns the status reached by applying event to from.
// Pairs missing from the table fail with ErrInvalidTransition.
func Transition(from PaperStatus, event PaperEvent) (PaperStatus, error) {
	to, ok := paperTransitions[transitionKey{from: from, event: event}]
	if !ok {
		return from, ErrInvalidTransition
	}
	return to, nil
}

// DecisionEvent maps a final review decision to the paper event it triggers.
func DecisionEvent(d FinalDecision) PaperEvent {
	switch d {
	case FinalDecisionApproved:
		return EventReviewApproved
	case FinalDecisionRejected:
		return EventReviewRejected
	case FinalDecisionNeedsRevision:
		return EventRevisionRequested
	}
	panic("domain: unhandled final decision " + string(d))
}
