// Package notify tells reviewers about new assignments and requesters about
// final decisions. Delivery is best effort: callers log failures and go on.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tarsojabbes/science/internal/domain"
)

// LogNotifier writes notifications to the log instead of sending them.
// Used when mail delivery is disabled.
type LogNotifier struct {
	log *slog.Logger
}

// NewLogNotifier creates a log-only notifier.
func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log.With("notifier", "log")}
}

// ReviewAssigned logs the two reviewer assignments.
func (n *LogNotifier) ReviewAssigned(ctx context.Context, rv *domain.Review, paper *domain.Paper) error {
	for _, reviewerID := range []uuid.UUID{rv.FirstReviewerID, rv.SecondReviewerID} {
		n.log.InfoContext(ctx, "reviewer assigned",
			slog.String("review_id", rv.ID.String()),
			slog.String("paper_id", paper.ID.String()),
			slog.String("reviewer_id", reviewerID.String()))
	}
	return nil
}

// ReviewCompleted logs the final decision for the requester.
func (n *LogNotifier) ReviewCompleted(ctx context.Context, rv *domain.Review, paper *domain.Paper) error {
	n.log.InfoContext(ctx, "review completed",
		slog.String("review_id", rv.ID.String()),
		slog.String("paper_id", paper.ID.String()),
		slog.String("requester_id", rv.RequesterID.String()),
		slog.String("decision", decisionText(rv)))
	return nil
}

func decisionText(rv *domain.Review) string {
	if rv.FinalDecision == nil {
		return "undecided"
	}
	return rv.FinalDecision.String()
}

func paperTitle(p *domain.Paper) string {
	return fmt.Sprintf("%q", p.Name)
}
