package issue

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/tarsojabbes/science/internal/domain"
)

// lockMembers locks the requested papers and checks each one, in request
// order, against the membership rules. The first failing paper decides the
// error. issueID is set when re-saving an existing issue.
func (s *Service) lockMembers(ctx context.Context, journalID uuid.UUID, issueID *uuid.UUID, ids []uuid.UUID) ([]domain.Paper, error) {
	ids = dedupe(ids)
	if len(ids) == 0 {
		return nil, nil
	}

	locked, err := s.papers.LockByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("lock papers: %w", err)
	}
	byID := make(map[uuid.UUID]domain.Paper, len(locked))
	for _, p := range locked {
		byID[p.ID] = p
	}

	members := make([]domain.Paper, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("paper %s: %w", id, domain.ErrIssuePaperNotFound)
		}
		if err := domain.CheckIssueMembership(&p, journalID, issueID); err != nil {
			return nil, fmt.Errorf("paper %s: %w", id, err)
		}
		members = append(members, p)
	}
	return members, nil
}

// publish links papers to the issue and moves approved ones to published.
// Papers already published in this issue keep their publication date.
func (s *Service) publish(ctx context.Context, issueID uuid.UUID, papers []domain.Paper, at time.Time) error {
	for _, p := range papers {
		if p.Status == domain.PaperStatusPublished {
			continue
		}
		next, err := domain.Transition(p.Status, domain.EventPublished)
		if err != nil {
			return fmt.Errorf("paper %s: %w", p.ID, err)
		}
		if err := s.papers.SetPublication(ctx, p.ID, next, &issueID, &at); err != nil {
			return fmt.Errorf("publish paper: %w", err)
		}
	}
	return nil
}

// unpublish detaches papers from their issue and returns them to approved.
func (s *Service) unpublish(ctx context.Context, papers []domain.Paper) error {
	for _, p := range papers {
		next, err := domain.Transition(p.Status, domain.EventRemovedFromIssue)
		if err != nil {
			return fmt.Errorf("paper %s: %w", p.ID, err)
		}
		if err := s.papers.SetPublication(ctx, p.ID, next, nil, nil); err != nil {
			return fmt.Errorf("detach paper: %w", err)
		}
	}
	return nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func without(ids []uuid.UUID, drop []uuid.UUID) []uuid.UUID {
	return slices.DeleteFunc(slices.Clone(ids), func(id uuid.UUID) bool {
		return slices.Contains(drop, id)
	})
}
