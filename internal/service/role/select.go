package role

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// SelectReviewers returns up to count active reviewers of a journal in
// uniformly random order. It returns fewer when not enough are available;
// callers check the length.
func (s *Service) SelectReviewers(ctx context.Context, journalID uuid.UUID, count int) ([]uuid.UUID, error) {
	if count <= 0 {
		return []uuid.UUID{}, nil
	}

	candidates, err := s.roles.ActiveReviewerIDs(ctx, journalID)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	s.shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	if len(candidates) > count {
		candidates = candidates[:count]
	}
	return candidates, nil
}
