package paper

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/tarsojabbes/science/internal/domain"
)

// CreatePaper submits a paper to a journal. Every researcher must exist.
func (s *Service) CreatePaper(ctx context.Context, input CreatePaperInput) (*domain.Paper, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Paper
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		exists, err := s.journals.Exists(ctx, input.JournalID)
		if err != nil {
			return fmt.Errorf("check journal: %w", err)
		}
		if !exists {
			return domain.ErrJournalNotFound
		}

		researchers := dedupe(input.ResearcherIDs)
		if err := s.checkResearchers(ctx, researchers); err != nil {
			return err
		}

		now := s.now()
		created, err = s.papers.Create(ctx, &domain.Paper{
			ID:             uuid.New(),
			Name:           strings.TrimSpace(input.Name),
			URL:            strings.TrimSpace(input.URL),
			JournalID:      input.JournalID,
			Status:         domain.PaperStatusSubmitted,
			SubmissionDate: now,
			ResearcherIDs:  researchers,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
		if err != nil {
			return fmt.Errorf("create paper: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "paper submitted",
		slog.String("paper_id", created.ID.String()),
		slog.String("journal_id", created.JournalID.String()))

	return created, nil
}

// UpdatePaper changes name, URL or researchers. Only the paper's researchers
// and the journal's editors may do so.
func (s *Service) UpdatePaper(ctx context.Context, input UpdatePaperInput) (*domain.Paper, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := s.papers.LockByID(ctx, input.ID)
		if err != nil {
			return fmt.Errorf("lock paper: %w", err)
		}
		if err := s.checkAccess(ctx, p, input.ActorID); err != nil {
			return err
		}

		if input.ResearcherIDs != nil {
			researchers := dedupe(input.ResearcherIDs)
			if err := s.checkResearchers(ctx, researchers); err != nil {
				return err
			}
			if err := s.papers.SetResearchers(ctx, p.ID, researchers); err != nil {
				return fmt.Errorf("set researchers: %w", err)
			}
		}

		if input.Name == nil && input.URL == nil {
			return nil
		}
		name, url := p.Name, p.URL
		if input.Name != nil {
			name = strings.TrimSpace(*input.Name)
		}
		if input.URL != nil {
			url = strings.TrimSpace(*input.URL)
		}
		if err := s.papers.Update(ctx, p.ID, name, url); err != nil {
			return fmt.Errorf("update paper: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "paper updated", slog.String("paper_id", input.ID.String()))

	return s.GetPaper(ctx, input.ID)
}

// DeletePaper removes a paper that has no open review.
func (s *Service) DeletePaper(ctx context.Context, id, actorID uuid.UUID) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := s.papers.LockByID(ctx, id)
		if err != nil {
			return fmt.Errorf("lock paper: %w", err)
		}
		if err := s.checkAccess(ctx, p, actorID); err != nil {
			return err
		}

		open, err := s.reviews.HasOpenReview(ctx, id)
		if err != nil {
			return fmt.Errorf("check open review: %w", err)
		}
		if open {
			return domain.ErrPaperHasOpenReview
		}

		if err := s.papers.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete paper: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "paper deleted", slog.String("paper_id", id.String()))
	return nil
}

// GetPaper returns a paper with its researchers.
func (s *Service) GetPaper(ctx context.Context, id uuid.UUID) (*domain.Paper, error) {
	p, err := s.papers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get paper: %w", err)
	}
	return p, nil
}

// ListPapers returns one page of papers matching the filter.
func (s *Service) ListPapers(ctx context.Context, input ListPapersInput) ([]domain.Paper, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	f := domain.PaperFilter{
		JournalID:    input.JournalID,
		IssueID:      input.IssueID,
		ResearcherID: input.ResearcherID,
		Status:       input.Status,
		Limit:        domain.ClampLimit(input.Limit),
		Offset:       max(input.Offset, 0),
	}
	if search := strings.TrimSpace(input.Search); search != "" {
		f.Search = &search
	}

	papers, err := s.papers.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list papers: %w", err)
	}
	return papers, nil
}

func (s *Service) checkResearchers(ctx context.Context, ids []uuid.UUID) error {
	found, err := s.users.ExistingIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("check researchers: %w", err)
	}
	if len(found) != len(ids) {
		return domain.ErrResearcherNotFound
	}
	return nil
}

func (s *Service) checkAccess(ctx context.Context, p *domain.Paper, actorID uuid.UUID) error {
	if slices.Contains(p.ResearcherIDs, actorID) {
		return nil
	}
	ok, err := s.roles.IsEditorOf(ctx, actorID, p.JournalID)
	if err != nil {
		return fmt.Errorf("check editor: %w", err)
	}
	if !ok {
		return domain.ErrPaperAccessDenied
	}
	return nil
}
