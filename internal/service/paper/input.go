package paper

import (
	"net/url"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/tarsojabbes/science/internal/domain"
)

const (
	maxNameLen     = 500
	maxURLLen      = 2048
	maxResearchers = 50
	maxSearchLen   = 200
)

// CreatePaperInput holds the parameters for a new submission.
type CreatePaperInput struct {
	JournalID     uuid.UUID
	Name          string
	URL           string
	ResearcherIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreatePaperInput) Validate() error {
	var errs []domain.FieldError
	if i.JournalID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "journalId", Message: "required"})
	}
	errs = append(errs, validateName(i.Name)...)
	errs = append(errs, validateURL(i.URL)...)
	errs = append(errs, validateResearchers(i.ResearcherIDs)...)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdatePaperInput changes descriptive fields. Nil fields are kept.
// Status and journal are never changed here.
type UpdatePaperInput struct {
	ID            uuid.UUID
	ActorID       uuid.UUID
	Name          *string
	URL           *string
	ResearcherIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i UpdatePaperInput) Validate() error {
	var errs []domain.FieldError
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name != nil {
		errs = append(errs, validateName(*i.Name)...)
	}
	if i.URL != nil {
		errs = append(errs, validateURL(*i.URL)...)
	}
	if i.ResearcherIDs != nil {
		errs = append(errs, validateResearchers(i.ResearcherIDs)...)
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListPapersInput filters paper listings.
type ListPapersInput struct {
	JournalID    *uuid.UUID
	IssueID      *uuid.UUID
	ResearcherID *uuid.UUID
	Status       *domain.PaperStatus
	Search       string
	Limit        int
	Offset       int
}

// Validate checks all fields and collects all errors.
func (i ListPapersInput) Validate() error {
	var errs []domain.FieldError
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if len(i.Search) > maxSearchLen {
		errs = append(errs, domain.FieldError{Field: "search", Message: "too long"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateName(name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return []domain.FieldError{{Field: "name", Message: "required"}}
	}
	if len(name) > maxNameLen {
		return []domain.FieldError{{Field: "name", Message: "too long"}}
	}
	return nil
}

func validateURL(raw string) []domain.FieldError {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []domain.FieldError{{Field: "url", Message: "required"}}
	}
	if len(raw) > maxURLLen {
		return []domain.FieldError{{Field: "url", Message: "too long"}}
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return []domain.FieldError{{Field: "url", Message: "must be an absolute http(s) URL"}}
	}
	return nil
}

func validateResearchers(ids []uuid.UUID) []domain.FieldError {
	if len(ids) == 0 {
		return []domain.FieldError{{Field: "researcherIds", Message: "at least one required"}}
	}
	if len(ids) > maxResearchers {
		return []domain.FieldError{{Field: "researcherIds", Message: "too many researchers"}}
	}
	if slices.Contains(ids, uuid.Nil) {
		return []domain.FieldError{{Field: "researcherIds", Message: "contains empty id"}}
	}
	return nil
}

// dedupe keeps the first occurrence of every id, preserving author order.
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
