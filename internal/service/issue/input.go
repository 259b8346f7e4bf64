package issue

import (
	"time"

	"github.com/google/uuid"

	"github.com/tarsojabbes/science/internal/domain"
)

const maxPapersPerIssue = 200

// CreateIssueInput holds the parameters for composing a new issue.
type CreateIssueInput struct {
	JournalID       uuid.UUID
	Number          int
	Volume          int
	PublicationDate *time.Time
	PaperIDs        []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateIssueInput) Validate() error {
	var errs []domain.FieldError
	if i.JournalID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "journalId", Message: "required"})
	}
	errs = append(errs, validateNumbering(i.Number, i.Volume)...)
	errs = append(errs, validatePaperIDs(i.PaperIDs)...)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateIssueInput replaces an issue's numbering and member papers.
// JournalID, when set, must match the issue's journal.
type UpdateIssueInput struct {
	ID        uuid.UUID
	JournalID *uuid.UUID
	Number    int
	Volume    int
	PaperIDs  []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i UpdateIssueInput) Validate() error {
	var errs []domain.FieldError
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = append(errs, validateNumbering(i.Number, i.Volume)...)
	errs = append(errs, validatePaperIDs(i.PaperIDs)...)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateNumbering(number, volume int) []domain.FieldError {
	var errs []domain.FieldError
	if number <= 0 {
		errs = append(errs, domain.FieldError{Field: "number", Message: "must be positive"})
	}
	if volume <= 0 {
		errs = append(errs, domain.FieldError{Field: "volume", Message: "must be positive"})
	}
	return errs
}

func validatePaperIDs(ids []uuid.UUID) []domain.FieldError {
	if len(ids) > maxPapersPerIssue {
		return []domain.FieldError{{Field: "paperIds", Message: "max 200 papers"}}
	}
	for _, id := range ids {
		if id == uuid.Nil {
			return []domain.FieldError{{Field: "paperIds", Message: "invalid id"}}
		}
	}
	return nil
}
