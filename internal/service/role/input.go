package role

import (
	"github.com/google/uuid"

	"github.com/tarsojabbes/science/internal/domain"
)

const (
	maxExpertiseTags   = 20
	maxExpertiseTagLen = 64
)

// AssignmentInput identifies a (journal, user) role pair.
type AssignmentInput struct {
	JournalID uuid.UUID
	UserID    uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i AssignmentInput) Validate() error {
	var errs []domain.FieldError
	if i.JournalID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "journalId", Message: "required"})
	}
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "userId", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AddReviewerInput holds the parameters for adding a reviewer.
type AddReviewerInput struct {
	JournalID uuid.UUID
	UserID    uuid.UUID
	Expertise []string
}

// Validate checks all fields and collects all errors.
func (i AddReviewerInput) Validate() error {
	var errs []domain.FieldError
	if i.JournalID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "journalId", Message: "required"})
	}
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "userId", Message: "required"})
	}
	errs = append(errs, validateExpertise(i.Expertise)...)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateExpertiseInput replaces a reviewer's expertise tags.
type UpdateExpertiseInput struct {
	JournalID uuid.UUID
	UserID    uuid.UUID
	Expertise []string
}

// Validate checks all fields and collects all errors.
func (i UpdateExpertiseInput) Validate() error {
	errs := validateExpertise(i.Expertise)
	if i.JournalID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "journalId", Message: "required"})
	}
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "userId", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateExpertise(tags []string) []domain.FieldError {
	var errs []domain.FieldError
	if len(tags) > maxExpertiseTags {
		errs = append(errs, domain.FieldError{Field: "expertise", Message: "max 20 tags"})
	}
	for _, tag := range tags {
		if len(tag) > maxExpertiseTagLen {
			errs = append(errs, domain.FieldError{Field: "expertise", Message: "tag max 64 characters"})
			break
		}
	}
	return errs
}
