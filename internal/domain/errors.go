package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrInvalidState  = errors.New("invalid state")
)

// Error is a business-rule failure with a caller-visible message.
// It unwraps to one of the sentinel kinds above, so callers can branch on
// either the specific error or its category.
type Error struct {
	kind error
	msg  string
}

func newError(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

// Kind returns the sentinel category of the error.
func (e *Error) Kind() error { return e.kind }

// Entity lookups.
var (
	ErrUserNotFound    = newError(ErrNotFound, "User not found")
	ErrJournalNotFound = newError(ErrNotFound, "Journal not found")
	ErrPaperNotFound   = newError(ErrNotFound, "Paper not found")
	ErrReviewNotFound  = newError(ErrNotFound, "Review not found")
	ErrIssueNotFound   = newError(ErrNotFound, "Issue not found")
)

// Role assignment.
var (
	ErrAlreadyEditor   = newError(ErrConflict, "User is already an editor of this journal")
	ErrAlreadyReviewer = newError(ErrConflict, "User is already a reviewer of this journal")
	ErrNotEditor       = newError(ErrNotFound, "User is not an editor of this journal")
	ErrNotReviewer     = newError(ErrNotFound, "User is not a reviewer of this journal")
	ErrEditorRequired  = newError(ErrForbidden, "Editor permission required for this action")
)

// Review workflow.
var (
	ErrInvalidPaperState     = newError(ErrInvalidState, "Paper must be in submitted status to request review")
	ErrInsufficientReviewers = newError(ErrConflict, "Not enough active reviewers available for this journal")
	ErrInvalidRecommendation = newError(ErrValidation, "Recommendation must be one of approve, reject, major_revision, minor_revision, not_reviewed")
	ErrInvalidScore          = newError(ErrValidation, "Overall score must be an integer between 1 and 5")
	ErrInvalidReviewStatus   = newError(ErrValidation, "Status must be one of pending, in_progress, completed, cancelled")
	ErrNotAssignedReviewer   = newError(ErrForbidden, "User is not an assigned reviewer of this review")
	ErrAlreadySubmitted      = newError(ErrConflict, "Review result already submitted")
	ErrReviewClosed          = newError(ErrInvalidState, "Review is not open for result submission")
	ErrManualCompletion      = newError(ErrInvalidState, "Review can only be completed by submitting both results")
	ErrInvalidTransition     = newError(ErrInvalidState, "Invalid paper status transition")
	ErrPaperHasOpenReview    = newError(ErrInvalidState, "Paper cannot be deleted while a review is open")
	ErrPaperAccessDenied     = newError(ErrForbidden, "Only the paper's researchers or the journal's editors can change it")
)

// Issue composition.
var (
	ErrIssuePaperNotFound = newError(ErrNotFound, "Cannot associate non-existent paper to issue")
	ErrPaperNotApproved   = newError(ErrInvalidState, "Paper must be approved to be included in an issue")
	ErrJournalMismatch    = newError(ErrInvalidState, "Paper can only be published in the journal to which it was submitted")
)

// Accounts.
var (
	ErrInvalidCredentials = newError(ErrUnauthorized, "Invalid email or password")
	ErrResearcherNotFound = newError(ErrNotFound, "One or more researchers do not exist")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
