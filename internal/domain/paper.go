package domain

import (
	"time"

	"github.com/google/uuid"
)

// Paper is a manuscript submitted to a journal.
type Paper struct {
	ID             uuid.UUID
	Name           string
	URL            string
	JournalID      uuid.UUID
	IssueID        *uuid.UUID
	Status         PaperStatus
	SubmissionDate time.Time
	PublishedDate  *time.Time
	ResearcherIDs  []uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PaperFilter contains filtering/pagination parameters for paper listings.
type PaperFilter struct {
	JournalID    *uuid.UUID
	IssueID      *uuid.UUID
	ResearcherID *uuid.UUID
	Status       *PaperStatus
	Search       *string
	Limit        int
	Offset       int
}

// Pagination defaults shared by list queries.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// ClampLimit applies the default and upper bound to a requested page size.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultPageLimit
	}
	return min(limit, MaxPageLimit)
}
