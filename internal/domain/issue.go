package domain

import (
	"time"

	"github.com/google/uuid"
)

// Issue is a published collection of approved papers of one journal.
type Issue struct {
	ID              uuid.UUID
	JournalID       uuid.UUID
	Number          int
	Volume          int
	PublicationDate time.Time
	PaperIDs        []uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CheckIssueMembership validates that paper may be placed into an issue
// of journalID. A paper already published in issueID is accepted so that
// an issue can be re-saved with its current members.
func CheckIssueMembership(paper *Paper, journalID uuid.UUID, issueID *uuid.UUID) error {
	alreadyMember := issueID != nil && paper.IssueID != nil && *paper.IssueID == *issueID &&
		paper.Status == PaperStatusPublished
	if paper.Status != PaperStatusApproved && !alreadyMember {
		return ErrPaperNotApproved
	}
	if paper.JournalID != journalID {
		return ErrJournalMismatch
	}
	return nil
}
