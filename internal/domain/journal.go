package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Journal is a publication venue owning papers and issues.
type Journal struct {
	ID        uuid.UUID
	Name      string
	ISSN      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// JournalEditor grants a user editorial rights on a journal.
type JournalEditor struct {
	JournalID  uuid.UUID
	UserID     uuid.UUID
	AssignedAt time.Time
}

// JournalReviewer makes a user a reviewer candidate for a journal.
// Deactivated rows persist but are never selected for new reviews.
type JournalReviewer struct {
	JournalID  uuid.UUID
	UserID     uuid.UUID
	Expertise  []string
	IsActive   bool
	AssignedAt time.Time
}

var issnPattern = regexp.MustCompile(`^\d{4}-\d{3}[\dX]$`)

// ValidISSN reports whether s has the NNNN-NNNC shape with a correct check digit.
func ValidISSN(s string) bool {
	if !issnPattern.MatchString(s) {
		return false
	}
	digits := s[:4] + s[5:8]
	sum := 0
	for i, r := range digits {
		sum += int(r-'0') * (8 - i)
	}
	check := (11 - sum%11) % 11
	last := s[8]
	if check == 10 {
		return last == 'X'
	}
	return int(last-'0') == check
}

// ReviewerFilter narrows reviewer assignment listings.
type ReviewerFilter struct {
	JournalID  *uuid.UUID
	UserID     *uuid.UUID
	ActiveOnly bool
}
