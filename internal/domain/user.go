package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// User represents a registered account: author, editor or reviewer.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Institution  string
	ORCID        *string
	Roles        []UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasRole reports whether the informational role tag is present.
func (u *User) HasRole(role UserRole) bool {
	return slices.Contains(u.Roles, role)
}
