package auth

import (
	"net/mail"
	"regexp"

	"github.com/tarsojabbes/science/internal/domain"
)

const (
	minPasswordLen    = 8
	maxPasswordLen    = 72 // bcrypt limit
	maxNameLen        = 255
	maxEmailLen       = 254
	maxInstitutionLen = 255
)

var orcidPattern = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{3}[\dX]$`)

// RegisterInput holds parameters for account registration.
type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	Institution string
	ORCID       *string
	Roles       []domain.UserRole
}

// Validate checks all fields and collects all errors.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if len(i.Email) > maxEmailLen {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email format"})
	}

	if len(i.Password) < minPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 8 characters"})
	} else if len(i.Password) > maxPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(i.Institution) > maxInstitutionLen {
		errs = append(errs, domain.FieldError{Field: "institution", Message: "too long"})
	}

	if i.ORCID != nil && !orcidPattern.MatchString(*i.ORCID) {
		errs = append(errs, domain.FieldError{Field: "orcid", Message: "must look like 0000-0000-0000-000X"})
	}

	for _, r := range i.Roles {
		if !r.IsValid() {
			errs = append(errs, domain.FieldError{Field: "roles", Message: "unknown role " + string(r)})
			break
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// LoginInput holds parameters for password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate checks all fields and collects all errors.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if len(i.Email) > maxEmailLen {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > maxPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
