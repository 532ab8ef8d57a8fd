package domain

import (
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	maxNameLength  = 50
	maxEmailLength = 255
)

var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser validates the fields and returns a user with a fresh id.
// The password digest is attached separately, a user may have none.
func NewUser(firstName, lastName, email string, isAdmin bool) (*User, error) {
	now := time.Now().UTC()
	u := &User{
		ID:        uuid.NewString(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		IsAdmin:   isAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *User) Validate() error {
	if err := ValidateName("first_name", u.FirstName); err != nil {
		return err
	}
	if err := ValidateName("last_name", u.LastName); err != nil {
		return err
	}
	return ValidateEmail(u.Email)
}

// HasPassword reports whether the user can authenticate with a password.
// Users seeded without one stay in this state until a password is set.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

func (u *User) Touch() {
	u.UpdatedAt = time.Now().UTC()
}

func ValidateName(field, v string) error {
	if v == "" {
		return invalid(field, "is required")
	}
	if utf8.RuneCountInString(v) > maxNameLength {
		return invalid(field, "must be 50 characters or fewer")
	}
	return nil
}

func ValidateEmail(email string) error {
	if email == "" {
		return invalid("email", "is required")
	}
	if utf8.RuneCountInString(email) > maxEmailLength {
		return invalid("email", "must be 255 characters or fewer")
	}
	if !emailPattern.MatchString(email) {
		return invalid("email", "must be a valid email address")
	}
	return nil
}
