// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"net/mail"
	"time"

	"github.com/google/uuid"

	domainerrors "checats/internal/domain/errors"
)

// Field limits enforced at the boundary before persistence.
const (
	UsernameMaxLength = 30
	EmailMaxLength    = 40
)

// User is the core identity in the system. The password is only ever held as
// an opaque hash; the role decides which operations the identity may invoke.
type User struct {
	ID             uuid.UUID  // The unique identifier for the user, generated by the database.
	Username       string     // The unique login name, at most UsernameMaxLength characters.
	Email          string     // The unique contact address, at most EmailMaxLength characters.
	PasswordHash   string     // The bcrypt hash of the user's password. Never the plaintext.
	Role           Role       // The user's permission tier. Defaults to RoleUser.
	ProfilePicture []byte     // Optional avatar image blob.
	Posts          []*Post    // Posts authored by this user. Nil unless preloaded.
	Comments       []*Comment // Comments authored by this user. Nil unless preloaded.
	CreatedAt      time.Time  // Timestamp of when this account was created.
	UpdatedAt      time.Time  // Timestamp of the last modification to this account.
}

// ValidateUserFields checks the registration triple against the boundary rules:
// nothing empty, lengths within limits, email syntactically a mail address.
func ValidateUserFields(username, email, password string) error {
	if username == "" {
		return domainerrors.ErrValidationFailed.WithDetails("username can not be empty")
	}
	if len(username) > UsernameMaxLength {
		return domainerrors.ErrValidationFailed.WithDetails("username exceeds maximum length")
	}
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if password == "" {
		return domainerrors.ErrValidationFailed.WithDetails("password can not be empty")
	}

	return nil
}

// ValidateEmail checks a single email address against the boundary rules.
func ValidateEmail(email string) error {
	if email == "" {
		return domainerrors.ErrValidationFailed.WithDetails("email can not be empty")
	}
	if len(email) > EmailMaxLength {
		return domainerrors.ErrValidationFailed.WithDetails("email exceeds maximum length")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("email is not a valid address")
	}

	return nil
}
