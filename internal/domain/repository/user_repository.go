// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"checats/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by their login name.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAll retrieves every user record.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update replaces the mutable fields of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// UpdateRole sets the role column for the given user.
	UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error

	// UpdatePasswordHash sets the stored password hash for the given user.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error

	// UpdateEmail sets the email column for the given user.
	UpdateEmail(ctx context.Context, id uuid.UUID, email string) error

	// UpdateProfilePicture sets the avatar blob for the given user.
	UpdateProfilePicture(ctx context.Context, id uuid.UUID, picture []byte) error

	// Delete removes a user by ID. Deleting an absent ID is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
