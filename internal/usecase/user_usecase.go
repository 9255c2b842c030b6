// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"checats/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// UpdateUserInput defines the data for a full user update. The password is
// re-hashed before persistence.
type UpdateUserInput struct {
	Username       string
	Email          string
	Password       string
	Role           entity.Role
	ProfilePicture []byte
}

// ChangePasswordInput carries the old and new passwords for a password change.
type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated token after a successful login.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetUserByName(ctx context.Context, username string) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)

	UpdateUser(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)

	// DeleteUser removes the user and their posts and comments. Deleting an
	// absent ID is not an error; the ID is echoed back either way.
	DeleteUser(ctx context.Context, id uuid.UUID) (uuid.UUID, error)

	ChangeRole(ctx context.Context, id uuid.UUID, role entity.Role) error
	ChangePassword(ctx context.Context, id uuid.UUID, input *ChangePasswordInput) error
	ChangeEmail(ctx context.Context, id uuid.UUID, email string) error
	ChangeProfilePicture(ctx context.Context, id uuid.UUID, picture []byte) error
}
