// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"checats/internal/domain/entity"
	domainerrors "checats/internal/domain/errors"
	"checats/internal/domain/repository"
	"checats/internal/infra/persistence/model"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// FindByUsername retrieves a single user by their login name.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&userM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindAll retrieves every user record.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel
	if err := repo.db.WithContext(ctx).Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	// Map the pure domain entity to a GORM persistence model.
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update replaces the mutable fields of an existing user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	updates := map[string]any{
		"username":        user.Username,
		"email":           user.Email,
		"password_hash":   user.PasswordHash,
		"role":            user.Role.String(),
		"profile_picture": user.ProfilePicture,
	}

	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(updates).Error

	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	return nil
}

// UpdateRole sets the role column for the given user.
func (repo *userRepository) UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error {
	return repo.updateColumn(ctx, id, "role", role.String())
}

// UpdatePasswordHash sets the stored password hash for the given user.
func (repo *userRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return repo.updateColumn(ctx, id, "password_hash", passwordHash)
}

// UpdateEmail sets the email column for the given user.
func (repo *userRepository) UpdateEmail(ctx context.Context, id uuid.UUID, email string) error {
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("email", email).Error

	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update email")
	}

	return nil
}

// UpdateProfilePicture sets the avatar blob for the given user.
func (repo *userRepository) UpdateProfilePicture(ctx context.Context, id uuid.UUID, picture []byte) error {
	return repo.updateColumn(ctx, id, "profile_picture", picture)
}

// Delete removes a user by ID. Deleting an absent ID is not an error.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserModel{}).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete user")
	}

	return nil
}

func (repo *userRepository) updateColumn(ctx context.Context, id uuid.UUID, column string, value any) error {
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update(column, value).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update "+column)
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:             data.ID,
		Username:       data.Username,
		Email:          data.Email,
		PasswordHash:   data.PasswordHash,
		Role:           entity.Role(data.Role),
		ProfilePicture: data.ProfilePicture,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:             data.ID,
		Username:       data.Username,
		Email:          data.Email,
		PasswordHash:   data.PasswordHash,
		Role:           data.Role.String(),
		ProfilePicture: data.ProfilePicture,
	}
}
