// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "checats/internal/delivery/context"
	"checats/internal/domain/entity"
	domainerrors "checats/internal/domain/errors"
	"checats/internal/domain/repository"
	"checats/internal/domain/service"
	"checats/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete user registration process.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	if err := entity.ValidateUserFields(input.Username, input.Email, input.Password); err != nil {
		srv.log(ctx).Warn("Registration validation failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	// Hash outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleUser,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if err := srv.checkUsernameAvailable(ctx, userRepo, input.Username); err != nil {
			return err
		}
		if err := srv.checkEmailAvailable(ctx, userRepo, input.Email, uuid.Nil); err != nil {
			return err
		}

		return userRepo.Create(ctx, newUser)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute registration transaction", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// checkUsernameAvailable returns a conflict error when the username is taken.
// The storage unique constraint still backstops races between check and insert.
func (srv *userService) checkUsernameAvailable(ctx context.Context, userRepo repository.UserRepository, username string) error {
	_, err := userRepo.FindByUsername(ctx, username)
	if err == nil {
		return domainerrors.ErrUserAlreadyExists.WrapMessage("username already taken")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check username availability")
	}

	return nil
}

// checkEmailAvailable returns a conflict error when the email belongs to a
// different user than selfID. Pass uuid.Nil when registering a new account.
func (srv *userService) checkEmailAvailable(ctx context.Context, userRepo repository.UserRepository, email string, selfID uuid.UUID) error {
	owner, err := userRepo.FindByEmail(ctx, email)
	if err == nil {
		if owner.ID == selfID {
			return nil
		}

		return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check email availability")
	}

	return nil
}

// Login orchestrates the user login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("username", input.Username))

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token during login", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{Token: token, User: user}, nil
}

// GetUser retrieves a single user by ID.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "get user")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// GetUserByName retrieves a single user by their login name.
func (srv *userService) GetUserByName(ctx context.Context, username string) (*entity.User, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "get user by name")
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return user, nil
}

// GetUserByEmail retrieves a single user by their email address.
func (srv *userService) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "get user by email")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return user, nil
}

// ListUsers retrieves every user record.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// UpdateUser performs a full replace of the user's mutable fields.
// The supplied password is re-hashed before persistence.
func (srv *userService) UpdateUser(ctx context.Context, id uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating user", slog.Any("userID", id))

	if err := entity.ValidateUserFields(input.Username, input.Email, input.Password); err != nil {
		return nil, err
	}
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during update", slog.Any("userID", id), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during update")
	}

	var updatedUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		existing, findErr := userRepo.FindByID(ctx, id)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "update user")
			}

			return errors.Wrap(findErr, "failed to find user by id")
		}

		if input.Username != existing.Username {
			if checkErr := srv.checkUsernameAvailable(ctx, userRepo, input.Username); checkErr != nil {
				return checkErr
			}
		}
		if input.Email != existing.Email {
			if checkErr := srv.checkEmailAvailable(ctx, userRepo, input.Email, id); checkErr != nil {
				return checkErr
			}
		}

		existing.Username = input.Username
		existing.Email = input.Email
		existing.PasswordHash = hashedPassword
		existing.Role = input.Role
		existing.ProfilePicture = input.ProfilePicture

		if updateErr := userRepo.Update(ctx, existing); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update user")
		}
		updatedUser = existing

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute user update transaction", slog.Any("userID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user update transaction")
	}

	return updatedUser, nil
}

// DeleteUser removes a user. The database cascades to their posts and
// comments. Deleting an absent ID succeeds and still echoes the ID back.
func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	srv.log(ctx).Info("Deleting user", slog.Any("userID", id))

	// Single operation - use direct repository instance
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		srv.log(ctx).Error("Failed to delete user", slog.Any("userID", id), slog.Any("error", err))

		return uuid.Nil, errors.Wrap(err, "failed to delete user")
	}

	return id, nil
}

// ChangeRole sets the user's permission tier.
func (srv *userService) ChangeRole(ctx context.Context, id uuid.UUID, role entity.Role) error {
	srv.log(ctx).Info("Changing user role", slog.Any("userID", id), slog.Any("role", role))

	if !role.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown role")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if _, findErr := userRepo.FindByID(ctx, id); findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "change role")
			}

			return errors.Wrap(findErr, "failed to find user by id")
		}

		return userRepo.UpdateRole(ctx, id, role)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute role change transaction", slog.Any("userID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute role change transaction")
	}

	return nil
}

// ChangePassword replaces the user's password after verifying the old one.
func (srv *userService) ChangePassword(ctx context.Context, id uuid.UUID, input *usecase.ChangePasswordInput) error {
	srv.log(ctx).Info("Changing user password", slog.Any("userID", id))

	if input.NewPassword == "" {
		return domainerrors.ErrValidationFailed.WithDetails("password can not be empty")
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "change password")
		}

		return errors.Wrap(err, "failed to find user by id")
	}

	if !srv.hasher.Check(input.OldPassword, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch during password change", slog.Any("userID", id))

		return errors.Wrap(domainerrors.ErrInvalidCredentials, "old password mismatch")
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during password change", slog.Any("userID", id), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash new password")
	}

	if err := srv.userRepo.UpdatePasswordHash(ctx, id, hashedPassword); err != nil {
		srv.log(ctx).Error("Failed to store new password hash", slog.Any("userID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to store new password hash")
	}

	return nil
}

// ChangeEmail replaces the user's email address.
func (srv *userService) ChangeEmail(ctx context.Context, id uuid.UUID, email string) error {
	srv.log(ctx).Info("Changing user email", slog.Any("userID", id))

	if err := entity.ValidateEmail(email); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if _, findErr := userRepo.FindByID(ctx, id); findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "change email")
			}

			return errors.Wrap(findErr, "failed to find user by id")
		}

		if checkErr := srv.checkEmailAvailable(ctx, userRepo, email, id); checkErr != nil {
			return checkErr
		}

		return userRepo.UpdateEmail(ctx, id, email)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute email change transaction", slog.Any("userID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute email change transaction")
	}

	return nil
}

// ChangeProfilePicture stores a new avatar blob for the user.
func (srv *userService) ChangeProfilePicture(ctx context.Context, id uuid.UUID, picture []byte) error {
	srv.log(ctx).Info("Changing profile picture", slog.Any("userID", id))

	if _, err := srv.userRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "change profile picture")
		}

		return errors.Wrap(err, "failed to find user by id")
	}

	if err := srv.userRepo.UpdateProfilePicture(ctx, id, picture); err != nil {
		srv.log(ctx).Error("Failed to store profile picture", slog.Any("userID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to store profile picture")
	}

	return nil
}
