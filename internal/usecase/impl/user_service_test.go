package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"checats/internal/domain/entity"
	domainerrors "checats/internal/domain/errors"
	"checats/internal/domain/repository"
	mockRepo "checats/internal/mocks/repository"
	mockService "checats/internal/mocks/service"
	"checats/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	t            *testing.T
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		t:            t,
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// onExecute wires the transaction manager mock to run the transactional
// closure against a factory prepared by setup, propagating the closure's error.
func (fx userServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)

			return fn(factory)
		})
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Secret123",
	}

	fx.hasher.EXPECT().Hash("Secret123").Return("$2a$10$hash", nil)

	newID := uuid.New()
	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)

		userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, repository.ErrUserNotFound)
		userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(nil, repository.ErrUserNotFound)
		userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) {
				user.ID = newID
			}).
			Return(nil)
	})

	out, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, newID, out.User.ID)
	assert.Equal(t, "alice", out.User.Username)
	assert.Equal(t, entity.RoleUser, out.User.Role)
	assert.Equal(t, "$2a$10$hash", out.User.PasswordHash)
}

func TestUserService_Register_UsernameTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Secret123",
	}

	fx.hasher.EXPECT().Hash("Secret123").Return("$2a$10$hash", nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)

		userRepo.EXPECT().FindByUsername(ctx, "alice").
			Return(&entity.User{ID: uuid.New(), Username: "alice"}, nil)
	})

	out, err := fx.service.Register(ctx, input)

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Email:    "taken@example.com",
		Password: "Secret123",
	}

	fx.hasher.EXPECT().Hash("Secret123").Return("$2a$10$hash", nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)

		userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, repository.ErrUserNotFound)
		userRepo.EXPECT().FindByEmail(ctx, "taken@example.com").
			Return(&entity.User{ID: uuid.New(), Email: "taken@example.com"}, nil)
	})

	out, err := fx.service.Register(ctx, input)

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Register_ValidationFailed(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	cases := []struct {
		name  string
		input *usecase.RegisterInput
	}{
		{"EmptyUsername", &usecase.RegisterInput{Username: "", Email: "a@example.com", Password: "pw"}},
		{"UsernameTooLong", &usecase.RegisterInput{Username: strings.Repeat("a", entity.UsernameMaxLength+1), Email: "a@example.com", Password: "pw"}},
		{"BadEmail", &usecase.RegisterInput{Username: "alice", Email: "not-an-address", Password: "pw"}},
		{"EmptyPassword", &usecase.RegisterInput{Username: "alice", Email: "a@example.com", Password: ""}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := fx.service.Register(ctx, tc.input)

			assert.Nil(t, out)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	storedUser := &entity.User{
		ID:           userID,
		Username:     "alice",
		PasswordHash: "$2a$10$stored",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(storedUser, nil)
	fx.hasher.EXPECT().Check("Secret123", "$2a$10$stored").Return(true)
	fx.tokenService.EXPECT().Issue(userID).Return("signed.jwt.token", nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "Secret123"})

	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, storedUser, out.User)
}

func TestUserService_Login_UnknownUsername(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "whatever"})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	storedUser := &entity.User{
		ID:           uuid.New(),
		Username:     "alice",
		PasswordHash: "$2a$10$stored",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(storedUser, nil)
	fx.hasher.EXPECT().Check("wrong", "$2a$10$stored").Return(false)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "wrong"})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetUser(ctx, userID)

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_ListUsers_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	expected := []*entity.User{
		{ID: uuid.New(), Username: "alice"},
		{ID: uuid.New(), Username: "bob"},
	}

	fx.userRepo.EXPECT().FindAll(ctx).Return(expected, nil)

	users, err := fx.service.ListUsers(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, users)
}

func TestUserService_UpdateUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.UpdateUserInput{
		Username: "alice2",
		Email:    "alice2@example.com",
		Password: "NewSecret",
		Role:     entity.RoleAdmin,
	}

	existing := &entity.User{
		ID:       userID,
		Username: "alice",
		Email:    "alice@example.com",
		Role:     entity.RoleUser,
	}

	fx.hasher.EXPECT().Hash("NewSecret").Return("$2a$10$new", nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)

		userRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)
		userRepo.EXPECT().FindByUsername(ctx, "alice2").Return(nil, repository.ErrUserNotFound)
		userRepo.EXPECT().FindByEmail(ctx, "alice2@example.com").Return(nil, repository.ErrUserNotFound)
		userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	})

	updated, err := fx.service.UpdateUser(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)
	assert.Equal(t, entity.RoleAdmin, updated.Role)
	assert.Equal(t, "$2a$10$new", updated.PasswordHash)
}

func TestUserService_DeleteUser_EchoesID(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().Delete(ctx, userID).Return(nil)

	deletedID, err := fx.service.DeleteUser(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, userID, deletedID)
}

func TestUserService_ChangeRole_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)

		userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Role: entity.RoleUser}, nil)
		userRepo.EXPECT().UpdateRole(ctx, userID, entity.RoleAdmin).Return(nil)
	})

	err := fx.service.ChangeRole(ctx, userID, entity.RoleAdmin)

	require.NoError(t, err)
}

func TestUserService_ChangeRole_InvalidRole(t *testing.T) {
	fx := createTestUserService(t)

	err := fx.service.ChangeRole(context.Background(), uuid.New(), entity.Role("owner"))

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_ChangePassword_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	storedUser := &entity.User{ID: userID, PasswordHash: "$2a$10$old"}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(storedUser, nil)
	fx.hasher.EXPECT().Check("oldpw", "$2a$10$old").Return(true)
	fx.hasher.EXPECT().Hash("newpw").Return("$2a$10$new", nil)
	fx.userRepo.EXPECT().UpdatePasswordHash(ctx, userID, "$2a$10$new").Return(nil)

	err := fx.service.ChangePassword(ctx, userID, &usecase.ChangePasswordInput{
		OldPassword: "oldpw",
		NewPassword: "newpw",
	})

	require.NoError(t, err)
}

func TestUserService_ChangePassword_OldMismatch(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	storedUser := &entity.User{ID: userID, PasswordHash: "$2a$10$old"}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(storedUser, nil)
	fx.hasher.EXPECT().Check("wrong", "$2a$10$old").Return(false)

	err := fx.service.ChangePassword(ctx, userID, &usecase.ChangePasswordInput{
		OldPassword: "wrong",
		NewPassword: "newpw",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_ChangeEmail_Conflict(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)

		userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		userRepo.EXPECT().FindByEmail(ctx, "taken@example.com").
			Return(&entity.User{ID: uuid.New(), Email: "taken@example.com"}, nil)
	})

	err := fx.service.ChangeEmail(ctx, userID, "taken@example.com")

	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_ChangeEmail_SameOwnerNoConflict(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)

		userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		userRepo.EXPECT().FindByEmail(ctx, "mine@example.com").
			Return(&entity.User{ID: userID, Email: "mine@example.com"}, nil)
		userRepo.EXPECT().UpdateEmail(ctx, userID, "mine@example.com").Return(nil)
	})

	err := fx.service.ChangeEmail(ctx, userID, "mine@example.com")

	require.NoError(t, err)
}

func TestUserService_ChangeProfilePicture_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	err := fx.service.ChangeProfilePicture(ctx, userID, []byte{0x89, 0x50})

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
