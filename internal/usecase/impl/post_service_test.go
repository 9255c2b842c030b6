package impl

import (
	"context"
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
	"checats/internal/usecase"
)

// postServiceFixtures holds all test dependencies for post service tests.
type postServiceFixtures struct {
	t         *testing.T
	service   usecase.PostUsecase
	txManager *mockRepo.MockTransactionManager
	postRepo  *mockRepo.MockPostRepository
}

func createTestPostService(t *testing.T) postServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	postRepo := mockRepo.NewMockPostRepository(t)

	service := NewPostService(PostServiceParams{
		TxManager: txManager,
		PostRepo:  postRepo,
		Logger:    newDiscardLogger(),
	})

	return postServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
		postRepo:  postRepo,
	}
}

func (fx postServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)

			return fn(factory)
		})
}

func TestPostService_CreatePost_AdminSuccess(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	adminID := uuid.New()
	postID := uuid.New()
	input := &usecase.CreatePostInput{
		AuthorID: adminID,
		Title:    "Release notes",
		Content:  "We shipped a thing.",
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		postRepo := mockRepo.NewMockPostRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewPostRepository().Return(postRepo)

		userRepo.EXPECT().FindByID(ctx, adminID).
			Return(&entity.User{ID: adminID, Role: entity.RoleAdmin}, nil)
		postRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Post")).
			Run(func(ctx context.Context, post *entity.Post) {
				post.ID = postID
			}).
			Return(nil)
	})

	post, err := fx.service.CreatePost(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, postID, post.ID)
	assert.Equal(t, "Release notes", post.Title)
	assert.Equal(t, adminID, post.AuthorID)
}

func TestPostService_CreatePost_NonAdminForbidden(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	authorID := uuid.New()
	input := &usecase.CreatePostInput{
		AuthorID: authorID,
		Title:    "Release notes",
		Content:  "We shipped a thing.",
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		postRepo := mockRepo.NewMockPostRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewPostRepository().Return(postRepo)

		userRepo.EXPECT().FindByID(ctx, authorID).
			Return(&entity.User{ID: authorID, Role: entity.RoleUser}, nil)
	})

	post, err := fx.service.CreatePost(ctx, input)

	assert.Nil(t, post)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestPostService_CreatePost_AuthorMissing(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	authorID := uuid.New()
	input := &usecase.CreatePostInput{
		AuthorID: authorID,
		Title:    "Release notes",
		Content:  "We shipped a thing.",
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		postRepo := mockRepo.NewMockPostRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewPostRepository().Return(postRepo)

		userRepo.EXPECT().FindByID(ctx, authorID).Return(nil, repository.ErrUserNotFound)
	})

	post, err := fx.service.CreatePost(ctx, input)

	assert.Nil(t, post)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestPostService_CreatePost_ValidationFailed(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	authorID := uuid.New()

	cases := []struct {
		name    string
		title   string
		content string
	}{
		{"EmptyTitle", "", "body"},
		{"TitleTooLong", strings.Repeat("t", entity.PostTitleMaxLength+1), "body"},
		{"EmptyContent", "title", ""},
		{"ContentTooLong", "title", strings.Repeat("c", entity.PostContentMaxLength+1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			post, err := fx.service.CreatePost(ctx, &usecase.CreatePostInput{
				AuthorID: authorID,
				Title:    tc.title,
				Content:  tc.content,
			})

			assert.Nil(t, post)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestPostService_GetPost_NotFound(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()

	fx.postRepo.EXPECT().FindByID(ctx, postID).Return(nil, repository.ErrPostNotFound)

	post, err := fx.service.GetPost(ctx, postID)

	assert.Nil(t, post)
	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
}

func TestPostService_GetPostByTitle_Success(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	expected := &entity.Post{ID: uuid.New(), Title: "Release notes"}

	fx.postRepo.EXPECT().FindByTitle(ctx, "Release notes").Return(expected, nil)

	post, err := fx.service.GetPostByTitle(ctx, "Release notes")

	require.NoError(t, err)
	assert.Equal(t, expected, post)
}

func TestPostService_ListUserPosts_Success(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	authorID := uuid.New()
	expected := []*entity.Post{
		{ID: uuid.New(), AuthorID: authorID},
		{ID: uuid.New(), AuthorID: authorID},
	}

	fx.postRepo.EXPECT().FindAllByAuthor(ctx, authorID).Return(expected, nil)

	posts, err := fx.service.ListUserPosts(ctx, authorID)

	require.NoError(t, err)
	assert.Equal(t, expected, posts)
}

func TestPostService_UpdatePost_Success(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		postRepo := mockRepo.NewMockPostRepository(t)
		factory.EXPECT().NewPostRepository().Return(postRepo)

		postRepo.EXPECT().FindByID(ctx, postID).Return(&entity.Post{ID: postID}, nil)
		postRepo.EXPECT().UpdateContent(ctx, postID, "new title", "new body").Return(nil)
	})

	err := fx.service.UpdatePost(ctx, postID, &usecase.UpdatePostInput{
		Title:   "new title",
		Content: "new body",
	})

	require.NoError(t, err)
}

func TestPostService_UpdatePost_NotFound(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		postRepo := mockRepo.NewMockPostRepository(t)
		factory.EXPECT().NewPostRepository().Return(postRepo)

		postRepo.EXPECT().FindByID(ctx, postID).Return(nil, repository.ErrPostNotFound)
	})

	err := fx.service.UpdatePost(ctx, postID, &usecase.UpdatePostInput{
		Title:   "new title",
		Content: "new body",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
}

func TestPostService_DeletePost_EchoesID(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()

	fx.postRepo.EXPECT().Delete(ctx, postID).Return(nil)

	deletedID, err := fx.service.DeletePost(ctx, postID)

	require.NoError(t, err)
	assert.Equal(t, postID, deletedID)
}
