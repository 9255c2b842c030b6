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

// commentServiceFixtures holds all test dependencies for comment service tests.
type commentServiceFixtures struct {
	t           *testing.T
	service     usecase.CommentUsecase
	txManager   *mockRepo.MockTransactionManager
	commentRepo *mockRepo.MockCommentRepository
}

func createTestCommentService(t *testing.T) commentServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	commentRepo := mockRepo.NewMockCommentRepository(t)

	service := NewCommentService(CommentServiceParams{
		TxManager:   txManager,
		CommentRepo: commentRepo,
		Logger:      newDiscardLogger(),
	})

	return commentServiceFixtures{
		t:           t,
		service:     service,
		txManager:   txManager,
		commentRepo: commentRepo,
	}
}

func (fx commentServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)

			return fn(factory)
		})
}

func TestCommentService_CreateComment_Success(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	authorID := uuid.New()
	postID := uuid.New()
	commentID := uuid.New()
	input := &usecase.CreateCommentInput{
		AuthorID: authorID,
		PostID:   postID,
		Content:  "nice post",
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		postRepo := mockRepo.NewMockPostRepository(t)
		commentRepo := mockRepo.NewMockCommentRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewPostRepository().Return(postRepo)
		factory.EXPECT().NewCommentRepository().Return(commentRepo)

		userRepo.EXPECT().FindByID(ctx, authorID).Return(&entity.User{ID: authorID}, nil)
		postRepo.EXPECT().FindByID(ctx, postID).Return(&entity.Post{ID: postID}, nil)
		commentRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Comment")).
			Run(func(ctx context.Context, comment *entity.Comment) {
				comment.ID = commentID
			}).
			Return(nil)
	})

	comment, err := fx.service.CreateComment(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, commentID, comment.ID)
	assert.Equal(t, authorID, comment.AuthorID)
	assert.Equal(t, postID, comment.PostID)
}

func TestCommentService_CreateComment_PostMissing(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	authorID := uuid.New()
	postID := uuid.New()
	input := &usecase.CreateCommentInput{
		AuthorID: authorID,
		PostID:   postID,
		Content:  "nice post",
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		postRepo := mockRepo.NewMockPostRepository(t)
		commentRepo := mockRepo.NewMockCommentRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewPostRepository().Return(postRepo)
		factory.EXPECT().NewCommentRepository().Return(commentRepo)

		userRepo.EXPECT().FindByID(ctx, authorID).Return(&entity.User{ID: authorID}, nil)
		postRepo.EXPECT().FindByID(ctx, postID).Return(nil, repository.ErrPostNotFound)
	})

	comment, err := fx.service.CreateComment(ctx, input)

	assert.Nil(t, comment)
	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
}

func TestCommentService_CreateComment_AuthorMissing(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	authorID := uuid.New()
	input := &usecase.CreateCommentInput{
		AuthorID: authorID,
		PostID:   uuid.New(),
		Content:  "nice post",
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		postRepo := mockRepo.NewMockPostRepository(t)
		commentRepo := mockRepo.NewMockCommentRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		factory.EXPECT().NewPostRepository().Return(postRepo)
		factory.EXPECT().NewCommentRepository().Return(commentRepo)

		userRepo.EXPECT().FindByID(ctx, authorID).Return(nil, repository.ErrUserNotFound)
	})

	comment, err := fx.service.CreateComment(ctx, input)

	assert.Nil(t, comment)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestCommentService_CreateComment_ValidationFailed(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()

	cases := []struct {
		name    string
		content string
	}{
		{"Empty", ""},
		{"TooLong", strings.Repeat("c", entity.CommentContentMaxLength+1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			comment, err := fx.service.CreateComment(ctx, &usecase.CreateCommentInput{
				AuthorID: uuid.New(),
				PostID:   uuid.New(),
				Content:  tc.content,
			})

			assert.Nil(t, comment)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestCommentService_GetComment_NotFound(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	commentID := uuid.New()

	fx.commentRepo.EXPECT().FindByID(ctx, commentID).Return(nil, repository.ErrCommentNotFound)

	comment, err := fx.service.GetComment(ctx, commentID)

	assert.Nil(t, comment)
	assert.True(t, errors.Is(err, domainerrors.ErrCommentNotFound))
}

func TestCommentService_ListPostComments_Success(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	postID := uuid.New()
	expected := []*entity.Comment{
		{ID: uuid.New(), PostID: postID},
		{ID: uuid.New(), PostID: postID},
	}

	fx.commentRepo.EXPECT().FindAllByPost(ctx, postID).Return(expected, nil)

	comments, err := fx.service.ListPostComments(ctx, postID)

	require.NoError(t, err)
	assert.Equal(t, expected, comments)
}

func TestCommentService_UpdateComment_NotFound(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	commentID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		commentRepo := mockRepo.NewMockCommentRepository(t)
		factory.EXPECT().NewCommentRepository().Return(commentRepo)

		commentRepo.EXPECT().FindByID(ctx, commentID).Return(nil, repository.ErrCommentNotFound)
	})

	err := fx.service.UpdateComment(ctx, commentID, "edited")

	assert.True(t, errors.Is(err, domainerrors.ErrCommentNotFound))
}

func TestCommentService_DeleteComment_EchoesID(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	commentID := uuid.New()

	fx.commentRepo.EXPECT().Delete(ctx, commentID).Return(nil)

	deletedID, err := fx.service.DeleteComment(ctx, commentID)

	require.NoError(t, err)
	assert.Equal(t, commentID, deletedID)
}
