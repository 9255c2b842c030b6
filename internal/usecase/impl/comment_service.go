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
	"checats/internal/usecase"
)

// commentService implements the CommentUsecase interface.
type commentService struct {
	txManager   repository.TransactionManager
	commentRepo repository.CommentRepository
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for CommentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CommentRepo repository.CommentRepository
	Logger      *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		txManager:   params.TxManager,
		commentRepo: params.CommentRepo,
		logger:      params.Logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateComment attaches a new comment to a post. Author and post must both
// exist; both are verified inside the same transaction as the insert.
func (srv *commentService) CreateComment(ctx context.Context, input *usecase.CreateCommentInput) (*entity.Comment, error) {
	srv.log(ctx).Info("Creating comment", slog.Any("authorID", input.AuthorID), slog.Any("postID", input.PostID))

	if err := entity.ValidateCommentFields(input.Content); err != nil {
		srv.log(ctx).Warn("Comment validation failed", slog.Any("authorID", input.AuthorID), slog.Any("error", err))

		return nil, err
	}

	newComment := &entity.Comment{
		Content:  input.Content,
		AuthorID: input.AuthorID,
		PostID:   input.PostID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		postRepo := repoFactory.NewPostRepository()
		commentRepo := repoFactory.NewCommentRepository()

		if _, findErr := userRepo.FindByID(ctx, input.AuthorID); findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "comment author does not exist")
			}

			return errors.Wrap(findErr, "failed to find comment author")
		}

		if _, findErr := postRepo.FindByID(ctx, input.PostID); findErr != nil {
			if errors.Is(findErr, repository.ErrPostNotFound) {
				return errors.Wrap(domainerrors.ErrPostNotFound, "commented post does not exist")
			}

			return errors.Wrap(findErr, "failed to find commented post")
		}

		return commentRepo.Create(ctx, newComment)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute comment creation transaction", slog.Any("authorID", input.AuthorID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute comment creation transaction")
	}

	srv.log(ctx).Debug("Comment created", slog.Any("commentID", newComment.ID))

	return newComment, nil
}

// GetComment retrieves a single comment by ID.
func (srv *commentService) GetComment(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	comment, err := srv.commentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCommentNotFound, "get comment")
		}

		return nil, errors.Wrap(err, "failed to find comment by id")
	}

	return comment, nil
}

// ListComments retrieves every comment record.
func (srv *commentService) ListComments(ctx context.Context) ([]*entity.Comment, error) {
	comments, err := srv.commentRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list comments", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list comments")
	}

	return comments, nil
}

// ListUserComments retrieves every comment written by the given author.
func (srv *commentService) ListUserComments(ctx context.Context, authorID uuid.UUID) ([]*entity.Comment, error) {
	comments, err := srv.commentRepo.FindAllByAuthor(ctx, authorID)
	if err != nil {
		srv.log(ctx).Error("Failed to list comments by author", slog.Any("authorID", authorID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list comments by author")
	}

	return comments, nil
}

// ListPostComments retrieves every comment under the given post.
func (srv *commentService) ListPostComments(ctx context.Context, postID uuid.UUID) ([]*entity.Comment, error) {
	comments, err := srv.commentRepo.FindAllByPost(ctx, postID)
	if err != nil {
		srv.log(ctx).Error("Failed to list comments by post", slog.Any("postID", postID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list comments by post")
	}

	return comments, nil
}

// UpdateComment replaces the body of an existing comment.
func (srv *commentService) UpdateComment(ctx context.Context, id uuid.UUID, content string) error {
	srv.log(ctx).Info("Updating comment", slog.Any("commentID", id))

	if err := entity.ValidateCommentFields(content); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		commentRepo := repoFactory.NewCommentRepository()

		if _, findErr := commentRepo.FindByID(ctx, id); findErr != nil {
			if errors.Is(findErr, repository.ErrCommentNotFound) {
				return errors.Wrap(domainerrors.ErrCommentNotFound, "update comment")
			}

			return errors.Wrap(findErr, "failed to find comment by id")
		}

		return commentRepo.UpdateContent(ctx, id, content)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute comment update transaction", slog.Any("commentID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute comment update transaction")
	}

	return nil
}

// DeleteComment removes a comment. Deleting an absent ID succeeds and still
// echoes the ID back.
func (srv *commentService) DeleteComment(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	srv.log(ctx).Info("Deleting comment", slog.Any("commentID", id))

	// Single operation - use direct repository instance
	if err := srv.commentRepo.Delete(ctx, id); err != nil {
		srv.log(ctx).Error("Failed to delete comment", slog.Any("commentID", id), slog.Any("error", err))

		return uuid.Nil, errors.Wrap(err, "failed to delete comment")
	}

	return id, nil
}
