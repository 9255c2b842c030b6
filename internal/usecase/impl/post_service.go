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

// postService implements the PostUsecase interface.
type postService struct {
	txManager repository.TransactionManager
	postRepo  repository.PostRepository
	logger    *slog.Logger
}

// PostServiceParams holds dependencies for PostService, injected by Fx.
type PostServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	PostRepo  repository.PostRepository
	Logger    *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		txManager: params.TxManager,
		postRepo:  params.PostRepo,
		logger:    params.Logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePost publishes a new post. Only admin users may publish; the role is
// read from the stored user record inside the same transaction as the insert.
func (srv *postService) CreatePost(ctx context.Context, input *usecase.CreatePostInput) (*entity.Post, error) {
	srv.log(ctx).Info("Creating post", slog.Any("authorID", input.AuthorID))

	if err := entity.ValidatePostFields(input.Title, input.Content); err != nil {
		srv.log(ctx).Warn("Post validation failed", slog.Any("authorID", input.AuthorID), slog.Any("error", err))

		return nil, err
	}

	newPost := &entity.Post{
		Title:    input.Title,
		Content:  input.Content,
		AuthorID: input.AuthorID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		postRepo := repoFactory.NewPostRepository()

		author, findErr := userRepo.FindByID(ctx, input.AuthorID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "post author does not exist")
			}

			return errors.Wrap(findErr, "failed to find post author")
		}

		if author.Role != entity.RoleAdmin {
			return errors.Wrap(domainerrors.ErrForbidden, "only admins can publish posts")
		}

		return postRepo.Create(ctx, newPost)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute post creation transaction", slog.Any("authorID", input.AuthorID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute post creation transaction")
	}

	srv.log(ctx).Debug("Post created", slog.Any("postID", newPost.ID))

	return newPost, nil
}

// GetPost retrieves a single post by ID.
func (srv *postService) GetPost(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	post, err := srv.postRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPostNotFound, "get post")
		}

		return nil, errors.Wrap(err, "failed to find post by id")
	}

	return post, nil
}

// GetPostByTitle retrieves the first post carrying the exact title.
func (srv *postService) GetPostByTitle(ctx context.Context, title string) (*entity.Post, error) {
	post, err := srv.postRepo.FindByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPostNotFound, "get post by title")
		}

		return nil, errors.Wrap(err, "failed to find post by title")
	}

	return post, nil
}

// ListPosts retrieves every post record.
func (srv *postService) ListPosts(ctx context.Context) ([]*entity.Post, error) {
	posts, err := srv.postRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list posts", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list posts")
	}

	return posts, nil
}

// ListUserPosts retrieves every post written by the given author.
func (srv *postService) ListUserPosts(ctx context.Context, authorID uuid.UUID) ([]*entity.Post, error) {
	posts, err := srv.postRepo.FindAllByAuthor(ctx, authorID)
	if err != nil {
		srv.log(ctx).Error("Failed to list posts by author", slog.Any("authorID", authorID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list posts by author")
	}

	return posts, nil
}

// UpdatePost replaces the title and body of an existing post.
func (srv *postService) UpdatePost(ctx context.Context, id uuid.UUID, input *usecase.UpdatePostInput) error {
	srv.log(ctx).Info("Updating post", slog.Any("postID", id))

	if err := entity.ValidatePostFields(input.Title, input.Content); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.NewPostRepository()

		if _, findErr := postRepo.FindByID(ctx, id); findErr != nil {
			if errors.Is(findErr, repository.ErrPostNotFound) {
				return errors.Wrap(domainerrors.ErrPostNotFound, "update post")
			}

			return errors.Wrap(findErr, "failed to find post by id")
		}

		return postRepo.UpdateContent(ctx, id, input.Title, input.Content)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute post update transaction", slog.Any("postID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute post update transaction")
	}

	return nil
}

// DeletePost removes a post. The database cascades to its comments. Deleting
// an absent ID succeeds and still echoes the ID back.
func (srv *postService) DeletePost(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	srv.log(ctx).Info("Deleting post", slog.Any("postID", id))

	// Single operation - use direct repository instance
	if err := srv.postRepo.Delete(ctx, id); err != nil {
		srv.log(ctx).Error("Failed to delete post", slog.Any("postID", id), slog.Any("error", err))

		return uuid.Nil, errors.Wrap(err, "failed to delete post")
	}

	return id, nil
}
