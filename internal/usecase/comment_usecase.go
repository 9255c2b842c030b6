// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"checats/internal/domain/entity"
)

// CreateCommentInput defines the data required to attach a comment to a post.
type CreateCommentInput struct {
	AuthorID uuid.UUID
	PostID   uuid.UUID
	Content  string
}

// CommentUsecase defines the interface for comment-related business operations.
type CommentUsecase interface {
	CreateComment(ctx context.Context, input *CreateCommentInput) (*entity.Comment, error)

	GetComment(ctx context.Context, id uuid.UUID) (*entity.Comment, error)
	ListComments(ctx context.Context) ([]*entity.Comment, error)
	ListUserComments(ctx context.Context, authorID uuid.UUID) ([]*entity.Comment, error)
	ListPostComments(ctx context.Context, postID uuid.UUID) ([]*entity.Comment, error)

	UpdateComment(ctx context.Context, id uuid.UUID, content string) error

	// DeleteComment removes the comment. Deleting an absent ID is not an
	// error; the ID is echoed back either way.
	DeleteComment(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
}
