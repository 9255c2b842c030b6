// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"checats/internal/domain/entity"
)

// CreatePostInput defines the data required to publish a new post.
type CreatePostInput struct {
	AuthorID uuid.UUID
	Title    string
	Content  string
}

// UpdatePostInput defines the data for replacing a post's title and body.
type UpdatePostInput struct {
	Title   string
	Content string
}

// PostUsecase defines the interface for post-related business operations.
// Publishing is restricted to admin users; the role is checked against the
// stored user record at creation time.
type PostUsecase interface {
	CreatePost(ctx context.Context, input *CreatePostInput) (*entity.Post, error)

	GetPost(ctx context.Context, id uuid.UUID) (*entity.Post, error)
	GetPostByTitle(ctx context.Context, title string) (*entity.Post, error)
	ListPosts(ctx context.Context) ([]*entity.Post, error)
	ListUserPosts(ctx context.Context, authorID uuid.UUID) ([]*entity.Post, error)

	UpdatePost(ctx context.Context, id uuid.UUID, input *UpdatePostInput) error

	// DeletePost removes the post and its comments. Deleting an absent ID is
	// not an error; the ID is echoed back either way.
	DeletePost(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
}
