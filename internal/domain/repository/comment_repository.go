// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"checats/internal/domain/entity"
)

// ErrCommentNotFound is a domain-specific error returned when a comment is not found.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository defines the standard operations for comment persistence.
type CommentRepository interface {
	// FindByID retrieves a single comment by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)

	// FindAll retrieves every comment record.
	FindAll(ctx context.Context) ([]*entity.Comment, error)

	// FindAllByAuthor retrieves every comment written by the given user.
	FindAllByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Comment, error)

	// FindAllByPost retrieves every comment under the given post.
	FindAllByPost(ctx context.Context, postID uuid.UUID) ([]*entity.Comment, error)

	// Create persists a new comment entity to the storage.
	Create(ctx context.Context, comment *entity.Comment) error

	// UpdateContent replaces the body of an existing comment.
	UpdateContent(ctx context.Context, id uuid.UUID, content string) error

	// Delete removes a comment by ID. Deleting an absent ID is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
