// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"checats/internal/domain/entity"
)

// ErrPostNotFound is a domain-specific error returned when a post is not found.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines the standard operations for post persistence.
type PostRepository interface {
	// FindByID retrieves a single post by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// FindByTitle retrieves a single post by its exact title.
	FindByTitle(ctx context.Context, title string) (*entity.Post, error)

	// FindAll retrieves every post record.
	FindAll(ctx context.Context) ([]*entity.Post, error)

	// FindAllByAuthor retrieves every post owned by the given user.
	FindAllByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Post, error)

	// Create persists a new post entity to the storage.
	Create(ctx context.Context, post *entity.Post) error

	// UpdateContent replaces the title and content of an existing post.
	UpdateContent(ctx context.Context, id uuid.UUID, title, content string) error

	// Delete removes a post by ID. Deleting an absent ID is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
