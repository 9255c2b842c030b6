// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"

	domainerrors "checats/internal/domain/errors"
)

// Field limits enforced at the boundary before persistence.
const (
	PostTitleMaxLength   = 100
	PostContentMaxLength = 10000
)

// Post is an article owned by a single author. Only users holding RoleAdmin
// may create posts; the check happens at creation time against the stored
// user record, not as a standing invariant on the entity.
type Post struct {
	ID        uuid.UUID  // The unique identifier for the post, generated by the database.
	Title     string     // The post title, at most PostTitleMaxLength characters.
	Content   string     // The post body, at most PostContentMaxLength characters.
	AuthorID  uuid.UUID  // The user who owns this post.
	Comments  []*Comment // Comments under this post. Nil unless preloaded.
	CreatedAt time.Time  // Timestamp of when this post was created.
	UpdatedAt time.Time  // Timestamp of the last modification to this post.
}

// ValidatePostFields checks title and content against the boundary rules.
func ValidatePostFields(title, content string) error {
	if title == "" {
		return domainerrors.ErrValidationFailed.WithDetails("title can not be empty")
	}
	if len(title) > PostTitleMaxLength {
		return domainerrors.ErrValidationFailed.WithDetails("title exceeds maximum length")
	}
	if content == "" {
		return domainerrors.ErrValidationFailed.WithDetails("content can not be empty")
	}
	if len(content) > PostContentMaxLength {
		return domainerrors.ErrValidationFailed.WithDetails("content exceeds maximum length")
	}

	return nil
}
