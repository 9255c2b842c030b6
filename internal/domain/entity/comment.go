// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"

	domainerrors "checats/internal/domain/errors"
)

// CommentContentMaxLength is enforced at the boundary before persistence.
const CommentContentMaxLength = 1500

// Comment is a remark left by a user under a post.
type Comment struct {
	ID        uuid.UUID // The unique identifier for the comment, generated by the database.
	Content   string    // The comment body, at most CommentContentMaxLength characters.
	AuthorID  uuid.UUID // The user who wrote this comment.
	PostID    uuid.UUID // The post this comment belongs to.
	CreatedAt time.Time // Timestamp of when this comment was created.
	UpdatedAt time.Time // Timestamp of the last modification to this comment.
}

// ValidateCommentFields checks the comment body against the boundary rules.
func ValidateCommentFields(content string) error {
	if content == "" {
		return domainerrors.ErrValidationFailed.WithDetails("comment can not be empty")
	}
	if len(content) > CommentContentMaxLength {
		return domainerrors.ErrValidationFailed.WithDetails("comment exceeds maximum length")
	}

	return nil
}
