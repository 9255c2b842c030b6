package model

import (
	"time"

	"github.com/google/uuid"
)

// CommentModel mirrors the 'comments' table. AuthorID references users.id and
// PostID references posts.id.
type CommentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Content   string    `gorm:"type:varchar(1500);not null"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;index"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}
