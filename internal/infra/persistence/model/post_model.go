package model

import (
	"time"

	"github.com/google/uuid"
)

// PostModel mirrors the 'posts' table. AuthorID references users.id.
type PostModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title     string    `gorm:"type:varchar(100);not null"`
	Content   string    `gorm:"type:varchar(10000);not null"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Comments []*CommentModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
