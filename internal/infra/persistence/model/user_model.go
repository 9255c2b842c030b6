// Package model holds the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates the UUID keys.
// Username and email carry unique constraints; the role column defaults to 'user'.
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username       string    `gorm:"type:varchar(30);unique;not null"`
	Email          string    `gorm:"type:varchar(40);unique;not null"`
	PasswordHash   string    `gorm:"type:varchar(255);not null"`
	Role           string    `gorm:"type:varchar(20);not null;default:user"`
	ProfilePicture []byte    `gorm:"type:bytea"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Deleting a user removes their posts and comments.
	Posts    []*PostModel    `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Comments []*CommentModel `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
