// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"checats/internal/domain/entity"
	domainerrors "checats/internal/domain/errors"
	"checats/internal/domain/repository"
	"checats/internal/infra/persistence/model"
)

// commentRepository implements the domain.CommentRepository interface using GORM.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

// FindByID retrieves a single comment by its unique ID.
func (repo *commentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	var commentM model.CommentModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&commentM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment by id")
	}

	return toCommentDomain(&commentM), nil
}

// FindAll retrieves every comment record.
func (repo *commentRepository) FindAll(ctx context.Context) ([]*entity.Comment, error) {
	var commentModels []*model.CommentModel
	if err := repo.db.WithContext(ctx).Find(&commentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return toCommentDomainSlice(commentModels), nil
}

// FindAllByAuthor retrieves every comment written by the given user.
func (repo *commentRepository) FindAllByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Comment, error) {
	var commentModels []*model.CommentModel
	err := repo.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Find(&commentModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments by author")
	}

	return toCommentDomainSlice(commentModels), nil
}

// FindAllByPost retrieves every comment under the given post.
func (repo *commentRepository) FindAllByPost(ctx context.Context, postID uuid.UUID) ([]*entity.Comment, error) {
	var commentModels []*model.CommentModel
	err := repo.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Find(&commentModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments by post")
	}

	return toCommentDomainSlice(commentModels), nil
}

// Create persists a new comment entity to the database.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := fromCommentDomain(comment)

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("comment author or post does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required comment information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt
	comment.UpdatedAt = commentM.UpdatedAt

	return nil
}

// UpdateContent replaces the body of an existing comment.
func (repo *commentRepository) UpdateContent(ctx context.Context, id uuid.UUID, content string) error {
	err := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Where("id = ?", id).
		Update("content", content).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update comment")
	}

	return nil
}

// Delete removes a comment by ID. Deleting an absent ID is not an error.
func (repo *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CommentModel{}).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete comment")
	}

	return nil
}

// --- Mapper Functions ---

// toCommentDomain converts a GORM CommentModel to a domain Comment entity.
func toCommentDomain(data *model.CommentModel) *entity.Comment {
	if data == nil {
		return nil
	}

	return &entity.Comment{
		ID:        data.ID,
		Content:   data.Content,
		AuthorID:  data.AuthorID,
		PostID:    data.PostID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toCommentDomainSlice(data []*model.CommentModel) []*entity.Comment {
	comments := make([]*entity.Comment, 0, len(data))
	for _, commentM := range data {
		comments = append(comments, toCommentDomain(commentM))
	}

	return comments
}

// fromCommentDomain converts a domain Comment entity to a GORM CommentModel for persistence.
func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	if data == nil {
		return nil
	}

	return &model.CommentModel{
		ID:       data.ID,
		Content:  data.Content,
		AuthorID: data.AuthorID,
		PostID:   data.PostID,
	}
}
