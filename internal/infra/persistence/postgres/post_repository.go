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

// postRepository implements the domain.PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// FindByID retrieves a single post by its unique ID.
func (repo *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var postM model.PostModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&postM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by id")
	}

	return toPostDomain(&postM), nil
}

// FindByTitle retrieves a single post by its exact title.
func (repo *postRepository) FindByTitle(ctx context.Context, title string) (*entity.Post, error) {
	var postM model.PostModel
	err := repo.db.WithContext(ctx).
		Where("title = ?", title).
		First(&postM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by title")
	}

	return toPostDomain(&postM), nil
}

// FindAll retrieves every post record.
func (repo *postRepository) FindAll(ctx context.Context) ([]*entity.Post, error) {
	var postModels []*model.PostModel
	if err := repo.db.WithContext(ctx).Find(&postModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	posts := make([]*entity.Post, 0, len(postModels))
	for _, postM := range postModels {
		posts = append(posts, toPostDomain(postM))
	}

	return posts, nil
}

// FindAllByAuthor retrieves every post owned by the given user.
func (repo *postRepository) FindAllByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Post, error) {
	var postModels []*model.PostModel
	err := repo.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Find(&postModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts by author")
	}

	posts := make([]*entity.Post, 0, len(postModels))
	for _, postM := range postModels {
		posts = append(posts, toPostDomain(postM))
	}

	return posts, nil
}

// Create persists a new post entity to the database.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("post author does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required post information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt
	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// UpdateContent replaces the title and content of an existing post.
func (repo *postRepository) UpdateContent(ctx context.Context, id uuid.UUID, title, content string) error {
	err := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"title": title, "content": content}).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update post")
	}

	return nil
}

// Delete removes a post by ID. Deleting an absent ID is not an error.
func (repo *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PostModel{}).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete post")
	}

	return nil
}

// --- Mapper Functions ---

// toPostDomain converts a GORM PostModel to a domain Post entity.
func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	return &entity.Post{
		ID:        data.ID,
		Title:     data.Title,
		Content:   data.Content,
		AuthorID:  data.AuthorID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromPostDomain converts a domain Post entity to a GORM PostModel for persistence.
func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	return &model.PostModel{
		ID:       data.ID,
		Title:    data.Title,
		Content:  data.Content,
		AuthorID: data.AuthorID,
	}
}
