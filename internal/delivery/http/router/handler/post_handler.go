package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "checats/internal/delivery/context"
	"checats/internal/delivery/http/response"
	"checats/internal/domain/entity"
	"checats/internal/usecase"
)

// PostHandler holds dependencies for post-related handlers.
type PostHandler struct {
	uc     usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler, injected by Fx.
func NewPostHandler(uc usecase.PostUsecase, logger *slog.Logger) *PostHandler {
	return &PostHandler{uc: uc, logger: logger}
}

type postView struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  uuid.UUID `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toPostView(post *entity.Post) postView {
	return postView{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		AuthorID:  post.AuthorID,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

func toPostViews(posts []*entity.Post) []postView {
	views := make([]postView, 0, len(posts))
	for _, post := range posts {
		views = append(views, toPostView(post))
	}

	return views
}

type createPostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// CreatePost handles publishing a new post. The author is the authenticated
// user from the request token, never a field of the payload.
func (h *PostHandler) CreatePost(c echo.Context) error {
	authorID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_MISSING", "Authentication required")
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	post, err := h.uc.CreatePost(c.Request().Context(), &usecase.CreatePostInput{
		AuthorID: authorID,
		Title:    req.Title,
		Content:  req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPostView(post), "Post created successfully")
}

// GetPost handles fetching a single post by ID.
func (h *PostHandler) GetPost(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid post id")
	}

	post, err := h.uc.GetPost(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPostView(post), "")
}

// GetPostByTitle handles fetching a single post by its exact title.
func (h *PostHandler) GetPostByTitle(c echo.Context) error {
	post, err := h.uc.GetPostByTitle(c.Request().Context(), c.Param("title"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPostView(post), "")
}

// ListPosts handles listing every post.
func (h *PostHandler) ListPosts(c echo.Context) error {
	posts, err := h.uc.ListPosts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPostViews(posts), "")
}

// ListUserPosts handles listing all posts owned by one author.
func (h *PostHandler) ListUserPosts(c echo.Context) error {
	authorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user id")
	}

	posts, err := h.uc.ListUserPosts(c.Request().Context(), authorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPostViews(posts), "")
}

type updatePostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// UpdatePost handles replacing a post's title and body.
func (h *PostHandler) UpdatePost(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid post id")
	}

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdatePost(c.Request().Context(), id, &usecase.UpdatePostInput{
		Title:   req.Title,
		Content: req.Content,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Post updated successfully")
}

// DeletePost handles removing a post. The deleted ID is echoed back even when
// nothing existed under it.
func (h *PostHandler) DeletePost(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid post id")
	}

	deletedID, err := h.uc.DeletePost(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": deletedID.String()}, "Post deleted successfully")
}
