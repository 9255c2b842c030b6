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

// CommentHandler holds dependencies for comment-related handlers.
type CommentHandler struct {
	uc     usecase.CommentUsecase
	logger *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler, injected by Fx.
func NewCommentHandler(uc usecase.CommentUsecase, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{uc: uc, logger: logger}
}

type commentView struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	AuthorID  uuid.UUID `json:"authorId"`
	PostID    uuid.UUID `json:"postId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toCommentView(comment *entity.Comment) commentView {
	return commentView{
		ID:        comment.ID,
		Content:   comment.Content,
		AuthorID:  comment.AuthorID,
		PostID:    comment.PostID,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}

func toCommentViews(comments []*entity.Comment) []commentView {
	views := make([]commentView, 0, len(comments))
	for _, comment := range comments {
		views = append(views, toCommentView(comment))
	}

	return views
}

type createCommentRequest struct {
	PostID  string `json:"postId" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// CreateComment handles attaching a comment to a post. The author is the
// authenticated user from the request token.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	authorID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_MISSING", "Authentication required")
	}

	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	postID, err := uuid.Parse(req.PostID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid post id")
	}

	comment, err := h.uc.CreateComment(c.Request().Context(), &usecase.CreateCommentInput{
		AuthorID: authorID,
		PostID:   postID,
		Content:  req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCommentView(comment), "Comment created successfully")
}

// GetComment handles fetching a single comment by ID.
func (h *CommentHandler) GetComment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid comment id")
	}

	comment, err := h.uc.GetComment(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCommentView(comment), "")
}

// ListComments handles listing every comment.
func (h *CommentHandler) ListComments(c echo.Context) error {
	comments, err := h.uc.ListComments(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCommentViews(comments), "")
}

// ListUserComments handles listing all comments written by one author.
func (h *CommentHandler) ListUserComments(c echo.Context) error {
	authorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user id")
	}

	comments, err := h.uc.ListUserComments(c.Request().Context(), authorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCommentViews(comments), "")
}

// ListPostComments handles listing all comments under one post.
func (h *CommentHandler) ListPostComments(c echo.Context) error {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid post id")
	}

	comments, err := h.uc.ListPostComments(c.Request().Context(), postID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCommentViews(comments), "")
}

type updateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// UpdateComment handles replacing a comment's text.
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid comment id")
	}

	var req updateCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateComment(c.Request().Context(), id, req.Content); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Comment updated successfully")
}

// DeleteComment handles removing a comment. The deleted ID is echoed back even
// when nothing existed under it.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid comment id")
	}

	deletedID, err := h.uc.DeleteComment(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": deletedID.String()}, "Comment deleted successfully")
}
