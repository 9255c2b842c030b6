package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	deliverycontext "checats/internal/delivery/context"
	"checats/internal/domain/entity"
	mockusecase "checats/internal/mocks/usecase"
	"checats/internal/usecase"
)

type commentHandlerFixtures struct {
	handler *CommentHandler
	uc      *mockusecase.MockCommentUsecase
}

func newCommentHandlerFixtures(t *testing.T) *commentHandlerFixtures {
	uc := mockusecase.NewMockCommentUsecase(t)

	return &commentHandlerFixtures{
		handler: &CommentHandler{
			uc:     uc,
			logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		},
		uc: uc,
	}
}

func TestCommentHandler_CreateComment_UsesAuthenticatedAuthor(t *testing.T) {
	fx := newCommentHandlerFixtures(t)

	authorID := uuid.New()
	postID := uuid.New()
	fx.uc.EXPECT().
		CreateComment(mock.Anything, &usecase.CreateCommentInput{
			AuthorID: authorID,
			PostID:   postID,
			Content:  "Nice post!",
		}).
		Return(&entity.Comment{ID: uuid.New(), Content: "Nice post!", AuthorID: authorID, PostID: postID}, nil)

	c, rec := newTestContext(http.MethodPost, "/comments",
		`{"postId":"`+postID.String()+`","content":"Nice post!"}`)
	deliverycontext.SetUserID(c, authorID)

	require.NoError(t, fx.handler.CreateComment(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Nice post!")
}

func TestCommentHandler_CreateComment_BadPostID(t *testing.T) {
	fx := newCommentHandlerFixtures(t)

	c, rec := newTestContext(http.MethodPost, "/comments", `{"postId":"nope","content":"hi"}`)
	deliverycontext.SetUserID(c, uuid.New())

	require.NoError(t, fx.handler.CreateComment(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestCommentHandler_CreateComment_Unauthenticated(t *testing.T) {
	fx := newCommentHandlerFixtures(t)

	c, rec := newTestContext(http.MethodPost, "/comments",
		`{"postId":"`+uuid.New().String()+`","content":"hi"}`)

	require.NoError(t, fx.handler.CreateComment(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCommentHandler_ListPostComments_Success(t *testing.T) {
	fx := newCommentHandlerFixtures(t)

	postID := uuid.New()
	fx.uc.EXPECT().
		ListPostComments(mock.Anything, postID).
		Return([]*entity.Comment{
			{ID: uuid.New(), Content: "first", PostID: postID},
			{ID: uuid.New(), Content: "second", PostID: postID},
		}, nil)

	c, rec := newTestContext(http.MethodGet, "/posts/"+postID.String()+"/comments", "")
	c.SetParamNames("id")
	c.SetParamValues(postID.String())

	require.NoError(t, fx.handler.ListPostComments(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "first")
	assert.Contains(t, rec.Body.String(), "second")
}

func TestCommentHandler_UpdateComment_Success(t *testing.T) {
	fx := newCommentHandlerFixtures(t)

	id := uuid.New()
	fx.uc.EXPECT().UpdateComment(mock.Anything, id, "edited").Return(nil)

	c, rec := newTestContext(http.MethodPut, "/comments/"+id.String(), `{"content":"edited"}`)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, fx.handler.UpdateComment(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCommentHandler_DeleteComment_EchoesID(t *testing.T) {
	fx := newCommentHandlerFixtures(t)

	id := uuid.New()
	fx.uc.EXPECT().DeleteComment(mock.Anything, id).Return(id, nil)

	c, rec := newTestContext(http.MethodDelete, "/comments/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, fx.handler.DeleteComment(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), id.String())
}
