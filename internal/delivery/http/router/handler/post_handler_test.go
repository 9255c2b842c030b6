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

type postHandlerFixtures struct {
	handler *PostHandler
	uc      *mockusecase.MockPostUsecase
}

func newPostHandlerFixtures(t *testing.T) *postHandlerFixtures {
	uc := mockusecase.NewMockPostUsecase(t)

	return &postHandlerFixtures{
		handler: &PostHandler{
			uc:     uc,
			logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		},
		uc: uc,
	}
}

func TestPostHandler_CreatePost_UsesAuthenticatedAuthor(t *testing.T) {
	fx := newPostHandlerFixtures(t)

	authorID := uuid.New()
	fx.uc.EXPECT().
		CreatePost(mock.Anything, &usecase.CreatePostInput{
			AuthorID: authorID,
			Title:    "Hello",
			Content:  "First post.",
		}).
		Return(&entity.Post{ID: uuid.New(), Title: "Hello", Content: "First post.", AuthorID: authorID}, nil)

	c, rec := newTestContext(http.MethodPost, "/posts", `{"title":"Hello","content":"First post."}`)
	deliverycontext.SetUserID(c, authorID)

	require.NoError(t, fx.handler.CreatePost(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hello")
}

func TestPostHandler_CreatePost_Unauthenticated(t *testing.T) {
	fx := newPostHandlerFixtures(t)

	c, rec := newTestContext(http.MethodPost, "/posts", `{"title":"Hello","content":"First post."}`)

	require.NoError(t, fx.handler.CreatePost(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_MISSING")
}

func TestPostHandler_GetPost_InvalidID(t *testing.T) {
	fx := newPostHandlerFixtures(t)

	c, rec := newTestContext(http.MethodGet, "/posts/nope", "")
	c.SetParamNames("id")
	c.SetParamValues("nope")

	require.NoError(t, fx.handler.GetPost(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestPostHandler_ListUserPosts_Success(t *testing.T) {
	fx := newPostHandlerFixtures(t)

	authorID := uuid.New()
	fx.uc.EXPECT().
		ListUserPosts(mock.Anything, authorID).
		Return([]*entity.Post{
			{ID: uuid.New(), Title: "one", AuthorID: authorID},
			{ID: uuid.New(), Title: "two", AuthorID: authorID},
		}, nil)

	c, rec := newTestContext(http.MethodGet, "/users/"+authorID.String()+"/posts", "")
	c.SetParamNames("id")
	c.SetParamValues(authorID.String())

	require.NoError(t, fx.handler.ListUserPosts(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "one")
	assert.Contains(t, rec.Body.String(), "two")
}

func TestPostHandler_UpdatePost_PassesThroughError(t *testing.T) {
	fx := newPostHandlerFixtures(t)

	id := uuid.New()
	fx.uc.EXPECT().
		UpdatePost(mock.Anything, id, &usecase.UpdatePostInput{Title: "t", Content: "c"}).
		Return(assert.AnError)

	c, _ := newTestContext(http.MethodPut, "/posts/"+id.String(), `{"title":"t","content":"c"}`)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	err := fx.handler.UpdatePost(c)
	require.ErrorIs(t, err, assert.AnError)
}

func TestPostHandler_DeletePost_EchoesID(t *testing.T) {
	fx := newPostHandlerFixtures(t)

	id := uuid.New()
	fx.uc.EXPECT().DeletePost(mock.Anything, id).Return(id, nil)

	c, rec := newTestContext(http.MethodDelete, "/posts/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, fx.handler.DeletePost(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), id.String())
}
