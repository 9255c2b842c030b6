package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"checats/internal/delivery/http/middleware"
	"checats/internal/delivery/http/validator"
	"checats/internal/domain/entity"
	mockservice "checats/internal/mocks/service"
	mockusecase "checats/internal/mocks/usecase"
	"checats/internal/usecase"
)

// newTestContext builds an echo context with the validator installed, the way
// the running server configures it.
func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

type userHandlerFixtures struct {
	handler  *UserHandler
	uc       *mockusecase.MockUserUsecase
	tokenSvc *mockservice.MockTokenService
}

func newUserHandlerFixtures(t *testing.T) *userHandlerFixtures {
	uc := mockusecase.NewMockUserUsecase(t)
	tokenSvc := mockservice.NewMockTokenService(t)

	return &userHandlerFixtures{
		handler: &UserHandler{
			uc:         uc,
			tokenSvc:   tokenSvc,
			cookieName: middleware.DefaultCookieName,
			logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		},
		uc:       uc,
		tokenSvc: tokenSvc,
	}
}

func TestUserHandler_Register_Success(t *testing.T) {
	fx := newUserHandlerFixtures(t)

	user := &entity.User{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$12$secret",
		Role:         entity.RoleUser,
	}
	fx.uc.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "hunter22",
		}).
		Return(&usecase.RegisterOutput{User: user}, nil)

	c, rec := newTestContext(http.MethodPost, "/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"hunter22"}`)

	require.NoError(t, fx.handler.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice")
	// The hash must never appear in any response body.
	assert.NotContains(t, rec.Body.String(), "$2a$12$secret")
}

func TestUserHandler_Register_MissingPassword(t *testing.T) {
	fx := newUserHandlerFixtures(t)

	c, _ := newTestContext(http.MethodPost, "/auth/register",
		`{"username":"alice","email":"alice@example.com"}`)

	err := fx.handler.Register(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestUserHandler_Login_SetsAuthCookie(t *testing.T) {
	fx := newUserHandlerFixtures(t)

	user := &entity.User{ID: uuid.New(), Username: "alice", Role: entity.RoleUser}
	fx.uc.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Username: "alice", Password: "hunter22"}).
		Return(&usecase.LoginOutput{Token: "signed.jwt.token", User: user}, nil)
	fx.tokenSvc.EXPECT().TokenTTL().Return(12 * time.Hour)

	c, rec := newTestContext(http.MethodPost, "/auth/login",
		`{"username":"alice","password":"hunter22"}`)

	require.NoError(t, fx.handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.DefaultCookieName, cookies[0].Name)
	assert.Equal(t, "signed.jwt.token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestUserHandler_Login_BadCredentialsPassThrough(t *testing.T) {
	fx := newUserHandlerFixtures(t)

	wantErr := assert.AnError
	fx.uc.EXPECT().
		Login(mock.Anything, mock.Anything).
		Return(nil, wantErr)

	c, _ := newTestContext(http.MethodPost, "/auth/login",
		`{"username":"alice","password":"wrong"}`)

	err := fx.handler.Login(c)
	require.ErrorIs(t, err, wantErr)
}

func TestUserHandler_Logout_ClearsCookie(t *testing.T) {
	fx := newUserHandlerFixtures(t)

	c, rec := newTestContext(http.MethodPost, "/auth/logout", "")

	require.NoError(t, fx.handler.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.DefaultCookieName, cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestUserHandler_GetUser_InvalidID(t *testing.T) {
	fx := newUserHandlerFixtures(t)

	c, rec := newTestContext(http.MethodGet, "/users/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, fx.handler.GetUser(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestUserHandler_DeleteUser_EchoesID(t *testing.T) {
	fx := newUserHandlerFixtures(t)

	id := uuid.New()
	fx.uc.EXPECT().DeleteUser(mock.Anything, id).Return(id, nil)

	c, rec := newTestContext(http.MethodDelete, "/users/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, fx.handler.DeleteUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), id.String())
}

func TestUserHandler_ChangeRole_Success(t *testing.T) {
	fx := newUserHandlerFixtures(t)

	id := uuid.New()
	fx.uc.EXPECT().ChangeRole(mock.Anything, id, entity.RoleAdmin).Return(nil)

	c, rec := newTestContext(http.MethodPatch, "/users/"+id.String()+"/role", `{"role":"admin"}`)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, fx.handler.ChangeRole(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
