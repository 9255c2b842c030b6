// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"checats/internal/delivery/http/middleware"
	"checats/internal/delivery/http/response"
	"checats/internal/domain/entity"
	"checats/internal/domain/service"
	"checats/internal/usecase"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc         usecase.UserUsecase
	tokenSvc   service.TokenService
	cookieName string
	logger     *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, tokenSvc service.TokenService, authMW *middleware.AuthMiddleware, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:         uc,
		tokenSvc:   tokenSvc,
		cookieName: authMW.CookieName(),
		logger:     logger,
	}
}

// userView is the outward shape of a user. The password hash never leaves the
// service.
type userView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserView(user *entity.User) userView {
	return userView{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role.String(),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func toUserViews(users []*entity.User) []userView {
	views := make([]userView, 0, len(users))
	for _, user := range users {
		views = append(views, toUserView(user))
	}

	return views
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserView(output.User), "User registered successfully")
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string   `json:"token"`
	User  userView `json:"user"`
}

// Login handles the user login request. On success the signed token is both
// returned in the body and set as the auth cookie the middleware reads.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    output.Token,
		Path:     "/",
		Expires:  time.Now().Add(h.tokenSvc.TokenTTL()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return response.Success(c, http.StatusOK, loginResponse{
		Token: output.Token,
		User:  toUserView(output.User),
	}, "Login successful")
}

// Logout clears the auth cookie.
func (h *UserHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// GetUser handles fetching a single user by ID.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user id")
	}

	user, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), "")
}

// GetUserByName handles fetching a single user by login name.
func (h *UserHandler) GetUserByName(c echo.Context) error {
	user, err := h.uc.GetUserByName(c.Request().Context(), c.Param("username"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), "")
}

// GetUserByEmail handles fetching a single user by email address.
func (h *UserHandler) GetUserByEmail(c echo.Context) error {
	user, err := h.uc.GetUserByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), "")
}

// ListUsers handles listing every user.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserViews(users), "")
}

type updateUserRequest struct {
	Username       string `json:"username" validate:"required"`
	Email          string `json:"email" validate:"required"`
	Password       string `json:"password" validate:"required"`
	Role           string `json:"role" validate:"required"`
	ProfilePicture []byte `json:"profilePicture"`
}

// UpdateUser handles a full replace of a user's mutable fields.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user id")
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), id, &usecase.UpdateUserInput{
		Username:       req.Username,
		Email:          req.Email,
		Password:       req.Password,
		Role:           entity.Role(req.Role),
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), "User updated successfully")
}

// DeleteUser handles removing a user. The deleted ID is echoed back even when
// nothing existed under it.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user id")
	}

	deletedID, err := h.uc.DeleteUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": deletedID.String()}, "User deleted successfully")
}

type changeRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// ChangeRole handles switching a user's permission tier.
func (h *UserHandler) ChangeRole(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user id")
	}

	var req changeRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ChangeRole(c.Request().Context(), id, entity.Role(req.Role)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Role changed successfully")
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// ChangePassword handles replacing a user's password. The old password must
// verify before the new one is stored.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user id")
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ChangePassword(c.Request().Context(), id, &usecase.ChangePasswordInput{
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password changed successfully")
}

type changeEmailRequest struct {
	Email string `json:"email" validate:"required"`
}

// ChangeEmail handles replacing a user's email address.
func (h *UserHandler) ChangeEmail(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user id")
	}

	var req changeEmailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid email input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ChangeEmail(c.Request().Context(), id, req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Email changed successfully")
}

type changePictureRequest struct {
	ProfilePicture []byte `json:"profilePicture" validate:"required"`
}

// ChangeProfilePicture handles storing a new avatar blob.
func (h *UserHandler) ChangeProfilePicture(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user id")
	}

	var req changePictureRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid picture input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ChangeProfilePicture(c.Request().Context(), id, req.ProfilePicture); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Profile picture changed successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
