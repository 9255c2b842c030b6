package middleware

import (
	"checats/config"
	deliverycontext "checats/internal/delivery/context"
	"checats/internal/delivery/http/response"
	"checats/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// DefaultCookieName is used when no cookie name is configured.
const DefaultCookieName = "checats_token"

// AuthMiddleware provides middleware for JWT authentication. Tokens travel in
// a named cookie rather than the Authorization header; the login handler sets
// the cookie and this middleware reads it back.
type AuthMiddleware struct {
	tokenSvc   service.TokenService
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	cookieName := DefaultCookieName
	if cfg != nil && cfg.JWT != nil && cfg.JWT.CookieName != "" {
		cookieName = cfg.JWT.CookieName
	}

	return &AuthMiddleware{tokenSvc: tokenSvc, cookieName: cookieName}
}

// CookieName returns the name of the cookie the middleware reads.
func (m *AuthMiddleware) CookieName() string {
	return m.cookieName
}

// Authenticate is the core middleware function that validates the JWT carried
// by the auth cookie and stores the caller's user ID on the request context.
// The token carries no role claim; handlers that gate on role re-fetch the
// user record through their usecase.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			return response.Unauthorized(c, "TOKEN_MISSING", "Authentication cookie is missing")
		}

		claims, err := m.tokenSvc.ValidateToken(cookie.Value)
		if err != nil {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired token")
		}

		deliverycontext.SetUserID(c, claims.UserID)

		return next(c)
	}
}
