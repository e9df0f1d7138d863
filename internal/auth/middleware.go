package auth

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"skytails/internal/model"
)

// ContextUserKey is where resolved identities are stored on the echo context.
const ContextUserKey = "identity"

// IdentityResolver turns a raw cookie token into a User. Implemented by the
// auth service; defined here so middleware does not depend on the service
// package.
type IdentityResolver interface {
	ResolveToken(ctx context.Context, token string) (*model.User, error)
}

// ResolveSession best-effort resolves the session cookie into an identity.
// Absence or invalidity is NOT an error here: the handler decides whether a
// missing identity is fatal. Used by GET /api/me.
func ResolveSession(resolver IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err == nil && cookie.Value != "" {
				if user, err := resolver.ResolveToken(c.Request().Context(), cookie.Value); err == nil {
					c.Set(ContextUserKey, user)
				}
			}
			return next(c)
		}
	}
}

// RequireSession resolves the session cookie and rejects the request with
// 401 before any domain data access when no identity can be established.
// Runs after the echo-jwt signature check on the secured group; the extra
// resolution here is what makes a server-side logout effective immediately.
func RequireSession(resolver IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			user, err := resolver.ResolveToken(c.Request().Context(), cookie.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the identity resolved by the session middleware, or
// nil when the request is anonymous.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(ContextUserKey).(*model.User)
	return user
}
