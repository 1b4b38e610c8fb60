package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sessionhub/user-portal/internal/api/metrics"
	"github.com/sessionhub/user-portal/internal/core/domain"
	"github.com/sessionhub/user-portal/internal/core/ports"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "id"

const userContextKey = "user"

// Session recovers identity from the session cookie and attaches the user to
// the echo context. A missing cookie means an anonymous request; a cookie
// that fails decoding or names a deleted user is cleared and the request
// continues anonymously. The middleware never rejects a request.
func Session(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			user, err := auth.Authenticate(c.Request().Context(), cookie.Value)
			if err != nil {
				metrics.SessionsRecoveredTotal.WithLabelValues("invalid").Inc()
				ClearSessionCookie(c)
				return next(c)
			}

			metrics.SessionsRecoveredTotal.WithLabelValues("ok").Inc()
			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the user attached by Session, or nil for anonymous
// requests.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(userContextKey).(*domain.User)
	return user
}

// SetSessionCookie installs the signed token as the http-only session cookie.
func SetSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
}

// ClearSessionCookie overwrites the session cookie with an already-expired
// one. The token itself stays verifiable; only the client copy is dropped.
func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
}
