package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sessionhub/user-portal/internal/api/metrics"
	"github.com/sessionhub/user-portal/internal/api/middleware"
	"github.com/sessionhub/user-portal/internal/core/domain"
	"github.com/sessionhub/user-portal/internal/core/ports"
)

// Messages shown when a form is re-rendered. Business rejections come back as
// HTTP 200 with the message inline, matching the form-flow surface.
const (
	msgAlreadyRegistered = "Email already registered, Please Login"
	msgEmailNotFound     = "Email not found, Register Yourself"
	msgWrongPassword     = "Wrong Password, Try again"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles POST /register: creates the account, issues the session
// cookie, and renders the authenticated view. An email already on file
// re-renders the login form with a hint instead.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerForm
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return c.Render(http.StatusOK, "register", viewData{Message: err.Error()})
	}

	token, user, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		return c.Render(http.StatusOK, "login", viewData{Message: msgAlreadyRegistered})
	case err != nil:
		return err
	}

	metrics.RegistrationsTotal.Inc()
	middleware.SetSessionCookie(c, token)
	return c.Render(http.StatusOK, "profile", viewData{Username: user.Username, Email: user.Email})
}

// Login handles POST /login. Unknown emails point at the registration form,
// wrong passwords re-render the login form.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginForm
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return c.Render(http.StatusOK, "login", viewData{Message: err.Error()})
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		metrics.LoginsTotal.WithLabelValues("unknown_email").Inc()
		return c.Render(http.StatusOK, "register", viewData{Message: msgEmailNotFound})
	case errors.Is(err, domain.ErrInvalidCredentials):
		metrics.LoginsTotal.WithLabelValues("wrong_password").Inc()
		return c.Render(http.StatusOK, "login", viewData{Message: msgWrongPassword})
	case err != nil:
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	middleware.SetSessionCookie(c, token)
	return c.Render(http.StatusOK, "profile", viewData{Username: user.Username, Email: user.Email})
}

// Logout handles GET /logout: expires the session cookie and redirects home.
// The token itself is not revoked server-side.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.authService.Logout(c.Request().Context(), middleware.CurrentUser(c))
	middleware.ClearSessionCookie(c)
	return c.Redirect(http.StatusFound, "/")
}
