package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sessionhub/user-portal/internal/api/middleware"
)

// PageHandler serves the HTML views that carry no server state of their own.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Home renders the authenticated view when the session middleware attached a
// user, the anonymous landing page otherwise.
func (h *PageHandler) Home(c echo.Context) error {
	if user := middleware.CurrentUser(c); user != nil {
		return c.Render(http.StatusOK, "profile", viewData{Username: user.Username, Email: user.Email})
	}
	return c.Render(http.StatusOK, "home", viewData{})
}

func (h *PageHandler) RegisterForm(c echo.Context) error {
	return c.Render(http.StatusOK, "register", viewData{})
}

func (h *PageHandler) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login", viewData{})
}
