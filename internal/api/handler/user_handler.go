package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sessionhub/user-portal/internal/core/domain"
	"github.com/sessionhub/user-portal/internal/core/ports"
)

type UserHandler struct {
	authService ports.AuthService
}

func NewUserHandler(authService ports.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

type usersResponse struct {
	Success bool          `json:"success"`
	Users   []domain.User `json:"users"`
}

// Ping handles GET /users — a plaintext liveness string.
func (h *UserHandler) Ping(c echo.Context) error {
	return c.String(http.StatusOK, "It's working")
}

// ListAll handles GET /users/all and returns every account. Password hashes
// are stripped by the User JSON tags.
func (h *UserHandler) ListAll(c echo.Context) error {
	users, err := h.authService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.User{}
	}
	return c.JSON(http.StatusOK, usersResponse{Success: true, Users: users})
}
