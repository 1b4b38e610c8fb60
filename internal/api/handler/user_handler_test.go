package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sessionhub/user-portal/internal/core/domain"
)

func TestUserHandler_Ping(t *testing.T) {
	e := echo.New()
	handler := NewUserHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Ping(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "It's working" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestUserHandler_ListAll(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		listFn: func(ctx context.Context) ([]domain.User, error) {
			return []domain.User{{
				ID:           "id-1",
				Username:     "alice",
				Email:        "a@x.com",
				PasswordHash: "$2a$10$secret",
				CreatedAt:    time.Unix(1700000000, 0).UTC(),
			}}, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/users/all", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ListAll(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Success bool             `json:"success"`
		Users   []map[string]any `json:"users"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Success || len(resp.Users) != 1 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if resp.Users[0]["username"] != "alice" || resp.Users[0]["email"] != "a@x.com" {
		t.Fatalf("unexpected user: %+v", resp.Users[0])
	}

	// Password material must never appear in the listing.
	if strings.Contains(rec.Body.String(), "secret") {
		t.Fatalf("password hash leaked: %s", rec.Body.String())
	}
}

func TestUserHandler_ListAll_Empty(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		listFn: func(ctx context.Context) ([]domain.User, error) {
			return nil, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/users/all", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ListAll(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	// An empty store still yields a JSON array, not null.
	if !strings.Contains(rec.Body.String(), `"users":[]`) {
		t.Fatalf("expected empty array, got %s", rec.Body.String())
	}
}
