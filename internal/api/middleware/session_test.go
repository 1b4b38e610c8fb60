package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sessionhub/user-portal/internal/core/domain"
)

type stubAuthService struct {
	authenticateFn func(ctx context.Context, token string) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, username, email, password string) (string, *domain.User, error) {
	return "", nil, nil
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return "", nil, nil
}

func (s *stubAuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	return s.authenticateFn(ctx, token)
}

func (s *stubAuthService) Logout(ctx context.Context, user *domain.User) {}

func (s *stubAuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return nil, nil
}

func TestSession_ValidCookie(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		authenticateFn: func(ctx context.Context, token string) (*domain.User, error) {
			if token != "good-token" {
				t.Fatalf("unexpected token: %s", token)
			}
			return &domain.User{ID: "id-1", Username: "alice", Email: "a@x.com"}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "good-token"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Session(stub)(func(c echo.Context) error {
		called = true
		user := CurrentUser(c)
		if user == nil || user.Username != "alice" {
			t.Fatalf("expected user attached, got %+v", user)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestSession_NoCookie(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		authenticateFn: func(ctx context.Context, token string) (*domain.User, error) {
			t.Fatalf("should not authenticate without a cookie")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Session(stub)(func(c echo.Context) error {
		called = true
		if CurrentUser(c) != nil {
			t.Fatalf("expected anonymous request")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

// A malformed or stale cookie must not fail the request: the middleware
// clears it and the request proceeds anonymously.
func TestSession_InvalidCookie(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		authenticateFn: func(ctx context.Context, token string) (*domain.User, error) {
			return nil, domain.ErrInvalidSession
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "tampered"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Session(stub)(func(c echo.Context) error {
		called = true
		if CurrentUser(c) != nil {
			t.Fatalf("expected anonymous request")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}

	var cleared *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == CookieName {
			cleared = cookie
		}
	}
	if cleared == nil || cleared.Value != "" || cleared.MaxAge >= 0 {
		t.Fatalf("expected cookie cleared, got %+v", cleared)
	}
}

func TestSession_DeletedUserCookie(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		authenticateFn: func(ctx context.Context, token string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "orphaned"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(stub)(func(c echo.Context) error {
		if CurrentUser(c) != nil {
			t.Fatalf("expected anonymous request")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}
