package ports

import (
	"context"

	"github.com/sessionhub/user-portal/internal/core/domain"
)

type AuthService interface {
	// Register creates the account and returns it together with a signed
	// session token for the new user.
	Register(ctx context.Context, username, email, password string) (string, *domain.User, error)
	// Login verifies the credentials and returns a signed session token.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Authenticate recovers the user behind a session token. It returns
	// domain.ErrInvalidSession when the token does not verify.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
	// Logout records the end of a session. Tokens are self-contained, so
	// there is nothing to revoke server-side.
	Logout(ctx context.Context, user *domain.User)
	// ListUsers returns every registered account.
	ListUsers(ctx context.Context) ([]domain.User, error)
}
