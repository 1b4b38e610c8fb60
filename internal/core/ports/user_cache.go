package ports

import (
	"context"

	"github.com/sessionhub/user-portal/internal/core/domain"
)

// UserCache is a read-through cache for user records keyed by ID. Get returns
// (nil, nil) on a miss; errors indicate the cache itself is unhealthy and
// callers should fall back to the repository.
type UserCache interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	Set(ctx context.Context, user *domain.User) error
}
