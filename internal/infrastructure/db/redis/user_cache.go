package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sessionhub/user-portal/internal/core/domain"
)

const cacheTTL = 5 * time.Minute

// UserCache caches user records in Redis so session recovery does not hit
// MongoDB on every authenticated request.
// Key format: user:<id>
type UserCache struct {
	client *redis.Client
}

// NewUserCache creates a UserCache wrapping the given Redis client.
func NewUserCache(client *redis.Client) *UserCache {
	return &UserCache{client: client}
}

// Get returns the cached user, or (nil, nil) on a miss.
func (c *UserCache) Get(ctx context.Context, id string) (*domain.User, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var entry cachedUser
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return entry.toDomain(), nil
}

// Set stores the user record (expires after cacheTTL).
func (c *UserCache) Set(ctx context.Context, user *domain.User) error {
	raw, err := json.Marshal(fromDomain(user))
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(user.ID), raw, cacheTTL).Err()
}

func (c *UserCache) key(id string) string {
	return fmt.Sprintf("user:%s", id)
}

// cachedUser is the cache's own envelope. domain.User strips the password
// hash from JSON, so marshalling it directly would store a lossy record.
type cachedUser struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	CreatedAt    int64  `json:"created_at"`
}

func fromDomain(u *domain.User) cachedUser {
	return cachedUser{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt.Unix(),
	}
}

func (cu cachedUser) toDomain() *domain.User {
	return &domain.User{
		ID:           cu.ID,
		Username:     cu.Username,
		Email:        cu.Email,
		PasswordHash: cu.PasswordHash,
		CreatedAt:    time.Unix(cu.CreatedAt, 0).UTC(),
	}
}
