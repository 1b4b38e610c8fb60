package service

import (
	"context"
	"errors"
	"time"

	"github.com/sessionhub/user-portal/internal/core/domain"
	"github.com/sessionhub/user-portal/internal/core/ports"
)

// AuthService implements registration, login, and session recovery.
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	codec  ports.SessionCodec
	cache  ports.UserCache
	audit  ports.AuditSink
}

// NewAuthService wires the service. cache and audit may be nil; the service
// then reads straight from the repository and skips audit events.
func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, codec ports.SessionCodec, cache ports.UserCache, audit ports.AuditSink) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, codec: codec, cache: cache, audit: audit}
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) (string, *domain.User, error) {
	if username == "" || email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return "", nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	// The unique index on email backstops the lookup above: a concurrent
	// registration loses the insert and surfaces as ErrEmailTaken.
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.codec.Issue(created.ID)
	if err != nil {
		return "", nil, err
	}

	s.submit(domain.AuthEvent{Type: domain.EventRegister, UserID: created.ID, Email: created.Email})
	return token, created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.submit(domain.AuthEvent{Type: domain.EventLoginFailed, UserID: user.ID, Email: user.Email})
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	s.submit(domain.AuthEvent{Type: domain.EventLogin, UserID: user.ID, Email: user.Email})
	return token, user, nil
}

func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	userID, err := s.codec.Decode(token)
	if err != nil {
		return nil, err
	}
	return s.findByID(ctx, userID)
}

func (s *AuthService) Logout(ctx context.Context, user *domain.User) {
	if user == nil {
		return
	}
	s.submit(domain.AuthEvent{Type: domain.EventLogout, UserID: user.ID, Email: user.Email})
}

func (s *AuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

// findByID reads through the cache when one is configured. Cache errors are
// treated as misses so an unhealthy cache never takes down authentication.
func (s *AuthService) findByID(ctx context.Context, id string) (*domain.User, error) {
	if s.cache != nil {
		if user, err := s.cache.Get(ctx, id); err == nil && user != nil {
			return user, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, user)
	}
	return user, nil
}

func (s *AuthService) submit(event domain.AuthEvent) {
	if s.audit == nil {
		return
	}
	event.At = time.Now().UTC()
	s.audit.Submit(event)
}
