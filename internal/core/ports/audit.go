package ports

import (
	"context"

	"github.com/sessionhub/user-portal/internal/core/domain"
)

// AuditRepository persists authentication audit events.
type AuditRepository interface {
	Record(ctx context.Context, event domain.AuthEvent) error
}

// AuditSink accepts events for asynchronous recording. Submit must not block
// the caller beyond channel buffering and must swallow its own failures.
type AuditSink interface {
	Submit(event domain.AuthEvent)
}
