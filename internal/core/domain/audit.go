package domain

import "time"

// AuthEventType identifies what happened on the account.
type AuthEventType string

const (
	EventRegister    AuthEventType = "register"
	EventLogin       AuthEventType = "login"
	EventLoginFailed AuthEventType = "login_failed"
	EventLogout      AuthEventType = "logout"
)

// AuthEvent is an audit-trail entry for an authentication action. Events are
// recorded asynchronously and must never block or fail the request that
// produced them.
type AuthEvent struct {
	Type   AuthEventType `json:"type"`
	UserID string        `json:"user_id,omitempty"`
	Email  string        `json:"email"`
	At     time.Time     `json:"at"`
}
