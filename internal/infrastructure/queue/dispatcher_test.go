package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sessionhub/user-portal/internal/core/domain"
)

type recordingAuditRepo struct {
	mu     sync.Mutex
	events []domain.AuthEvent
}

func (r *recordingAuditRepo) Record(_ context.Context, event domain.AuthEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *recordingAuditRepo) snapshot() []domain.AuthEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AuthEvent, len(r.events))
	copy(out, r.events)
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met before deadline")
}

func TestDispatcher_RecordsEvents(t *testing.T) {
	repo := &recordingAuditRepo{}
	d := NewDispatcher(2, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Submit(domain.AuthEvent{Type: domain.EventRegister, Email: "a@x.com"})
	d.Submit(domain.AuthEvent{Type: domain.EventLogin, Email: "b@x.com"})

	waitFor(t, func() bool { return len(repo.snapshot()) == 2 })
}

func TestDispatcher_PerAccountOrdering(t *testing.T) {
	repo := &recordingAuditRepo{}
	d := NewDispatcher(4, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	sequence := []domain.AuthEventType{
		domain.EventRegister,
		domain.EventLoginFailed,
		domain.EventLogin,
		domain.EventLogout,
	}
	for _, typ := range sequence {
		d.Submit(domain.AuthEvent{Type: typ, Email: "a@x.com"})
	}

	waitFor(t, func() bool { return len(repo.snapshot()) == len(sequence) })

	// Same email means same worker, so arrival order is submission order.
	for i, event := range repo.snapshot() {
		if event.Type != sequence[i] {
			t.Fatalf("event %d out of order: got %s, want %s", i, event.Type, sequence[i])
		}
	}
}

func TestDispatcher_ShardIsStable(t *testing.T) {
	d := NewDispatcher(8, &recordingAuditRepo{}, zerolog.Nop())

	first := d.shardIndex("a@x.com")
	for i := 0; i < 10; i++ {
		if d.shardIndex("a@x.com") != first {
			t.Fatalf("shard index not deterministic")
		}
	}
}

func TestDispatcher_SubmitAfterCancelDoesNotBlock(t *testing.T) {
	repo := &recordingAuditRepo{}
	d := NewDispatcher(1, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	d.Submit(domain.AuthEvent{Type: domain.EventLogin, Email: "a@x.com"})
	waitFor(t, func() bool { return len(repo.snapshot()) == 1 })

	cancel()

	// Submissions after shutdown land in the buffer without blocking the
	// caller, which is all the request path relies on.
	done := make(chan struct{})
	go func() {
		d.Submit(domain.AuthEvent{Type: domain.EventLogout, Email: "a@x.com"})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Submit blocked after cancel")
	}
}
