package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/sessionhub/user-portal/internal/api/metrics"
	"github.com/sessionhub/user-portal/internal/core/domain"
	"github.com/sessionhub/user-portal/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes audit events to a fixed set of workers using consistent
// hashing on the account email, guaranteeing per-account event ordering.
// Recording failures are logged and counted, never surfaced to the request.
type Dispatcher struct {
	workers []chan domain.AuthEvent
	repo    ports.AuditRepository
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AuthEvent, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuthEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Submit sends an event to the worker responsible for its email. The call is
// non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Submit(event domain.AuthEvent) {
	d.workers[d.shardIndex(event.Email)] <- event
}

// shardIndex maps an email deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuthEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.repo.Record(ctx, event); err != nil {
				metrics.AuditFailuresTotal.Inc()
				d.log.Error().Err(err).
					Str("event_type", string(event.Type)).
					Str("email", event.Email).
					Int("worker_id", id).
					Msg("audit event recording failed")
				continue
			}
			metrics.AuditEventsTotal.WithLabelValues(string(event.Type)).Inc()
		}
	}
}
