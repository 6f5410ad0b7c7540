package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/userhub/identity-system/internal/api/metrics"
	"github.com/userhub/identity-system/internal/core/domain"
	"github.com/userhub/identity-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher persists audit events asynchronously through a fixed set of
// workers. Events are sharded by subject with consistent hashing, so the
// audit trail for a single account stays in order.
type Dispatcher struct {
	workers []chan domain.AuditEvent
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
		workers: make([]chan domain.AuditEvent, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record enqueues an event without blocking the request path. When the
// target worker's buffer is full the event is dropped and counted.
func (d *Dispatcher) Record(event domain.AuditEvent) {
	select {
	case d.workers[d.shardIndex(event.Subject)] <- event:
	default:
		metrics.AuditDroppedTotal.Inc()
		d.log.Warn().Str("action", event.Action).Msg("audit queue full, event dropped")
	}
}

// shardIndex maps a subject deterministically to a worker index.
func (d *Dispatcher) shardIndex(subject string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(subject))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.repo.Insert(ctx, &event); err != nil {
				d.log.Error().Err(err).
					Str("action", event.Action).
					Int("worker_id", id).
					Msg("audit event persistence failed")
			}
		}
	}
}
