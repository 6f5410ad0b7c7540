package ports

import (
	"context"

	"github.com/userhub/identity-system/internal/core/domain"
)

// AuditSink accepts authentication audit events for asynchronous
// persistence. Record must not block the calling request.
type AuditSink interface {
	Record(event domain.AuditEvent)
}

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}
