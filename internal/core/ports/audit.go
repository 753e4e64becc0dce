package ports

import (
	"context"

	"github.com/multixy/storefront/internal/core/domain"
)

// AuditRepository persists auth audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}

// AuditService processes a single audit event (dispatcher worker side).
type AuditService interface {
	Process(ctx context.Context, event domain.AuditEvent) error
}

// AuditRecorder accepts audit events from the request path without blocking.
// Implementations must never make the caller wait on persistence.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}
