package ports

import (
	"context"

	"github.com/wheelhouse/site-api/internal/core/domain"
)

// AuditRepository persists the append-only audit log.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
	// ListRecent returns up to limit entries, newest first.
	ListRecent(ctx context.Context, limit int64) ([]*domain.AuditEntry, error)
}
