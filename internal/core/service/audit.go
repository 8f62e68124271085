package service

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/wheelhouse/site-api/internal/api/metrics"
	"github.com/wheelhouse/site-api/internal/core/domain"
	"github.com/wheelhouse/site-api/internal/core/ports"
	"github.com/wheelhouse/site-api/internal/site"
)

const defaultLogLimit = 200

// AuditRecorder writes the append-only audit trail. Recording is a side
// effect of sensitive mutations and never blocks them: failures are logged
// and swallowed.
type AuditRecorder struct {
	repo     ports.AuditRepository
	resolver *site.Resolver
	log      zerolog.Logger
}

func NewAuditRecorder(repo ports.AuditRepository, resolver *site.Resolver, log zerolog.Logger) *AuditRecorder {
	return &AuditRecorder{repo: repo, resolver: resolver, log: log}
}

// Record appends an entry for action performed toward towards, attributed to
// actorID when the caller was authenticated. IP and site variant come from
// the request.
func (r *AuditRecorder) Record(c echo.Context, action, towards, actorID string) {
	st, _ := r.resolver.SiteType(c.Request())
	entry := &domain.AuditEntry{
		Action:   action,
		UserID:   actorID,
		Towards:  towards,
		IP:       site.ClientIP(c.Request()),
		SiteType: st,
	}
	if err := r.repo.Insert(c.Request().Context(), entry); err != nil {
		r.log.Warn().Err(err).Str("action", action).Msg("failed to write audit entry")
		return
	}
	metrics.AuditEntriesTotal.WithLabelValues(action).Inc()
}

// ListRecent returns the most recent audit entries, newest first.
func (r *AuditRecorder) ListRecent(ctx context.Context) ([]*domain.AuditEntry, error) {
	return r.repo.ListRecent(ctx, defaultLogLimit)
}
