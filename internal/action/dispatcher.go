package action

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/wheelhouse/site-api/internal/api/metrics"
	"github.com/wheelhouse/site-api/internal/core/domain"
	"github.com/wheelhouse/site-api/internal/core/ports"
)

// Connector lazily establishes the persistence connection. Connecting twice
// is a no-op; a connector that cannot connect fails every dispatch rather
// than degrading.
type Connector interface {
	Connect(ctx context.Context) error
}

// Dispatcher resolves action names against one registry, enforces the
// role gate, invokes the handler, and flattens every outcome into an
// Envelope. Errors never propagate past Dispatch.
type Dispatcher struct {
	registry *Registry
	conn     Connector         // nil when the registry needs no persistence
	auth     ports.AuthService // nil for the public registry
	log      zerolog.Logger
}

func NewDispatcher(registry *Registry, conn Connector, auth ports.AuthService, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{registry: registry, conn: conn, auth: auth, log: log}
}

// Dispatch runs the named action with the given raw arguments.
func (d *Dispatcher) Dispatch(c echo.Context, name string, args []json.RawMessage) Envelope {
	entry, ok := d.registry.Lookup(name)
	if !ok {
		// Reachable route with no handler behind it: a config error, not a
		// user error, but it still answers with the uniform envelope.
		d.log.Error().Str("registry", d.registry.Name()).Str("action", name).Msg("unknown action")
		return d.fail(name, fmt.Sprintf("Function %s not found", name))
	}

	timer := prometheus.NewTimer(metrics.ActionDuration.WithLabelValues(d.registry.Name(), name))
	defer timer.ObserveDuration()

	if d.conn != nil {
		if err := d.conn.Connect(c.Request().Context()); err != nil {
			return d.fail(name, err.Error())
		}
	}

	if d.auth != nil && entry.MinRole > 0 {
		user, err := d.auth.VerifyAdminAuth(c, domain.SiteTypeAdmin)
		if err != nil {
			return d.fail(name, err.Error())
		}
		if user == nil || user.Role < entry.MinRole {
			return d.fail(name, domain.ErrNotAuthorized.Error())
		}
	}

	data, err := d.invoke(entry, c, args)
	if err != nil {
		d.logFailure(name, err)
		return d.fail(name, err.Error())
	}

	metrics.ActionsDispatchedTotal.WithLabelValues(d.registry.Name(), name, "success").Inc()
	return OK(data)
}

// invoke runs the handler with panic recovery so a handler bug cannot take
// down the request pipeline or leak past the envelope.
func (d *Dispatcher) invoke(entry Entry, c echo.Context, args []json.RawMessage) (data any, err error) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error().Str("action", entry.Name).Interface("panic", r).Msg("handler panic")
			err = errors.New("internal error")
		}
	}()
	return entry.Handler(c, args)
}

func (d *Dispatcher) fail(name, msg string) Envelope {
	metrics.ActionsDispatchedTotal.WithLabelValues(d.registry.Name(), name, "failure").Inc()
	return Fail(msg)
}

func (d *Dispatcher) logFailure(name string, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		d.log.Debug().Str("action", name).Str("error", err.Error()).Msg("action rejected")
		return
	}
	d.log.Warn().Err(err).Str("registry", d.registry.Name()).Str("action", name).Msg("action failed")
}
