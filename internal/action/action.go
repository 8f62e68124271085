// Package action implements the named server-side operations behind the
// catch-all HTTP endpoints. Each site variant owns a closed registry of
// name→handler entries built once at startup; the dispatcher resolves names,
// enforces the optional minimum-role gate, and normalizes every outcome into
// a uniform envelope that crosses the HTTP boundary verbatim.
package action

import (
	"encoding/json"
	"fmt"

	"github.com/labstack/echo/v4"
)

// Handler executes one named operation. Arguments arrive as the raw elements
// of the JSON array posted by the client; Args decodes them positionally.
type Handler func(c echo.Context, args []json.RawMessage) (any, error)

// Entry binds a name to its handler. MinRole, when positive, is the minimum
// session role required to invoke the handler; zero means no gate, which is
// how unauthenticated-reachable actions such as login are expressed.
type Entry struct {
	Name    string
	Handler Handler
	MinRole int
}

// Registry is a fixed name→entry table. The set of actions is closed and
// known at build time; there is no runtime registration.
type Registry struct {
	name    string
	entries map[string]Entry
}

// NewRegistry builds a registry from entries. Duplicate names are a
// programming error and panic at startup.
func NewRegistry(name string, entries ...Entry) *Registry {
	m := make(map[string]Entry, len(entries))
	for _, e := range entries {
		if _, dup := m[e.Name]; dup {
			panic(fmt.Sprintf("action: duplicate entry %q in %s registry", e.Name, name))
		}
		m[e.Name] = e
	}
	return &Registry{name: name, entries: m}
}

// Lookup resolves a name to its entry.
func (r *Registry) Lookup(name string) (Entry, bool) {
	e, ok := r.entries[name]
	return e, ok
}

// Name identifies the registry ("admin" or "site") in logs and metrics.
func (r *Registry) Name() string {
	return r.name
}

// Envelope is the uniform response shape for every dispatched action.
// Exactly one of Data and Error is meaningful; errors carry only a
// human-readable message, never a kind or stack.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK wraps a successful result.
func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// Fail wraps a failure message.
func Fail(msg string) Envelope {
	return Envelope{Success: false, Error: msg}
}

// Args decodes the positional raw arguments into the supplied pointers.
// Surplus arguments are ignored; callers may always send more than a
// handler consumes.
func Args(raw []json.RawMessage, dst ...any) error {
	if len(raw) < len(dst) {
		return fmt.Errorf("expected %d arguments, got %d", len(dst), len(raw))
	}
	for i, d := range dst {
		if err := json.Unmarshal(raw[i], d); err != nil {
			return fmt.Errorf("argument %d: %w", i+1, err)
		}
	}
	return nil
}
