package action

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/wheelhouse/site-api/internal/core/domain"
)

type stubAuth struct {
	user *domain.UserInfo
	err  error
}

func (s *stubAuth) Login(echo.Context, string, string) (*domain.UserInfo, error) {
	return s.user, s.err
}

func (s *stubAuth) Logout(echo.Context) error { return nil }

func (s *stubAuth) VerifyAdminAuth(echo.Context, domain.SiteType) (*domain.UserInfo, error) {
	return s.user, s.err
}

type stubConnector struct {
	err   error
	calls int
}

func (s *stubConnector) Connect(context.Context) error {
	s.calls++
	return s.err
}

func newTestContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func echoArgs(name string) Entry {
	return Entry{
		Name: name,
		Handler: func(_ echo.Context, args []json.RawMessage) (any, error) {
			var s string
			if err := Args(args, &s); err != nil {
				return nil, err
			}
			return s, nil
		},
	}
}

func TestDispatch_UnknownAction(t *testing.T) {
	d := NewDispatcher(NewRegistry("admin"), nil, nil, zerolog.Nop())

	env := d.Dispatch(newTestContext(), "nuke-users", nil)
	if env.Success {
		t.Fatalf("expected failure")
	}
	if env.Error != "Function nuke-users not found" {
		t.Fatalf("unexpected error message: %q", env.Error)
	}
}

func TestDispatch_Success(t *testing.T) {
	d := NewDispatcher(NewRegistry("site", echoArgs("echo")), nil, nil, zerolog.Nop())

	env := d.Dispatch(newTestContext(), "echo", []json.RawMessage{json.RawMessage(`"hi"`)})
	if !env.Success {
		t.Fatalf("expected success, got error %q", env.Error)
	}
	if env.Data != "hi" {
		t.Fatalf("unexpected data: %v", env.Data)
	}
}

func TestDispatch_HandlerErrorFlattened(t *testing.T) {
	entry := Entry{
		Name: "boom",
		Handler: func(echo.Context, []json.RawMessage) (any, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	d := NewDispatcher(NewRegistry("admin", entry), nil, nil, zerolog.Nop())

	env := d.Dispatch(newTestContext(), "boom", nil)
	if env.Success || env.Error != "User not found" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestDispatch_PanicRecovered(t *testing.T) {
	entry := Entry{
		Name: "panic",
		Handler: func(echo.Context, []json.RawMessage) (any, error) {
			panic("handler bug")
		},
	}
	d := NewDispatcher(NewRegistry("admin", entry), nil, nil, zerolog.Nop())

	env := d.Dispatch(newTestContext(), "panic", nil)
	if env.Success || env.Error != "internal error" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestDispatch_ConnectorFailureFailsEveryCall(t *testing.T) {
	conn := &stubConnector{err: domain.ErrMissingDBCred}
	d := NewDispatcher(NewRegistry("admin", echoArgs("echo")), conn, nil, zerolog.Nop())

	for i := 0; i < 2; i++ {
		env := d.Dispatch(newTestContext(), "echo", []json.RawMessage{json.RawMessage(`"x"`)})
		if env.Success || env.Error != "MongoDB credentials not found" {
			t.Fatalf("unexpected envelope: %+v", env)
		}
	}
	if conn.calls != 2 {
		t.Fatalf("expected connector attempted per call, got %d", conn.calls)
	}
}

func TestDispatch_MinRoleBelowThreshold(t *testing.T) {
	entry := Entry{
		Name:    "guarded",
		MinRole: domain.RoleSuperAdmin,
		Handler: func(echo.Context, []json.RawMessage) (any, error) {
			t.Fatalf("handler must not run")
			return nil, nil
		},
	}
	auth := &stubAuth{user: &domain.UserInfo{ID: "u1", Role: domain.RoleAdmin}}
	d := NewDispatcher(NewRegistry("admin", entry), nil, auth, zerolog.Nop())

	env := d.Dispatch(newTestContext(), "guarded", nil)
	if env.Success || env.Error != "Not authorized" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestDispatch_MinRoleMet(t *testing.T) {
	entry := Entry{
		Name:    "guarded",
		MinRole: domain.RoleSuperAdmin,
		Handler: func(echo.Context, []json.RawMessage) (any, error) {
			return "ran", nil
		},
	}
	auth := &stubAuth{user: &domain.UserInfo{ID: "u1", Role: domain.RoleSuperAdmin}}
	d := NewDispatcher(NewRegistry("admin", entry), nil, auth, zerolog.Nop())

	env := d.Dispatch(newTestContext(), "guarded", nil)
	if !env.Success || env.Data != "ran" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestDispatch_MinRoleWithoutSession(t *testing.T) {
	entry := Entry{
		Name:    "guarded",
		MinRole: domain.RoleAdmin,
		Handler: func(echo.Context, []json.RawMessage) (any, error) {
			t.Fatalf("handler must not run")
			return nil, nil
		},
	}
	d := NewDispatcher(NewRegistry("admin", entry), nil, &stubAuth{}, zerolog.Nop())

	env := d.Dispatch(newTestContext(), "guarded", nil)
	if env.Success || env.Error != "Not authorized" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestDispatch_UngatedActionReachableWithoutSession(t *testing.T) {
	d := NewDispatcher(NewRegistry("admin", echoArgs("login")), nil, &stubAuth{}, zerolog.Nop())

	env := d.Dispatch(newTestContext(), "login", []json.RawMessage{json.RawMessage(`"ok"`)})
	if !env.Success {
		t.Fatalf("expected ungated action to run, got %q", env.Error)
	}
}

func TestArgs_TooFew(t *testing.T) {
	var a, b string
	err := Args([]json.RawMessage{json.RawMessage(`"one"`)}, &a, &b)
	if err == nil {
		t.Fatalf("expected error for missing argument")
	}
}

func TestArgs_TypeMismatch(t *testing.T) {
	var n int
	err := Args([]json.RawMessage{json.RawMessage(`"nan"`)}, &n)
	if err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestArgs_SurplusIgnored(t *testing.T) {
	var a string
	raw := []json.RawMessage{json.RawMessage(`"one"`), json.RawMessage(`"two"`)}
	if err := Args(raw, &a); err != nil {
		t.Fatalf("Args returned error: %v", err)
	}
	if a != "one" {
		t.Fatalf("unexpected value: %q", a)
	}
}

func TestNewRegistry_DuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on duplicate entry")
		}
	}()
	NewRegistry("admin", echoArgs("dup"), echoArgs("dup"))
}

