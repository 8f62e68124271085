package site

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/wheelhouse/site-api/internal/core/domain"
)

func newTestResolver() *Resolver {
	return NewResolver(Config{
		AdminHosts:    []string{"admin.example.com"},
		CustomerHosts: []string{"www.example.com", "example.com"},
	})
}

func TestResolver_AdminHost(t *testing.T) {
	r := newTestResolver()
	req := httptest.NewRequest("GET", "/", nil)
	req.Host = "admin.example.com"

	st, err := r.SiteType(req)
	if err != nil {
		t.Fatalf("SiteType returned error: %v", err)
	}
	if st != domain.SiteTypeAdmin {
		t.Fatalf("expected admin, got %s", st)
	}
}

func TestResolver_UnlistedHostFallsBackToCustomer(t *testing.T) {
	r := newTestResolver()
	req := httptest.NewRequest("GET", "/", nil)
	req.Host = "evil.example.net"

	st, err := r.SiteType(req)
	if err != nil {
		t.Fatalf("SiteType returned error: %v", err)
	}
	if st != domain.SiteTypeCustomer {
		t.Fatalf("expected customer, got %s", st)
	}
}

func TestResolver_NoHost(t *testing.T) {
	r := newTestResolver()
	req := httptest.NewRequest("GET", "/", nil)
	req.Host = ""

	if _, err := r.Host(req); !errors.Is(err, domain.ErrHostNotFound) {
		t.Fatalf("expected ErrHostNotFound, got %v", err)
	}
}

func TestResolver_DevModeBypassesHost(t *testing.T) {
	r := NewResolver(Config{
		AdminHosts: []string{"admin.example.com"},
		DevMode:    true,
		DevHost:    "admin.example.com",
	})
	req := httptest.NewRequest("GET", "/", nil)
	req.Host = "whatever.localhost"

	st, err := r.SiteType(req)
	if err != nil {
		t.Fatalf("SiteType returned error: %v", err)
	}
	if st != domain.SiteTypeAdmin {
		t.Fatalf("expected dev host to resolve admin, got %s", st)
	}
}

func TestClientIP_HeaderPrecedence(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Forwarded-For", "10.0.0.2, 10.0.0.3")
	req.Header.Set("CF-Connecting-IP", "10.0.0.1")

	if ip := ClientIP(req); ip != "10.0.0.1" {
		t.Fatalf("expected CF-Connecting-IP to win, got %q", ip)
	}
}

func TestClientIP_ForwardedForChain(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Forwarded-For", " 10.0.0.2 , 10.0.0.3")

	if ip := ClientIP(req); ip != "10.0.0.2" {
		t.Fatalf("expected first chain element, got %q", ip)
	}
}

func TestClientIP_FallsBackToRemoteAddr(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "192.0.2.7:4711"

	if ip := ClientIP(req); ip != "192.0.2.7" {
		t.Fatalf("expected remote addr host, got %q", ip)
	}
}
