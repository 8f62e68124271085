// Package site maps an incoming request to the site variant it belongs to.
// One deployment answers for several domains; the Host header decides whether
// the request sees the public marketing site or the admin dashboard.
package site

import (
	"net/http"

	"github.com/wheelhouse/site-api/internal/core/domain"
)

// Config lists the domains served by each variant. In development mode the
// Host header is ignored and DevHost is used instead, so a local instance can
// masquerade as any configured domain.
type Config struct {
	AdminHosts    []string
	CustomerHosts []string
	DevMode       bool
	DevHost       string
}

// Resolver resolves hosts to site variants. It has no side effects.
type Resolver struct {
	admin map[string]struct{}
	cfg   Config
}

func NewResolver(cfg Config) *Resolver {
	admin := make(map[string]struct{}, len(cfg.AdminHosts))
	for _, h := range cfg.AdminHosts {
		admin[h] = struct{}{}
	}
	return &Resolver{admin: admin, cfg: cfg}
}

// Host returns the effective host for req. It fails with
// domain.ErrHostNotFound when the request carries no Host header at all.
func (r *Resolver) Host(req *http.Request) (string, error) {
	host := req.Host
	if host == "" {
		host = req.Header.Get("Host")
	}
	if host == "" {
		return "", domain.ErrHostNotFound
	}
	if r.cfg.DevMode {
		return r.cfg.DevHost, nil
	}
	return host, nil
}

// SiteTypeForHost maps a host to its variant by membership in the configured
// admin list. Any unlisted host is served the customer site.
func (r *Resolver) SiteTypeForHost(host string) domain.SiteType {
	if _, ok := r.admin[host]; ok {
		return domain.SiteTypeAdmin
	}
	return domain.SiteTypeCustomer
}

// SiteType resolves req's host and returns the variant serving it.
func (r *Resolver) SiteType(req *http.Request) (domain.SiteType, error) {
	host, err := r.Host(req)
	if err != nil {
		return "", err
	}
	return r.SiteTypeForHost(host), nil
}
