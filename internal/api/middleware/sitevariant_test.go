package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/wheelhouse/site-api/internal/core/domain"
	"github.com/wheelhouse/site-api/internal/site"
)

func resolveVariant(t *testing.T, host string) (domain.SiteType, bool) {
	t.Helper()
	resolver := site.NewResolver(site.Config{AdminHosts: []string{"admin.example.com"}})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = host
	c := e.NewContext(req, httptest.NewRecorder())

	var got domain.SiteType
	var set bool
	next := func(c echo.Context) error {
		got, set = c.Get(SiteTypeKey).(domain.SiteType)
		return nil
	}
	if err := SiteVariant(resolver)(next)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return got, set
}

func TestSiteVariant(t *testing.T) {
	if st, ok := resolveVariant(t, "admin.example.com"); !ok || st != domain.SiteTypeAdmin {
		t.Fatalf("admin host resolved to %q (set=%v)", st, ok)
	}
	if st, ok := resolveVariant(t, "shop.example.com"); !ok || st != domain.SiteTypeCustomer {
		t.Fatalf("unlisted host resolved to %q (set=%v)", st, ok)
	}
}

func TestSiteVariantUnresolvableHostPassesThrough(t *testing.T) {
	if _, ok := resolveVariant(t, ""); ok {
		t.Fatalf("expected no variant for empty host")
	}
}
