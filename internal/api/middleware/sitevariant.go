package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/wheelhouse/site-api/internal/site"
)

// SiteTypeKey is the context key under which the resolved site variant is
// stored for downstream handlers.
const SiteTypeKey = "siteType"

// SiteVariant resolves the request's host to a site variant once per request
// and injects it into the echo context. Requests with no resolvable host
// pass through without a variant; handlers that require one reject them.
func SiteVariant(resolver *site.Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if st, err := resolver.SiteType(c.Request()); err == nil {
				c.Set(SiteTypeKey, st)
			}
			return next(c)
		}
	}
}
