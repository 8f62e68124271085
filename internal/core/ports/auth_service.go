package ports

import (
	"github.com/labstack/echo/v4"

	"github.com/wheelhouse/site-api/internal/core/domain"
)

// AuthService implements the admin session flow. Methods take the echo
// context because sessions live in signed cookies on the request/response.
type AuthService interface {
	// Login authenticates an admin by email and password and sets the admin
	// session cookie. Lookup and password failures are reported distinctly
	// (domain.ErrUserNotFound, domain.ErrInvalidPassword).
	Login(c echo.Context, email, password string) (*domain.UserInfo, error)

	// Logout deletes the session cookie unconditionally.
	Logout(c echo.Context) error

	// VerifyAdminAuth returns the current user for the session cookie, or
	// (nil, nil) when the request is unauthenticated. The user is re-fetched
	// from persistence on every call so role and active changes take effect
	// without a new login. Requests whose host does not resolve to
	// expectedSite are unauthenticated regardless of the cookie.
	VerifyAdminAuth(c echo.Context, expectedSite domain.SiteType) (*domain.UserInfo, error)
}
