// Package session issues and validates the two signed cookie tokens the
// deployment relies on: the site-wide dev lock and the admin identity.
// Both flows share one HS256 signing mechanism but use independent secrets,
// cookie names, and lifetimes.
package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/wheelhouse/site-api/internal/core/domain"
)

const (
	AdminCookie    = "admin-token"
	SiteLockCookie = "dev-auth"

	defaultAdminTTL    = time.Hour
	defaultSiteLockTTL = 24 * time.Hour
)

// Config holds the signing secrets and token lifetimes. Both secrets come
// from configuration; neither is ever hardcoded.
type Config struct {
	AdminSecret    string
	SiteLockSecret string
	AdminTTL       time.Duration
	SiteLockTTL    time.Duration
}

// Manager signs, verifies, and stores session tokens in cookies.
type Manager struct {
	cfg Config
}

func NewManager(cfg Config) *Manager {
	if cfg.AdminTTL <= 0 {
		cfg.AdminTTL = defaultAdminTTL
	}
	if cfg.SiteLockTTL <= 0 {
		cfg.SiteLockTTL = defaultSiteLockTTL
	}
	return &Manager{cfg: cfg}
}

// adminClaims carries the public snapshot of the user at login time. The
// snapshot is only used to recover the user id; authorization state is
// re-fetched from persistence on every verification.
type adminClaims struct {
	User domain.UserInfo `json:"user"`
	jwt.RegisteredClaims
}

// IssueAdmin signs an admin token for user and sets the session cookie.
func (m *Manager) IssueAdmin(c echo.Context, user *domain.UserInfo) error {
	now := time.Now()
	claims := adminClaims{
		User: *user,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.cfg.AdminTTL)),
		},
	}
	token, err := sign(claims, m.cfg.AdminSecret)
	if err != nil {
		return err
	}
	setCookie(c, AdminCookie, token, now.Add(m.cfg.AdminTTL))
	return nil
}

// ReadAdmin returns the user snapshot from the admin cookie, or nil when the
// cookie is absent, expired, or fails verification. A failed verification
// deletes the cookie.
func (m *Manager) ReadAdmin(c echo.Context) *domain.UserInfo {
	cookie, err := c.Cookie(AdminCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	var claims adminClaims
	if err := parse(cookie.Value, &claims, m.cfg.AdminSecret); err != nil {
		deleteCookie(c, AdminCookie)
		return nil
	}
	return &claims.User
}

// ClearAdmin deletes the admin session cookie unconditionally.
func (m *Manager) ClearAdmin(c echo.Context) {
	deleteCookie(c, AdminCookie)
}

// IssueSiteLock marks this browser as unlocked for the configured lifetime.
func (m *Manager) IssueSiteLock(c echo.Context) error {
	now := time.Now()
	claims := jwt.MapClaims{
		"token": "dev-token",
		"exp":   now.Add(m.cfg.SiteLockTTL).Unix(),
	}
	token, err := sign(claims, m.cfg.SiteLockSecret)
	if err != nil {
		return err
	}
	setCookie(c, SiteLockCookie, token, now.Add(m.cfg.SiteLockTTL))
	return nil
}

// VerifySiteLock reports whether this browser holds a valid site-lock token.
// An invalid token is deleted.
func (m *Manager) VerifySiteLock(c echo.Context) bool {
	cookie, err := c.Cookie(SiteLockCookie)
	if err != nil || cookie.Value == "" {
		return false
	}
	if err := parse(cookie.Value, jwt.MapClaims{}, m.cfg.SiteLockSecret); err != nil {
		deleteCookie(c, SiteLockCookie)
		return false
	}
	return true
}

var errInvalidToken = errors.New("invalid token")

func sign(claims jwt.Claims, secret string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

func parse(token string, claims jwt.Claims, secret string) error {
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return err
	}
	if !tkn.Valid {
		return errInvalidToken
	}
	return nil
}

func setCookie(c echo.Context, name, value string, expires time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func deleteCookie(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
	})
}
