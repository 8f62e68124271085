package service

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"

	"github.com/wheelhouse/site-api/internal/api/metrics"
	"github.com/wheelhouse/site-api/internal/core/domain"
	"github.com/wheelhouse/site-api/internal/session"
)

// SiteLockService gates the whole site behind a single development passcode.
// Unlocking issues a long-lived signed cookie; the lock is per browser.
type SiteLockService struct {
	passcode string
	sessions *session.Manager
}

func NewSiteLockService(passcode string, sessions *session.Manager) *SiteLockService {
	return &SiteLockService{passcode: passcode, sessions: sessions}
}

// Authenticate compares the supplied passcode in constant time and, on match,
// marks this browser as unlocked.
func (s *SiteLockService) Authenticate(c echo.Context, passcode string) (bool, error) {
	if subtle.ConstantTimeCompare([]byte(passcode), []byte(s.passcode)) != 1 {
		return false, domain.ErrInvalidPasscode
	}
	if err := s.sessions.IssueSiteLock(c); err != nil {
		return false, err
	}
	return true, nil
}

// Verify reports whether this browser holds a valid site-lock token.
func (s *SiteLockService) Verify(c echo.Context) bool {
	ok := s.sessions.VerifySiteLock(c)
	if ok {
		metrics.SiteLockChecksTotal.WithLabelValues("unlocked").Inc()
	} else {
		metrics.SiteLockChecksTotal.WithLabelValues("locked").Inc()
	}
	return ok
}
