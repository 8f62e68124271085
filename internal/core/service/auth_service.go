package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/wheelhouse/site-api/internal/api/metrics"
	"github.com/wheelhouse/site-api/internal/core/domain"
	"github.com/wheelhouse/site-api/internal/core/ports"
	"github.com/wheelhouse/site-api/internal/session"
	"github.com/wheelhouse/site-api/internal/site"
)

// LoginLockout abstracts the failed-attempt counter (Redis).
type LoginLockout interface {
	TooManyAttempts(ctx context.Context, key string) (bool, error)
	RecordFailure(ctx context.Context, key string) error
	Reset(ctx context.Context, key string) error
}

// AuthService implements the admin login/logout/verify flow.
type AuthService struct {
	users      ports.UserRepository
	sessions   *session.Manager
	resolver   *site.Resolver
	lockout    LoginLockout // nil disables lockout
	loginDelay time.Duration
	log        zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	sessions *session.Manager,
	resolver *site.Resolver,
	lockout LoginLockout,
	loginDelay time.Duration,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		resolver:   resolver,
		lockout:    lockout,
		loginDelay: loginDelay,
		log:        log,
	}
}

// Login authenticates an admin user by email and password and, on success,
// sets the admin session cookie. Lookup misses and password mismatches are
// reported distinctly. Repeated failures for the same email trip the lockout.
func (s *AuthService) Login(c echo.Context, email, password string) (*domain.UserInfo, error) {
	ctx := c.Request().Context()
	key := strings.ToLower(strings.TrimSpace(email))

	if s.lockout != nil {
		blocked, err := s.lockout.TooManyAttempts(ctx, key)
		if err != nil {
			s.log.Warn().Err(err).Msg("lockout check failed, proceeding anyway")
		} else if blocked {
			metrics.LoginsTotal.WithLabelValues("locked_out").Inc()
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByEmail(ctx, key, domain.SiteTypeAdmin)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("user_not_found").Inc()
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		if s.lockout != nil {
			if err := s.lockout.RecordFailure(ctx, key); err != nil {
				s.log.Warn().Err(err).Msg("failed to record login failure")
			}
		}
		metrics.LoginsTotal.WithLabelValues("invalid_password").Inc()
		return nil, domain.ErrInvalidPassword
	}

	if s.lockout != nil {
		if err := s.lockout.Reset(ctx, key); err != nil {
			s.log.Warn().Err(err).Msg("failed to reset login failures")
		}
	}

	// Flat post-verification wait, configurable down to zero.
	if s.loginDelay > 0 {
		time.Sleep(s.loginDelay)
	}

	info := user.Info()
	if err := s.sessions.IssueAdmin(c, info); err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("user_id", info.ID).Msg("admin login")
	return info, nil
}

// Logout deletes the session cookie unconditionally and always succeeds.
func (s *AuthService) Logout(c echo.Context) error {
	s.sessions.ClearAdmin(c)
	return nil
}

// VerifyAdminAuth resolves the current admin session. It re-resolves the
// request's site variant, reads the token, and re-fetches the user from
// persistence, so role and active changes apply without a new login. Returns
// (nil, nil) when the request is unauthenticated for any reason: variant
// mismatch, missing/invalid token, unknown user, inactive user.
func (s *AuthService) VerifyAdminAuth(c echo.Context, expectedSite domain.SiteType) (*domain.UserInfo, error) {
	st, err := s.resolver.SiteType(c.Request())
	if err != nil || st != expectedSite {
		return nil, nil
	}

	snapshot := s.sessions.ReadAdmin(c)
	if snapshot == nil {
		return nil, nil
	}

	user, err := s.users.FindByID(c.Request().Context(), snapshot.ID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !user.Active || user.SiteType != expectedSite {
		return nil, nil
	}
	return user.Info(), nil
}
