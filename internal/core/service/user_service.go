package service

import (
	"context"
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/wheelhouse/site-api/internal/core/domain"
	"github.com/wheelhouse/site-api/internal/core/ports"
	"github.com/wheelhouse/site-api/internal/pkg/validation"
)

// CreateUserInput is the payload for the create-user action.
type CreateUserInput struct {
	Email    string          `json:"email"    validate:"required,email"`
	Password string          `json:"password" validate:"required,min=8"`
	Name     string          `json:"name"     validate:"required,min=1"`
	Role     *int            `json:"role"     validate:"required"`
	SiteType domain.SiteType `json:"siteType" validate:"required,oneof=admin customer"`
}

// UserService implements dashboard user management.
type UserService struct {
	users ports.UserRepository
	auth  ports.AuthService
	audit *AuditRecorder
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, auth ports.AuthService, audit *AuditRecorder, log zerolog.Logger) *UserService {
	return &UserService{users: users, auth: auth, audit: audit, log: log}
}

// CreateUser validates the input, enforces email uniqueness per site variant,
// hashes the password, and records an audit entry attributed to the current
// admin session (if any). Returns the new user's id.
func (s *UserService) CreateUser(c echo.Context, in CreateUserInput) (string, error) {
	if err := validation.Struct(in); err != nil {
		return "", err
	}
	ctx := c.Request().Context()

	// Emails are stored lowercased; login normalizes the same way, so the
	// stored form is always the one lookups probe for.
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if _, err := s.users.FindByEmail(ctx, email, in.SiteType); err == nil {
		return "", domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	id, err := s.users.Create(ctx, &domain.User{
		Email:        email,
		Name:         in.Name,
		PasswordHash: string(hash),
		Role:         *in.Role,
		SiteType:     in.SiteType,
		Active:       true,
	})
	if err != nil {
		return "", err
	}

	s.audit.Record(c, "create-user", id, s.actorID(c))
	return id, nil
}

// ListUsers returns all dashboard users for the admin site variant. Password
// hashes never serialize.
func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.ListBySiteType(ctx, domain.SiteTypeAdmin)
}

// SetUserActive toggles a user's active flag. Deactivation takes effect on
// the user's next session verification.
func (s *UserService) SetUserActive(c echo.Context, id string, active bool) (bool, error) {
	if err := s.users.SetActive(c.Request().Context(), id, active); err != nil {
		return false, err
	}
	s.audit.Record(c, "set-user-active", id, s.actorID(c))
	return true, nil
}

// GetUserInfo returns the public snapshot of an active user, or nil when the
// id does not resolve or the user is inactive. Never errors on a miss.
func (s *UserService) GetUserInfo(ctx context.Context, id string) *domain.UserInfo {
	user, err := s.users.FindByID(ctx, id)
	if err != nil || !user.Active {
		return nil
	}
	return user.Info()
}

func (s *UserService) actorID(c echo.Context) string {
	actor, err := s.auth.VerifyAdminAuth(c, domain.SiteTypeAdmin)
	if err != nil || actor == nil {
		return ""
	}
	return actor.ID
}
