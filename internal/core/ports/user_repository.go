package ports

import (
	"context"

	"github.com/wheelhouse/site-api/internal/core/domain"
)

// UserRepository defines persistence for dashboard users.
// Lookup misses return domain.ErrUserNotFound.
type UserRepository interface {
	// Create inserts the user and returns the generated id.
	Create(ctx context.Context, user *domain.User) (string, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string, siteType domain.SiteType) (*domain.User, error)
	ListBySiteType(ctx context.Context, siteType domain.SiteType) ([]*domain.User, error)
	SetActive(ctx context.Context, id string, active bool) error
}
