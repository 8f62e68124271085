package ports

import (
	"context"

	"github.com/wheelhouse/site-api/internal/core/domain"
)

// CustomerRepository defines persistence for customer contact records.
// Find methods return (nil, nil) on a miss: every caller treats an absent
// customer as a normal outcome, not a failure.
type CustomerRepository interface {
	// Create inserts the customer and returns the generated id.
	Create(ctx context.Context, customer *domain.Customer) (string, error)
	FindByEmail(ctx context.Context, email string) (*domain.Customer, error)
	FindByUserID(ctx context.Context, userID string) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
}
