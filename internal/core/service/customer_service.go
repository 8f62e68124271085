package service

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/wheelhouse/site-api/internal/core/domain"
	"github.com/wheelhouse/site-api/internal/core/ports"
	"github.com/wheelhouse/site-api/internal/pkg/validation"
)

// CreateCustomerInput is the payload for the create-customer action.
type CreateCustomerInput struct {
	Name   string `json:"name"   validate:"required,min=1"`
	Email  string `json:"email"  validate:"required,email"`
	Phone  string `json:"phone"  validate:"required,min=1"`
	UserID string `json:"userId" validate:"omitempty"`
}

// CustomerService implements customer contact management.
type CustomerService struct {
	customers ports.CustomerRepository
	users     *UserService
	log       zerolog.Logger
}

func NewCustomerService(customers ports.CustomerRepository, users *UserService, log zerolog.Logger) *CustomerService {
	return &CustomerService{customers: customers, users: users, log: log}
}

// CreateCustomer validates the input and enforces two uniqueness checks in
// sequence: email first, then (when a link id is supplied) the link id.
// The first failure wins; both report the same conflict.
func (s *CustomerService) CreateCustomer(c echo.Context, in CreateCustomerInput) (string, error) {
	if err := validation.Struct(in); err != nil {
		return "", err
	}
	ctx := c.Request().Context()

	existing, err := s.customers.FindByEmail(ctx, in.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", domain.ErrCustomerExists
	}

	if in.UserID != "" {
		linked, err := s.customers.FindByUserID(ctx, in.UserID)
		if err != nil {
			return "", err
		}
		if linked != nil {
			return "", domain.ErrCustomerExists
		}
	}

	return s.customers.Create(ctx, &domain.Customer{
		Name:   in.Name,
		Email:  in.Email,
		Phone:  in.Phone,
		UserID: in.UserID,
	})
}

// ListCustomers returns every customer with its linked user resolved.
// A link whose target is missing or inactive reads as no linked user.
func (s *CustomerService) ListCustomers(ctx context.Context) ([]*domain.CustomerWithUser, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.CustomerWithUser, 0, len(customers))
	for _, customer := range customers {
		var user *domain.UserInfo
		if customer.UserID != "" {
			user = s.users.GetUserInfo(ctx, customer.UserID)
		}
		out = append(out, &domain.CustomerWithUser{
			ID:        customer.ID,
			Name:      customer.Name,
			Email:     customer.Email,
			Phone:     customer.Phone,
			User:      user,
			CreatedAt: customer.CreatedAt,
		})
	}
	return out, nil
}
