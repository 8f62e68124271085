package action

import (
	"encoding/json"

	"github.com/labstack/echo/v4"

	"github.com/wheelhouse/site-api/internal/core/domain"
	"github.com/wheelhouse/site-api/internal/core/ports"
	"github.com/wheelhouse/site-api/internal/core/service"
	"github.com/wheelhouse/site-api/internal/pkg/validation"
)

// AdminDeps are the services the admin action table closes over.
type AdminDeps struct {
	Auth      ports.AuthService
	Users     *service.UserService
	Customers *service.CustomerService
	Audit     *service.AuditRecorder
}

type loginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type statusMessage struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewAdminRegistry builds the closed table of admin dashboard actions.
// Entries without a MinRole (login, logout, enquire) are reachable without a
// session; everything else requires at least the given role tier.
func NewAdminRegistry(deps AdminDeps) *Registry {
	return NewRegistry("admin",
		Entry{
			Name: "enquire",
			Handler: func(echo.Context, []json.RawMessage) (any, error) {
				return map[string]string{"message": "Hello, world!"}, nil
			},
		},
		Entry{
			Name: "login",
			Handler: func(c echo.Context, args []json.RawMessage) (any, error) {
				var in loginInput
				if err := Args(args, &in); err != nil {
					return nil, err
				}
				if err := validation.Struct(in); err != nil {
					return nil, err
				}
				if _, err := deps.Auth.Login(c, in.Email, in.Password); err != nil {
					return nil, err
				}
				return statusMessage{Success: true, Message: "Login successful"}, nil
			},
		},
		Entry{
			Name: "logout",
			Handler: func(c echo.Context, _ []json.RawMessage) (any, error) {
				if err := deps.Auth.Logout(c); err != nil {
					return nil, err
				}
				return statusMessage{Success: true, Message: "Logout successful"}, nil
			},
		},
		Entry{
			Name:    "create-user",
			MinRole: domain.RoleAdmin,
			Handler: func(c echo.Context, args []json.RawMessage) (any, error) {
				var in service.CreateUserInput
				if err := Args(args, &in); err != nil {
					return nil, err
				}
				return deps.Users.CreateUser(c, in)
			},
		},
		Entry{
			Name:    "list-users",
			MinRole: domain.RoleAdmin,
			Handler: func(c echo.Context, _ []json.RawMessage) (any, error) {
				return deps.Users.ListUsers(c.Request().Context())
			},
		},
		Entry{
			Name:    "set-user-active",
			MinRole: domain.RoleAdmin,
			Handler: func(c echo.Context, args []json.RawMessage) (any, error) {
				var (
					id     string
					active bool
				)
				if err := Args(args, &id, &active); err != nil {
					return nil, err
				}
				return deps.Users.SetUserActive(c, id, active)
			},
		},
		Entry{
			Name:    "create-customer",
			MinRole: domain.RoleAdmin,
			Handler: func(c echo.Context, args []json.RawMessage) (any, error) {
				var in service.CreateCustomerInput
				if err := Args(args, &in); err != nil {
					return nil, err
				}
				return deps.Customers.CreateCustomer(c, in)
			},
		},
		Entry{
			Name:    "list-customers",
			MinRole: domain.RoleAdmin,
			Handler: func(c echo.Context, _ []json.RawMessage) (any, error) {
				return deps.Customers.ListCustomers(c.Request().Context())
			},
		},
		Entry{
			Name:    "list-logs",
			MinRole: domain.RoleSuperAdmin,
			Handler: func(c echo.Context, _ []json.RawMessage) (any, error) {
				return deps.Audit.ListRecent(c.Request().Context())
			},
		},
	)
}
