package action

import (
	"encoding/json"

	"github.com/labstack/echo/v4"

	"github.com/wheelhouse/site-api/internal/core/service"
)

// SiteDeps are the services the public action table closes over.
type SiteDeps struct {
	SiteLock *service.SiteLockService
}

// NewSiteRegistry builds the closed table of public-site actions. None of
// them touch persistence, so the public dispatcher runs without a connector.
func NewSiteRegistry(deps SiteDeps) *Registry {
	return NewRegistry("site",
		Entry{
			Name: "enquire",
			Handler: func(echo.Context, []json.RawMessage) (any, error) {
				return map[string]string{"message": "Hello, world!"}, nil
			},
		},
		Entry{
			Name: "site-lock-auth",
			Handler: func(c echo.Context, args []json.RawMessage) (any, error) {
				var passcode string
				if err := Args(args, &passcode); err != nil {
					return nil, err
				}
				return deps.SiteLock.Authenticate(c, passcode)
			},
		},
	)
}
