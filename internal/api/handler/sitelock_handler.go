package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wheelhouse/site-api/internal/core/service"
)

// SiteLockHandler exposes the lock state so the client can decide whether to
// render the passcode gate. Unlocking itself goes through the site-lock-auth
// action.
type SiteLockHandler struct {
	sitelock *service.SiteLockService
}

func NewSiteLockHandler(sitelock *service.SiteLockService) *SiteLockHandler {
	return &SiteLockHandler{sitelock: sitelock}
}

// Status reports whether this browser holds a valid site-lock token.
//
// @Summary      Site-lock status
// @Tags         site-lock
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /api/site-lock [get]
func (h *SiteLockHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{"unlocked": h.sitelock.Verify(c)})
}
