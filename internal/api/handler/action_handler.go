package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/wheelhouse/site-api/internal/action"
	"github.com/wheelhouse/site-api/internal/api/middleware"
	"github.com/wheelhouse/site-api/internal/core/domain"
)

// ActionHandler serves the catch-all action endpoint for one site variant.
// The wildcard path segments joined by dashes form the action name, and the
// request body is the JSON array of handler arguments.
type ActionHandler struct {
	dispatcher *action.Dispatcher
	variant    domain.SiteType
}

func NewActionHandler(dispatcher *action.Dispatcher, variant domain.SiteType) *ActionHandler {
	return &ActionHandler{dispatcher: dispatcher, variant: variant}
}

// Handle dispatches one action call.
//
// The HTTP status carries no semantics beyond reachability: a dispatched
// action always answers 200 with the envelope, an unreadable body answers
// 500, and a variant mismatch answers 404 as if the route did not exist.
//
// @Summary      Dispatch a named action
// @Tags         actions
// @Accept       json
// @Produce      json
// @Param        path  path      string  true  "Dash-joined action name as path segments"
// @Param        body  body      []any   true  "JSON array of action arguments"
// @Success      200   {object}  action.Envelope
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/admin/{path} [post]
func (h *ActionHandler) Handle(c echo.Context) error {
	st, _ := c.Get(middleware.SiteTypeKey).(domain.SiteType)
	if st != h.variant {
		return echo.ErrNotFound
	}

	var args []json.RawMessage
	if err := json.NewDecoder(c.Request().Body).Decode(&args); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	name := strings.ReplaceAll(strings.Trim(c.Param("*"), "/"), "/", "-")
	return c.JSON(http.StatusOK, h.dispatcher.Dispatch(c, name, args))
}
