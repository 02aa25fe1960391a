package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careerlounge/consultancy-api/internal/core/ports"
)

// ctxClaims extracts the session claims injected by the Auth middleware and
// performs a fast-fail check before any service call: both user id and role
// must be present (presence proves the middleware ran and the token carried
// a full identity).
func ctxClaims(c echo.Context) (ports.SessionClaims, error) {
	userID, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if userID == "" || role == "" {
		return ports.SessionClaims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return ports.SessionClaims{UserID: userID, Role: role}, nil
}
