package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mentorloop/mentorship-api/internal/api/middleware"
	"github.com/mentorloop/mentorship-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call. An empty user id or role means the
// middleware did not run; reject rather than proceed unauthenticated.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	id, _ := c.Get(middleware.CtxUserID).(string)
	role, _ := c.Get(middleware.CtxRole).(string)
	if id == "" || role == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	email, _ := c.Get(middleware.CtxEmail).(string)

	return domain.Identity{ID: id, Email: email, Role: role}, nil
}

// requireRole re-checks the caller's role at the handler boundary. Kept
// independent from the route-group RBAC middleware so a routing gap cannot
// silently grant access.
func requireRole(identity domain.Identity, roles ...string) error {
	for _, r := range roles {
		if identity.Role == r {
			return nil
		}
	}
	return domain.ErrForbidden
}
