package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mentorloop/mentorship-api/internal/api/metrics"
	"github.com/mentorloop/mentorship-api/internal/api/session"
	"github.com/mentorloop/mentorship-api/internal/core/domain"
	"github.com/mentorloop/mentorship-api/internal/pkg/token"
)

// publicPaths are reachable without a session.
var publicPaths = map[string]struct{}{
	"/":         {},
	"/login":    {},
	"/register": {},
}

// skippedPrefixes are outside the gate's jurisdiction: API routes carry their
// own handler-level checks, and assets and operational endpoints are open.
var skippedPrefixes = []string{
	"/api",
	"/health",
	"/metrics",
	"/swagger",
	"/assets",
	"/favicon.ico",
}

// rolePrefixes maps a role-restricted path prefix to the role it requires.
// Adding a role means extending this table and the domain role set together.
var rolePrefixes = map[string]string{
	"/admin":  domain.RoleAdmin,
	"/mentor": domain.RoleMentor,
	"/mentee": domain.RoleMentee,
}

// Gate is the coarse edge filter evaluated before any page handler. Public
// paths pass through; everything else needs a valid session token, and
// role-prefixed paths need the matching role. Failures redirect rather than
// error, since the gate fronts browser navigation. It is a first line of
// defense only: API handlers never rely on it and re-check authorization
// themselves.
func Gate(verifier *token.Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path

			for _, prefix := range skippedPrefixes {
				if pathHasPrefix(path, prefix) {
					return next(c)
				}
			}

			if _, ok := publicPaths[path]; ok {
				return next(c)
			}

			raw := session.Read(c)
			if raw == "" {
				metrics.GateRedirectsTotal.WithLabelValues("unauthenticated").Inc()
				return c.Redirect(http.StatusFound, "/login")
			}

			identity, err := verifier.Verify(raw)
			if err != nil {
				metrics.GateRedirectsTotal.WithLabelValues("invalid_token").Inc()
				return c.Redirect(http.StatusFound, "/login")
			}

			for prefix, requiredRole := range rolePrefixes {
				if pathHasPrefix(path, prefix) && identity.Role != requiredRole {
					metrics.GateRedirectsTotal.WithLabelValues("role_mismatch").Inc()
					return c.Redirect(http.StatusFound, "/dashboard")
				}
			}

			c.Set(CtxUserID, identity.ID)
			c.Set(CtxEmail, identity.Email)
			c.Set(CtxRole, identity.Role)

			return next(c)
		}
	}
}

// pathHasPrefix matches on whole path segments, so "/mentors" is not gated by
// the "/mentor" prefix and "/administration" is not gated by "/admin".
func pathHasPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
