package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mentorloop/mentorship-api/internal/api/session"
	"github.com/mentorloop/mentorship-api/internal/pkg/token"
)

// Context keys set by Auth and read by handlers.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxRole   = "role"
)

// Auth verifies the session token and injects the identity into the request
// context. The session cookie is checked first; a Bearer Authorization header
// is accepted as a fallback for non-browser clients. This check runs on every
// protected API route independently of the page gate.
func Auth(verifier *token.Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := session.Read(c)
			if raw == "" {
				raw = bearerToken(c.Request().Header.Get("Authorization"))
			}
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session token")
			}

			identity, err := verifier.Verify(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
			}

			c.Set(CtxUserID, identity.ID)
			c.Set(CtxEmail, identity.Email)
			c.Set(CtxRole, identity.Role)

			return next(c)
		}
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
