// Package session carries the signed bearer token in an HTTP cookie. The
// cookie is the only server-side trace of a sign-in: there is no session
// store, so logging out is simply deleting the cookie.
package session

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// CookieName is the cookie holding the signed session token.
const CookieName = "auth-token"

// MaxAge matches the token TTL so cookie and token expire together.
const MaxAge = 7 * 24 * time.Hour

// Set writes the session cookie. secure should be true in production so the
// cookie is only sent over TLS.
func Set(c echo.Context, token string, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear deletes the session cookie. Idempotent: clearing an absent cookie is
// a no-op for the client.
func Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Read returns the carried token, or "" when no session cookie is present.
func Read(c echo.Context) string {
	cookie, err := c.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
