// Package session owns the client-side authentication state: the
// bearer token persisted in a cookie, the cached user profile, and the
// controller that moves a request between the anonymous and
// authenticated states.
package session

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// CookieName is the cookie carrying the bearer token. It is scoped to
// the root path so the route guard can see it on every request.
const CookieName = "token"

// ctxTokenKey stores the token in the echo context after the guard has
// resolved it, so downstream reads skip re-parsing the cookie.
const ctxTokenKey = "session_token"

// Token resolves the bearer token for a request. The fallback order is
// fixed: the explicit value wins, then the in-memory request context,
// then the persisted cookie. An empty return means no token exists on
// any surface.
func Token(c echo.Context, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if v, ok := c.Get(ctxTokenKey).(string); ok && v != "" {
		return v
	}
	if ck, err := c.Cookie(CookieName); err == nil && ck.Value != "" {
		return ck.Value
	}
	return ""
}

// SetToken writes the token to both surfaces in one call: the cookie
// (root path, so server-side checks see it) and the request context
// (so reads within this request see it before the response cookie
// round-trips).
func SetToken(c echo.Context, token string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	c.Set(ctxTokenKey, token)
}

// ClearToken removes the token from both surfaces. Clearing only one
// of them is a defect: the guard would keep treating the request as
// authenticated.
func ClearToken(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	c.Set(ctxTokenKey, "")

	// Scrub the cookie from the in-flight request too, so reads later
	// in the same request observe the cleared state instead of the
	// stale header.
	req := c.Request()
	cookies := req.Cookies()
	req.Header.Del("Cookie")
	for _, ck := range cookies {
		if ck.Name != CookieName {
			req.AddCookie(ck)
		}
	}
}
