package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/session"
	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/utils"
)

// Route guard policy. A fixed set of public paths is reachable without
// a token; reaching them with a token redirects to the dashboard. All
// other paths require a token; reaching them without one redirects to
// the login page. The decision runs before any view logic.

const (
	LoginPath     = "/auth/login"
	DashboardPath = "/dashboard"
)

// publicPaths are reachable without a session. With a session they
// redirect to the dashboard instead.
var publicPaths = map[string]bool{
	"/":              true,
	"/auth/login":    true,
	"/auth/register": true,
}

// Decision is the outcome of the guard for one request.
type Decision struct {
	Redirect string // empty means the request is allowed through
}

// Allowed reports whether the request may proceed to its handler.
func (d Decision) Allowed() bool { return d.Redirect == "" }

// Decide is the pure guard function of (path, token presence). It is
// evaluated pre-render and has no side effects; the middleware around
// it performs the actual redirect.
func Decide(path string, hasToken bool) Decision {
	if publicPaths[path] {
		if hasToken {
			return Decision{Redirect: DashboardPath}
		}
		return Decision{}
	}
	if !hasToken {
		return Decision{Redirect: LoginPath}
	}
	return Decision{}
}

// skipGuard exempts infrastructure paths from the policy: static
// assets, the health check, and the JSON endpoints which answer 401
// themselves instead of redirecting.
func skipGuard(path string) bool {
	return strings.HasPrefix(path, "/static/") ||
		strings.HasPrefix(path, "/api/") ||
		path == "/healthz" ||
		path == "/favicon.ico"
}

// RouteGuard returns the Echo middleware enforcing the guard policy.
// A token that is JWT-shaped and already expired is treated as absent
// and cleared from the store, so the user lands on the login page
// instead of a page of failing backend calls.
func RouteGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if skipGuard(path) {
				return next(c)
			}
			tok := session.Token(c, "")
			if tok != "" && utils.TokenExpired(tok) {
				session.ClearToken(c)
				tok = ""
			}
			if d := Decide(path, tok != ""); !d.Allowed() {
				return c.Redirect(http.StatusFound, d.Redirect)
			}
			return next(c)
		}
	}
}
