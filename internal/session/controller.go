package session

import (
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/gateway"
	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/model"
)

// Controller owns the session state machine. Per request a session is
// resolved into exactly one of three states: Anonymous (no token),
// AuthenticatedNoProfile (token but no cached user) or
// AuthenticatedWithProfile (token and user). Views read the session
// through the controller and mutate it only through Login, Logout,
// UpdateUser and FetchProfile.
type Controller struct {
	api   *gateway.Client
	users UserCache
	ttl   time.Duration // lifetime of the cookie and the cached user
}

// NewController wires the controller to the backend gateway and the
// user cache. ttl bounds both the cookie and the cache entry.
func NewController(api *gateway.Client, users UserCache, ttl time.Duration) *Controller {
	return &Controller{api: api, users: users, ttl: ttl}
}

// Resolve builds the session for the current request from the token
// store and the user cache. It performs no network I/O: a token
// without a cached user yields AuthenticatedNoProfile and the caller
// decides whether to fetch the profile.
func (sc *Controller) Resolve(c echo.Context) model.Session {
	tok := Token(c, "")
	if tok == "" {
		return model.Session{}
	}
	u, err := sc.users.Get(c.Request().Context(), tok)
	if err != nil {
		// Cache trouble is not an auth failure; fall through to the
		// profile fetch instead of logging the user out.
		c.Logger().Warnf("session: user cache read failed: %v", err)
		u = nil
	}
	return model.Session{Token: tok, User: u}
}

// Current resolves the session and, when the profile is missing,
// fetches it from the backend exactly once. Handlers on protected
// pages use this as their single entry point.
func (sc *Controller) Current(c echo.Context) (model.Session, error) {
	s := sc.Resolve(c)
	if s.State() != model.AuthenticatedNoProfile {
		return s, nil
	}
	return sc.FetchProfile(c, s)
}

// FetchProfile loads the profile from the backend and caches it.
//
// Failure policy (deliberate, uniform): only an AuthError demotes the
// session to Anonymous via Logout, because it proves the token is
// invalid. Any other failure (network, backend hiccup) keeps the token
// and leaves the session in AuthenticatedNoProfile so a later request
// can retry.
func (sc *Controller) FetchProfile(c echo.Context, s model.Session) (model.Session, error) {
	if s.Token == "" {
		return s, gateway.ErrNoToken
	}
	p, err := sc.api.GetProfile(c.Request().Context(), s.Token)
	if err != nil {
		var authErr *gateway.AuthError
		if errors.As(err, &authErr) {
			sc.Logout(c)
			return model.Session{}, err
		}
		return s, err
	}
	u := p.User
	if err := sc.users.Set(c.Request().Context(), s.Token, u); err != nil {
		c.Logger().Warnf("session: user cache write failed: %v", err)
	}
	s.User = &u
	return s, nil
}

// Login establishes an authenticated session from a token and user the
// caller already holds, with no network round-trip: the token goes to
// both store surfaces and the user into the cache.
func (sc *Controller) Login(c echo.Context, token string, u model.User) model.Session {
	SetToken(c, token, sc.ttl)
	if err := sc.users.Set(c.Request().Context(), token, u); err != nil {
		c.Logger().Warnf("session: user cache write failed: %v", err)
	}
	return model.Session{Token: token, User: &u}
}

// LoginToken establishes a session from a token alone, used when the
// profile could not be fetched during login. The session starts in
// AuthenticatedNoProfile and the profile is loaded lazily by Current.
func (sc *Controller) LoginToken(c echo.Context, token string) model.Session {
	SetToken(c, token, sc.ttl)
	return model.Session{Token: token}
}

// Logout clears the token from both surfaces and drops the cached
// user. It is idempotent: calling it without an active session is a
// no-op beyond the (caller-issued) redirect to the login page.
func (sc *Controller) Logout(c echo.Context) {
	tok := Token(c, "")
	if tok != "" {
		if err := sc.users.Delete(c.Request().Context(), tok); err != nil {
			c.Logger().Warnf("session: user cache delete failed: %v", err)
		}
	}
	ClearToken(c)
}

// UpdateUser replaces the cached user after a successful profile
// mutation. The token is untouched.
func (sc *Controller) UpdateUser(c echo.Context, s model.Session, u model.User) model.Session {
	if s.Token != "" {
		if err := sc.users.Set(c.Request().Context(), s.Token, u); err != nil {
			c.Logger().Warnf("session: user cache write failed: %v", err)
		}
	}
	s.User = &u
	return s
}
