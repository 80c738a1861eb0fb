package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/gateway"
	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/middleware"
	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/model"
	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/session"
)

// Handler bundles the dependencies every view needs: the backend
// gateway and the session controller. One instance serves all routes.
type Handler struct {
	API      *gateway.Client
	Sessions *session.Controller
}

func New(api *gateway.Client, sessions *session.Controller) *Handler {
	return &Handler{API: api, Sessions: sessions}
}

// currentSession loads the session for a protected page. When the
// token turned out to be invalid (the controller already logged the
// session out) the caller receives ok=false and the user is redirected
// to the login page. Non-auth fetch failures keep the session usable:
// the page renders without a profile rather than crashing.
func (h *Handler) currentSession(c echo.Context) (model.Session, bool, error) {
	s, err := h.Sessions.Current(c)
	if err != nil {
		var authErr *gateway.AuthError
		if errors.As(err, &authErr) {
			return model.Session{}, false, c.Redirect(http.StatusFound, middleware.LoginPath)
		}
		c.Logger().Warnf("profile fetch failed, rendering without profile: %v", err)
	}
	if !s.IsAuthenticated() {
		return model.Session{}, false, c.Redirect(http.StatusFound, middleware.LoginPath)
	}
	return s, true, nil
}

// friendlyMessage maps a gateway error to the inline message shown to
// the user. Auth errors are handled before this point.
func friendlyMessage(err error) string {
	var netErr *gateway.NetworkError
	if errors.As(err, &netErr) {
		return "Tidak dapat terhubung ke server. Silakan coba lagi."
	}
	var reqErr *gateway.RequestError
	if errors.As(err, &reqErr) && reqErr.Message != "" {
		return reqErr.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

// isAuthErr reports whether err demands ending the session.
func isAuthErr(err error) bool {
	var authErr *gateway.AuthError
	return errors.As(err, &authErr)
}

// sessionUser returns the user for templates, never nil.
func sessionUser(s model.Session) model.User {
	if s.User != nil {
		return *s.User
	}
	return model.User{}
}
