package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/gateway"
	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/middleware"
	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/validation"
)

// authPage is the view model shared by the login and register pages.
type authPage struct {
	Email     string
	FirstName string
	LastName  string
	Errors    validation.Errors
	Message   string // inline, dismissible error from the backend
	Notice    string // e.g. "registration succeeded, please log in"
}

// LoginPage renders the login form.
func (h *Handler) LoginPage(c echo.Context) error {
	page := authPage{}
	if c.QueryParam("registered") == "1" {
		page.Notice = "Registrasi berhasil. Silakan login."
	}
	return c.Render(http.StatusOK, "login.html", page)
}

// LoginSubmit handles the login form post: validate locally, exchange
// credentials for a token, fetch the profile and establish the
// session. A failed profile fetch after a successful login does not
// fail the login; the session starts without a profile and the
// dashboard fetches it lazily.
func (h *Handler) LoginSubmit(c echo.Context) error {
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")

	if errs := validation.Login(email, password); errs.Any() {
		return c.Render(http.StatusBadRequest, "login.html", authPage{Email: email, Errors: errs})
	}

	ctx := c.Request().Context()
	token, err := h.API.Login(ctx, email, password)
	if err != nil {
		return c.Render(http.StatusUnauthorized, "login.html", authPage{
			Email:   email,
			Message: friendlyMessage(err),
		})
	}

	if p, err := h.API.GetProfile(ctx, token); err == nil {
		h.Sessions.Login(c, token, p.User)
	} else {
		c.Logger().Warnf("login: profile fetch failed, continuing with token only: %v", err)
		h.Sessions.LoginToken(c, token)
	}
	return c.Redirect(http.StatusFound, middleware.DashboardPath)
}

// RegisterPage renders the registration form.
func (h *Handler) RegisterPage(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", authPage{})
}

// RegisterSubmit handles the registration form post. On success the
// user is sent to the login page; the backend does not issue a token
// on registration.
func (h *Handler) RegisterSubmit(c echo.Context) error {
	email := strings.TrimSpace(c.FormValue("email"))
	firstName := strings.TrimSpace(c.FormValue("first_name"))
	lastName := strings.TrimSpace(c.FormValue("last_name"))
	password := c.FormValue("password")
	confirm := c.FormValue("confirm_password")

	page := authPage{Email: email, FirstName: firstName, LastName: lastName}
	if errs := validation.Register(email, firstName, lastName, password, confirm); errs.Any() {
		page.Errors = errs
		return c.Render(http.StatusBadRequest, "register.html", page)
	}

	err := h.API.Register(c.Request().Context(), gateway.RegisterRequest{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Password:  password,
	})
	if err != nil {
		page.Message = friendlyMessage(err)
		return c.Render(http.StatusBadRequest, "register.html", page)
	}
	return c.Redirect(http.StatusFound, middleware.LoginPath+"?registered=1")
}

// Logout ends the session and returns to the login page. Calling it
// twice is harmless: the second call clears nothing and redirects the
// same way.
func (h *Handler) Logout(c echo.Context) error {
	h.Sessions.Logout(c)
	return c.Redirect(http.StatusFound, middleware.LoginPath)
}
