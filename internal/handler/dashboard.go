package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/model"
)

// dashboardPage is the view model of the main dashboard: greeting,
// service grid and banner strip. The balance is not rendered
// server-side; the page polls /api/balance instead so it stays fresh
// while the tab is open.
type dashboardPage struct {
	User        model.User
	Services    []model.Service
	ServicesErr string
	Banners     []model.Banner
	BannersErr  string
}

// Dashboard renders the landing page for an authenticated session.
// Catalog and banner failures are independent: each section renders an
// inline retry message while the rest of the page stays usable.
func (h *Handler) Dashboard(c echo.Context) error {
	s, ok, err := h.currentSession(c)
	if !ok {
		return err
	}
	ctx := c.Request().Context()
	page := dashboardPage{User: sessionUser(s)}

	services, err := h.API.GetServices(ctx, s.Token)
	if err != nil {
		if isAuthErr(err) {
			return h.Logout(c)
		}
		page.ServicesErr = friendlyMessage(err)
	}
	page.Services = services

	banners, err := h.API.GetBanners(ctx, s.Token)
	if err != nil {
		if isAuthErr(err) {
			return h.Logout(c)
		}
		page.BannersErr = friendlyMessage(err)
	}
	page.Banners = banners

	return c.Render(http.StatusOK, "dashboard.html", page)
}

// APIBalance serves the JSON consumed by the balance card's 10 second
// polling loop. It answers 401 instead of redirecting so the page
// script can decide to send the browser to the login page. The request
// context bounds the backend call: closing the tab cancels it.
func (h *Handler) APIBalance(c echo.Context) error {
	s := h.Sessions.Resolve(c)
	if !s.IsAuthenticated() {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	bal, err := h.API.GetBalance(c.Request().Context(), s.Token)
	if err != nil {
		if isAuthErr(err) {
			h.Sessions.Logout(c)
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "session expired"})
		}
		return c.JSON(http.StatusBadGateway, echo.Map{"message": friendlyMessage(err)})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"balance":   bal,
		"formatted": Rupiah(bal),
	})
}
