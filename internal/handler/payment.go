package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/model"
	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/queue"
	queue_publisher "github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/service"
)

// paymentPage is the view model of the per-service payment form.
type paymentPage struct {
	User    model.User
	Service model.Service
	Balance int64
	Message string
}

// findService resolves a service code against the catalog, which is
// sourced fresh per view; there is no local copy to go stale.
func (h *Handler) findService(c echo.Context, token, code string) (model.Service, error) {
	services, err := h.API.GetServices(c.Request().Context(), token)
	if err != nil {
		return model.Service{}, err
	}
	for _, svc := range services {
		if svc.ServiceCode == code {
			return svc, nil
		}
	}
	return model.Service{}, echo.NewHTTPError(http.StatusNotFound, "service not found")
}

// ServicePage renders the payment form for one service: its tariff and
// the current balance next to the confirm button.
func (h *Handler) ServicePage(c echo.Context) error {
	s, ok, err := h.currentSession(c)
	if !ok {
		return err
	}
	svc, err := h.findService(c, s.Token, c.Param("service_code"))
	if err != nil {
		if isAuthErr(err) {
			return h.Logout(c)
		}
		if he, okHTTP := err.(*echo.HTTPError); okHTTP {
			return he
		}
		return c.Render(http.StatusOK, "payment.html", paymentPage{
			User:    sessionUser(s),
			Message: friendlyMessage(err),
		})
	}

	page := paymentPage{User: sessionUser(s), Service: svc}
	if bal, err := h.API.GetBalance(c.Request().Context(), s.Token); err == nil {
		page.Balance = bal
	} else if isAuthErr(err) {
		return h.Logout(c)
	}
	return c.Render(http.StatusOK, "payment.html", page)
}

// ServicePay confirms the payment. The backend computes the amount
// from the service code; the tariff shown to the user is only a
// preview. Failures render the failed view with the attempted amount.
func (h *Handler) ServicePay(c echo.Context) error {
	s, ok, err := h.currentSession(c)
	if !ok {
		return err
	}
	code := c.Param("service_code")
	svc, err := h.findService(c, s.Token, code)
	if err != nil {
		if isAuthErr(err) {
			return h.Logout(c)
		}
		if he, okHTTP := err.(*echo.HTTPError); okHTTP {
			return he
		}
		return c.Render(http.StatusOK, "payment_failed.html", resultPage{
			User:    sessionUser(s),
			Message: friendlyMessage(err),
			Back:    "/dashboard",
		})
	}

	tx, err := h.API.CreateTransaction(c.Request().Context(), s.Token, code)
	if err != nil {
		if isAuthErr(err) {
			return h.Logout(c)
		}
		return c.Render(http.StatusOK, "payment_failed.html", resultPage{
			User:    sessionUser(s),
			Amount:  svc.ServiceTariff,
			Detail:  svc.ServiceName,
			Message: friendlyMessage(err),
			Back:    "/dashboard/service/" + code,
		})
	}

	_ = queue_publisher.PublishTransactionCompleted(c.Request().Context(), queue.TransactionCompletedEvent{
		InvoiceNumber:   tx.InvoiceNumber,
		TransactionType: tx.TransactionType,
		ServiceCode:     tx.ServiceCode,
		ServiceName:     tx.ServiceName,
		TotalAmount:     tx.TotalAmount,
		Email:           sessionUser(s).Email,
		CreatedOn:       tx.CreatedOn,
	})

	return c.Render(http.StatusOK, "payment_success.html", resultPage{
		User:   sessionUser(s),
		Amount: tx.TotalAmount,
		Detail: tx.ServiceName,
		Back:   "/dashboard",
	})
}
