package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/model"
	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/queue"
	queue_publisher "github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/service"
	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/validation"
)

// topUpPage is the view model of the top-up form.
type topUpPage struct {
	User    model.User
	Presets []int64
	Amount  string
	Errors  validation.Errors
	Message string
}

// resultPage renders the success/failed outcome of a mutation with the
// attempted amount, mirroring the confirmation modals of the flow.
type resultPage struct {
	User    model.User
	Amount  int64
	Detail  string
	Message string // failure reason, empty on success
	Back    string // where the close button leads
}

// TopUpPage renders the top-up form with the preset amounts.
func (h *Handler) TopUpPage(c echo.Context) error {
	s, ok, err := h.currentSession(c)
	if !ok {
		return err
	}
	return c.Render(http.StatusOK, "topup.html", topUpPage{
		User:    sessionUser(s),
		Presets: model.TopUpPresets,
	})
}

// TopUpSubmit validates the amount client-side, performs the top-up
// and renders the success or failed view. Failures always carry the
// attempted amount. On success a transaction.completed event is
// published; publish failures are ignored because the backend already
// committed the top-up.
func (h *Handler) TopUpSubmit(c echo.Context) error {
	s, ok, err := h.currentSession(c)
	if !ok {
		return err
	}
	raw := c.FormValue("amount")
	amount, errs := validation.TopUpAmount(raw)
	if errs.Any() {
		return c.Render(http.StatusBadRequest, "topup.html", topUpPage{
			User:    sessionUser(s),
			Presets: model.TopUpPresets,
			Amount:  raw,
			Errors:  errs,
		})
	}

	res, err := h.API.TopUp(c.Request().Context(), s.Token, amount)
	if err != nil {
		if isAuthErr(err) {
			return h.Logout(c)
		}
		return c.Render(http.StatusOK, "topup_failed.html", resultPage{
			User:    sessionUser(s),
			Amount:  amount,
			Message: friendlyMessage(err),
			Back:    "/topup",
		})
	}

	_ = queue_publisher.PublishTransactionCompleted(c.Request().Context(), queue.TransactionCompletedEvent{
		TransactionType: "TOPUP",
		TotalAmount:     res.TopUpAmount,
		Email:           sessionUser(s).Email,
		CreatedOn:       time.Now().UTC().Format(time.RFC3339),
	})

	return c.Render(http.StatusOK, "topup_success.html", resultPage{
		User:   sessionUser(s),
		Amount: res.TopUpAmount,
		Back:   "/dashboard",
	})
}
