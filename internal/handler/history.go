package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/model"
)

// historyPageSize is how many records each "show more" click adds.
const historyPageSize = 5

// historyPage is the view model of the transaction history.
type historyPage struct {
	User     model.User
	Records  []model.TransactionRecord
	Message  string
	HasMore  bool
	MoreLink string
}

// History renders the paginated transaction history. The page shows
// the first `limit` records; "show more" reloads with a larger limit
// so the rendered list grows without duplicating invoice numbers. The
// backend is paged with offset/limit underneath.
func (h *Handler) History(c echo.Context) error {
	s, ok, err := h.currentSession(c)
	if !ok {
		return err
	}

	limit := historyPageSize
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		limit = v
	}

	page := historyPage{User: sessionUser(s)}
	hist, err := h.API.GetTransactionHistory(c.Request().Context(), s.Token, 0, limit)
	if err != nil {
		if isAuthErr(err) {
			return h.Logout(c)
		}
		page.Message = friendlyMessage(err)
		return c.Render(http.StatusOK, "history.html", page)
	}

	page.Records = hist.Records
	// A full page suggests more records exist; the backend does not
	// report a total count.
	page.HasMore = len(hist.Records) >= limit
	page.MoreLink = "/transaction?limit=" + strconv.Itoa(limit+historyPageSize)
	return c.Render(http.StatusOK, "history.html", page)
}
