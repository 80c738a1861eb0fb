package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/gateway"
	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/model"
	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/validation"
)

// accountPage is the view model of the profile page.
type accountPage struct {
	User    model.User
	Errors  validation.Errors
	Message string // inline backend error
	Notice  string // success confirmation
}

// Account renders the profile page with the edit form and the avatar
// uploader.
func (h *Handler) Account(c echo.Context) error {
	s, ok, err := h.currentSession(c)
	if !ok {
		return err
	}
	return c.Render(http.StatusOK, "account.html", accountPage{User: sessionUser(s)})
}

// AccountUpdate handles the profile edit post. The cached user is
// patched only after the backend confirms the update, via the pure
// reducer in the model package.
func (h *Handler) AccountUpdate(c echo.Context) error {
	s, ok, err := h.currentSession(c)
	if !ok {
		return err
	}
	firstName := strings.TrimSpace(c.FormValue("first_name"))
	lastName := strings.TrimSpace(c.FormValue("last_name"))

	page := accountPage{User: sessionUser(s)}
	if errs := validation.ProfileUpdate(firstName, lastName); errs.Any() {
		page.Errors = errs
		return c.Render(http.StatusBadRequest, "account.html", page)
	}

	patch := model.ProfilePatch{FirstName: firstName, LastName: lastName}
	if _, err := h.API.UpdateProfile(c.Request().Context(), s.Token, patch); err != nil {
		if isAuthErr(err) {
			return h.Logout(c)
		}
		page.Message = friendlyMessage(err)
		return c.Render(http.StatusBadRequest, "account.html", page)
	}

	updated := model.ApplyProfilePatch(sessionUser(s), patch)
	s = h.Sessions.UpdateUser(c, s, updated)
	page.User = sessionUser(s)
	page.Notice = "Profil berhasil diperbarui"
	return c.Render(http.StatusOK, "account.html", page)
}

// AccountImage handles the avatar upload. The size limit is enforced
// here, before the backend is called: a file of exactly 100KB passes,
// one byte more is rejected.
func (h *Handler) AccountImage(c echo.Context) error {
	s, ok, err := h.currentSession(c)
	if !ok {
		return err
	}
	page := accountPage{User: sessionUser(s)}

	fh, err := c.FormFile("file")
	if err != nil {
		page.Errors = validation.Errors{"file": "Pilih gambar terlebih dahulu"}
		return c.Render(http.StatusBadRequest, "account.html", page)
	}
	if fh.Size > gateway.MaxImageBytes {
		page.Errors = validation.Errors{"file": "Ukuran gambar maksimal 100KB"}
		return c.Render(http.StatusBadRequest, "account.html", page)
	}
	src, err := fh.Open()
	if err != nil {
		page.Message = "Gagal membaca file"
		return c.Render(http.StatusBadRequest, "account.html", page)
	}
	defer src.Close()
	content, err := io.ReadAll(src)
	if err != nil {
		page.Message = "Gagal membaca file"
		return c.Render(http.StatusBadRequest, "account.html", page)
	}

	imageURL, err := h.API.UploadProfileImage(c.Request().Context(), s.Token, fh.Filename, content)
	if err != nil {
		if isAuthErr(err) {
			return h.Logout(c)
		}
		page.Message = friendlyMessage(err)
		return c.Render(http.StatusBadRequest, "account.html", page)
	}

	updated := sessionUser(s)
	updated.ProfileImage = imageURL
	s = h.Sessions.UpdateUser(c, s, updated)
	page.User = sessionUser(s)
	page.Notice = "Foto profil berhasil diperbarui"
	return c.Render(http.StatusOK, "account.html", page)
}
