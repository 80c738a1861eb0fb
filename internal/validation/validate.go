// Package validation performs client-side form validation. Failures
// are field-scoped, rendered inline next to the input, and never reach
// the network.
package validation

import (
	"net/mail"
	"strconv"
	"strings"

	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/model"
)

// Errors maps a field name to its first violation message. The "_form"
// key carries failures that are not tied to a single field.
type Errors map[string]string

// Any reports whether at least one violation was recorded.
func (e Errors) Any() bool { return len(e) > 0 }

// Field returns the message for a field, or "" when the field passed.
func (e Errors) Field(name string) string { return e[name] }

const minPasswordLen = 6

func validEmail(s string) bool {
	if s == "" {
		return false
	}
	a, err := mail.ParseAddress(s)
	return err == nil && a.Address == s
}

// Login validates the login form.
func Login(email, password string) Errors {
	errs := Errors{}
	switch {
	case strings.TrimSpace(email) == "":
		errs["email"] = "Email wajib diisi"
	case !validEmail(email):
		errs["email"] = "Format email tidak valid"
	}
	if len(password) < minPasswordLen {
		errs["password"] = "Password minimal 6 karakter"
	}
	return errs
}

// Register validates the registration form, including the
// confirm-password match.
func Register(email, firstName, lastName, password, confirm string) Errors {
	errs := Login(email, password)
	if strings.TrimSpace(firstName) == "" {
		errs["first_name"] = "Nama depan wajib diisi"
	}
	if strings.TrimSpace(lastName) == "" {
		errs["last_name"] = "Nama belakang wajib diisi"
	}
	if confirm == "" {
		errs["confirm_password"] = "Konfirmasi password wajib diisi"
	} else if password != confirm {
		errs["confirm_password"] = "Password tidak sama"
	}
	return errs
}

// ProfileUpdate validates the editable profile fields.
func ProfileUpdate(firstName, lastName string) Errors {
	errs := Errors{}
	if strings.TrimSpace(firstName) == "" {
		errs["first_name"] = "Nama depan wajib diisi"
	}
	if strings.TrimSpace(lastName) == "" {
		errs["last_name"] = "Nama belakang wajib diisi"
	}
	return errs
}

// TopUpAmount parses and bounds-checks the top-up amount. Digits only;
// the accepted range is model.TopUpMin..model.TopUpMax inclusive.
func TopUpAmount(raw string) (int64, Errors) {
	errs := Errors{}
	cleaned := strings.TrimSpace(raw)
	n, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		errs["amount"] = "Nominal harus berupa angka"
		return 0, errs
	}
	if n < model.TopUpMin {
		errs["amount"] = "Minimum top up Rp" + formatID(model.TopUpMin)
		return n, errs
	}
	if n > model.TopUpMax {
		errs["amount"] = "Maksimum top up Rp" + formatID(model.TopUpMax)
		return n, errs
	}
	return n, errs
}

// formatID renders an amount with Indonesian thousand separators,
// e.g. 1000000 -> "1.000.000".
func formatID(n int64) string {
	s := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return b.String()
}
