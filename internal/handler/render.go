package handler

import (
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// Renderer adapts html/template to Echo's Renderer interface. All view
// templates are parsed once at startup; a missing template is a
// programming error surfaced on first render.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses every *.html file under dir.
func NewRenderer(dir string) (*Renderer, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"rupiah": Rupiah,
	}).ParseGlob(dir + "/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// Rupiah formats an amount as Indonesian currency, e.g. 50000 ->
// "Rp50.000".
func Rupiah(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-Rp" + b.String()
	}
	return "Rp" + b.String()
}
