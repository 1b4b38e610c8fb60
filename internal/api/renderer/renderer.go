// Package renderer adapts html/template to Echo's Renderer interface. The
// view files are embedded so the binary is self-contained.
package renderer

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

// ViewRenderer satisfies echo.Renderer over the embedded template set.
type ViewRenderer struct {
	templates *template.Template
}

// New parses the embedded views. Template names are the file names without
// the .html extension ("home", "login", "register", "profile").
func New() (*ViewRenderer, error) {
	t, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &ViewRenderer{templates: t}, nil
}

// Render satisfies the echo.Renderer interface.
func (r *ViewRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name+".html", data)
}
