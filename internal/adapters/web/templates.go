// Package web renders the server-side HTML for the tabbed UI.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/studyloop/core/internal/domain/entities"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded page and fragment templates.
func NewRenderer() (*Renderer, error) {
	funcMap := template.FuncMap{
		"join": strings.Join,
		"add":  func(a, b int) int { return a + b },

		// Review status presentation
		"statusClass": func(s entities.ReviewStatus) string {
			return "review-" + string(s)
		},
		"statusText": func(s entities.ReviewStatus) string {
			switch s {
			case entities.ReviewStatusCompleted:
				return "done"
			case entities.ReviewStatusOverdue:
				return "overdue"
			default:
				return "pending"
			}
		},

		// Progress tint: green when all reviews are done, amber past
		// the halfway mark, red otherwise.
		"progressClass": func(completed, total int) string {
			switch {
			case completed == total:
				return "progress-complete"
			case completed > total/2:
				return "progress-midway"
			default:
				return "progress-early"
			}
		},
	}

	t, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// Render renders a named template.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
