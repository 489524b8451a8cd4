// Package render loads the HTML templates and plugs them into echo.
package render

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// Every template the handlers render. Startup fails if any is missing.
var required = []string{"check_device", "user_form", "new_device_form", "redirect"}

type Renderer struct {
	templates *template.Template
}

// Load parses <name>.html for each required template under dir.
func Load(dir string) (*Renderer, error) {
	root := template.New("")
	for _, name := range required {
		path := filepath.Join(dir, name+".html")
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", name, err)
		}
		if _, err := root.New(name).Parse(string(b)); err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		log.Debug().Str("template", name).Str("path", path).Msg("template loaded")
	}
	return &Renderer{templates: root}, nil
}

// Render implements echo.Renderer. Echo buffers the output, so a failed
// render never commits partial HTML to the response.
func (r *Renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
