// Package web holds the embedded HTML templates and static assets of the site.
package web

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"frotaweb/pkg/pages"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var ErrUnknownTemplate = errors.New("unknown page template")

// Page is the data handed to a page template.
type Page struct {
	*pages.View
	Form *FormView
}

// Renderer executes the page templates.
type Renderer struct {
	templates map[string]*template.Template
}

var funcs = template.FuncMap{
	"inc":  func(i int) int { return i + 1 },
	"dict": dict,
}

// dict builds a map from alternating keys and values so a partial can receive
// more than one argument.
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, errors.New("dict expects key/value pairs")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict key %v is not a string", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}

// NewRenderer parses every page template together with the shared layout and
// partials.
func NewRenderer() (*Renderer, error) {
	shared := []string{"templates/layout.html", "templates/blocks.html", "templates/form.html"}
	bodies := map[string]string{
		pages.TemplatePage:   "templates/page.html",
		pages.TemplateStatus: "templates/status.html",
	}

	r := &Renderer{templates: make(map[string]*template.Template, len(bodies))}
	for name, body := range bodies {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, append(shared, body)...)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.templates[name] = tmpl
	}
	return r, nil
}

// Render writes the page. The output is buffered so a template error never
// leaves a half written response.
func (r *Renderer) Render(w io.Writer, page Page) error {
	tmpl, ok := r.templates[page.Template]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTemplate, page.Template)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		return fmt.Errorf("failed to render %s: %w", page.Route, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// Static returns the embedded assets rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
