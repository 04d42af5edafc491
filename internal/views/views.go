// Package views holds the server-rendered pages and their shared header and footer.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is the data every template receives.
type Page struct {
	Title  string
	Active string // nav entry to highlight

	Form   interface{}       // submitted values, re-rendered on failure
	Errors map[string]string // per-field messages, plus one per failed group

	Notice string      // success banner
	Failed string      // generation or submission failure banner
	Result interface{} // stub output to show
}

// HasError is used by templates to mark invalid inputs.
func (p Page) HasError(field string) bool {
	_, ok := p.Errors[field]
	return ok
}

var funcs = template.FuncMap{
	"year": func() int { return time.Now().Year() },
	"rfc3339": func(t time.Time) string {
		return t.Format(time.RFC3339)
	},
}

// Load parses every embedded template. Template names are the file names, e.g. "app.html".
func Load() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}
