// Package views holds the embedded HTML templates for the web client.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"time"
)

//go:embed templates/*.html
var files embed.FS

// funcs are the helpers available inside every template.
var funcs = template.FuncMap{
	"fmtPrice": func(p float64) string {
		return fmt.Sprintf("%.2f", p)
	},
	"fmtTime": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Local().Format("Jan 2, 2006 3:04 PM")
	},
}

// Load parses every embedded template.
func Load() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(files, "templates/*.html"))
}
