// Package web holds the embedded HTML views for the lead form.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates parses every embedded view. Views are addressed by file name,
// e.g. "index.html".
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templatesFS, "templates/*.html"))
}
