// Package web embeds the HTML templates served by the application.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses every page and shared partial into one set. Each page is
// looked up by its file name, e.g. "recipes.html".
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(templateFS, "templates/*.html")
}
