// Package web holds the browser front end. The page only talks to the JSON API.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates is parsed once at startup.
var Templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))
