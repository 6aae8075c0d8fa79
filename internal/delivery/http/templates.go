package delivery_http

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

func mustLoadTemplates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.html"))
}
