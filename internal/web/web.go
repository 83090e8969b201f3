// Package web holds the server-rendered login and admin pages.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses every page template. Pages are looked up by file name, e.g. "login.html".
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"active": func(current, section string) bool { return current == section },
	}).ParseFS(files, "templates/*.html")
}
