// Package templates holds the server-rendered HTML pages, embedded into the
// binary.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.tmpl
var files embed.FS

// Parse compiles every embedded template. Called once at startup.
func Parse() (*template.Template, error) {
	return template.ParseFS(files, "*.tmpl")
}
