package codegen

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the built-in component template.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
