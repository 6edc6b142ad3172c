package formbuilder

import (
	"io/fs"

	"github.com/goliatone/go-formbuilder/pkg/codegen"
	"github.com/goliatone/go-formbuilder/pkg/renderers/preview"
)

// EmbeddedTemplates exposes the component source template so callers can
// extend it and pass the result to codegen.WithTemplatesFS.
func EmbeddedTemplates() fs.FS {
	return codegen.TemplatesFS()
}

// PreviewTemplates exposes the HTML preview templates.
func PreviewTemplates() fs.FS {
	return preview.TemplatesFS()
}
