// Package source renders a form as the React component produced by the code
// generator.
package source

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formbuilder/pkg/codegen"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

// Name is the registry identifier.
const Name = "source"

// Renderer wraps a codegen.Generator.
type Renderer struct {
	generator *codegen.Generator
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer. Options are forwarded to the generator.
func New(options ...codegen.Option) (*Renderer, error) {
	generator, err := codegen.New(options...)
	if err != nil {
		return nil, fmt.Errorf("source renderer: %w", err)
	}
	return &Renderer{generator: generator}, nil
}

// Name identifies the renderer inside the registry.
func (r *Renderer) Name() string {
	return Name
}

// ContentType returns the MIME type of generated source.
func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render emits the component source for form. Values, errors and theme are
// not part of generated code and are ignored.
func (r *Renderer) Render(_ context.Context, form model.Form, _ render.RenderOptions) ([]byte, error) {
	out, err := r.generator.Generate(form.Fields, form.Layout)
	if err != nil {
		return nil, fmt.Errorf("source renderer: %w", err)
	}
	return []byte(out), nil
}
