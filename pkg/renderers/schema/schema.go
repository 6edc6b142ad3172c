// Package schema renders a form's submission contract as an OpenAPI 3
// document in JSON.
package schema

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/openapi"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

// Name is the registry identifier.
const Name = "schema"

// Option customises the renderer.
type Option func(*Renderer)

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(r *Renderer) {
		if title != "" {
			r.title = title
		}
	}
}

// WithIndent sets the JSON indentation. An empty string produces compact
// output.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

// Renderer emits the document built by openapi.Document.
type Renderer struct {
	title  string
	indent string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{title: "Generated form", indent: "  "}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Name identifies the renderer inside the registry.
func (r *Renderer) Name() string {
	return Name
}

// ContentType returns the MIME type of the document.
func (r *Renderer) ContentType() string {
	return "application/json"
}

// Render builds and encodes the document.
func (r *Renderer) Render(ctx context.Context, form model.Form, _ render.RenderOptions) ([]byte, error) {
	doc, err := openapi.Document(ctx, r.title, form.Fields)
	if err != nil {
		return nil, fmt.Errorf("schema renderer: %w", err)
	}
	var out []byte
	if r.indent == "" {
		out, err = json.Marshal(doc)
	} else {
		out, err = json.MarshalIndent(doc, "", r.indent)
	}
	if err != nil {
		return nil, fmt.Errorf("schema renderer: encode: %w", err)
	}
	return out, nil
}
