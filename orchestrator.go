package formbuilder

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formbuilder/pkg/codegen"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/orchestrator"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/store"
)

// Field, Form and Layout alias the model types for callers that only import
// the root package.
type (
	Field  = model.Field
	Form   = model.Form
	Layout = model.Layout
)

// RenderOptions describes per-request values and server-side errors passed to
// renderers.
type RenderOptions = render.RenderOptions

// Request aliases orchestrator.Request.
type Request = orchestrator.Request

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) (*orchestrator.Orchestrator, error) {
	return orchestrator.New(options...)
}

// NewStore returns a store seeded with the default form.
func NewStore(options ...store.Option) *store.Store {
	return store.New(append([]store.Option{store.WithSeed(store.DefaultSeed())}, options...)...)
}

// DefaultForm returns the form a fresh builder session starts with.
func DefaultForm() Form {
	return Form{Fields: store.DefaultSeed(), Layout: model.DefaultLayout}
}

// GenerateSource emits the component source for fields under the given
// layout using the embedded template.
func GenerateSource(fields []Field, layout Layout) (string, error) {
	return codegen.Generate(fields, layout)
}

// Generate renders form with the named renderer and returns its content type.
// An empty name selects the component source renderer.
func Generate(ctx context.Context, form Form, rendererName string, opts RenderOptions) ([]byte, string, error) {
	s, err := store.NewFromForm(form)
	if err != nil {
		return nil, "", err
	}
	orch, err := orchestrator.New(orchestrator.WithStore(s))
	if err != nil {
		return nil, "", err
	}
	return orch.Generate(ctx, Request{
		Renderer: rendererName,
		Values:   opts.Values,
		Errors:   opts.Errors,
	})
}

// WithThemeSelector passes a go-theme selector through to the orchestrator.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) orchestrator.Option {
	return orchestrator.WithThemeFallbacks(fallbacks)
}
