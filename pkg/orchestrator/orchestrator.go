package orchestrator

import (
	"context"
	"fmt"
	"log/slog"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/openapi"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/preview"
	"github.com/goliatone/go-formbuilder/pkg/renderers/schema"
	"github.com/goliatone/go-formbuilder/pkg/renderers/source"
	"github.com/goliatone/go-formbuilder/pkg/store"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

// DefaultRenderer is used when a Request names no renderer.
const DefaultRenderer = source.Name

// Option customises an Orchestrator.
type Option func(*Orchestrator)

// WithStore binds an existing store instead of a freshly seeded one.
func WithStore(s *store.Store) Option {
	return func(o *Orchestrator) {
		if s != nil {
			o.store = s
		}
	}
}

// WithRegistry replaces the default renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		if registry != nil {
			o.registry = registry
		}
	}
}

// WithDefaultRenderer sets the renderer used when a Request leaves it empty.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		if name != "" {
			o.defaultRenderer = name
		}
	}
}

// WithThemeSelector resolves theme and variant names into renderer config.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeFallbacks sets partials applied when the selected theme does not
// override them.
func WithThemeFallbacks(partials map[string]string) Option {
	return func(o *Orchestrator) {
		o.themeFallbacks = copyStringMap(partials)
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator coordinates rendering and validation of a store's form.
type Orchestrator struct {
	store           *store.Store
	registry        *render.Registry
	defaultRenderer string
	themeSelector   theme.ThemeSelector
	themeFallbacks  map[string]string
	logger          *slog.Logger
}

// Request describes one rendering of the current form.
type Request struct {
	Renderer     string
	Values       map[string]any
	Errors       map[string][]string
	ThemeName    string
	ThemeVariant string
}

// New constructs an Orchestrator. Without WithStore it starts from the
// default seed; without WithRegistry it registers the source, schema and
// preview renderers.
func New(options ...Option) (*Orchestrator, error) {
	o := &Orchestrator{
		defaultRenderer: DefaultRenderer,
		themeFallbacks:  defaultThemeFallbacks(),
		logger:          slog.Default(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(o)
		}
	}
	if o.store == nil {
		o.store = store.New(store.WithSeed(store.DefaultSeed()), store.WithLogger(o.logger))
	}
	if o.registry == nil {
		registry, err := DefaultRegistry()
		if err != nil {
			return nil, err
		}
		o.registry = registry
	}
	return o, nil
}

// DefaultRegistry returns a registry holding the source, schema and preview
// renderers.
func DefaultRegistry() (*render.Registry, error) {
	src, err := source.New()
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	html, err := preview.New()
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return render.NewRegistry(src, schema.New(), html)
}

// Store exposes the underlying form store.
func (o *Orchestrator) Store() *store.Store {
	return o.store
}

// Registry exposes the renderer registry.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

// Generate renders the current form snapshot. It returns the rendered bytes
// and the renderer's content type.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	name := req.Renderer
	if name == "" {
		name = o.defaultRenderer
	}

	themeCfg, err := o.resolveTheme(req.ThemeName, req.ThemeVariant)
	if err != nil {
		return nil, "", err
	}

	form := o.store.Snapshot()
	o.logger.Debug("render form", "renderer", name, "fields", len(form.Fields), "layout", form.Layout)
	return o.registry.Render(ctx, name, form, render.RenderOptions{
		Values: req.Values,
		Errors: req.Errors,
		Theme:  themeCfg,
	})
}

// Validate checks values against the current fields. Strict mode adds the
// schema checks the generated component enforces.
func (o *Orchestrator) Validate(values map[string]any, strict bool) validation.Report {
	fields := o.store.Fields()
	if strict {
		return openapi.ValidateStrict(fields, values)
	}
	return validation.ValidateForm(fields, values)
}

// Snapshot returns the current form.
func (o *Orchestrator) Snapshot() model.Form {
	return o.store.Snapshot()
}
