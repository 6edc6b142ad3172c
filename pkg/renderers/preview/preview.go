// Package preview renders a form as an HTML fragment mirroring the builder's
// live preview: the layout grid, pre-filled values and inline validation
// messages.
package preview

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formbuilder/pkg/layout"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	rendertemplate "github.com/goliatone/go-formbuilder/pkg/render/template"
	gotemplate "github.com/goliatone/go-formbuilder/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

// Name is the registry identifier.
const Name = "preview"

const (
	templateName = "templates/form.tmpl"

	// PartialForm is the theme partial key that replaces the form template.
	PartialForm = "preview.form"
	// AssetStylesheet is the theme asset key for an optional stylesheet link.
	AssetStylesheet = "preview.stylesheet"
)

// Option customises the renderer configuration.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path != "" {
			cfg.templateFS = os.DirFS(path)
		}
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer produces the preview fragment.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a preview renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		if _, err := fs.Stat(cfg.templateFS, templateName); err != nil {
			return nil, fmt.Errorf("preview renderer: template %q not found: %w", templateName, err)
		}
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("preview renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}
	return &Renderer{templates: renderer}, nil
}

// Name identifies the renderer inside the registry.
func (r *Renderer) Name() string {
	return Name
}

// ContentType returns the MIME type for generated fragments.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the HTML fragment for form.
func (r *Renderer) Render(_ context.Context, form model.Form, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("preview renderer: template renderer is nil")
	}

	selector := form.Layout
	if selector == "" {
		selector = model.DefaultLayout
	}
	errs := render.MapErrors(form, options.Errors)

	fields := make([]fieldView, len(form.Fields))
	for i, field := range form.Fields {
		fields[i] = buildFieldView(field, options.Values[field.ID], errs.For(field.ID))
	}

	themeCtx := buildThemeContext(options.Theme)
	data := map[string]any{
		"layout":      string(selector),
		"grid_class":  layout.GridClass(selector),
		"fields":      fields,
		"form_errors": errs.Form,
		"theme":       themeCtx,
		"stylesheet":  themeAsset(options.Theme, AssetStylesheet),
	}

	name := templateName
	if partial := themeCtx.Partials[PartialForm]; partial != "" {
		name = partial
	}
	rendered, err := r.templates.RenderTemplate(name, data)
	if err != nil {
		return nil, fmt.Errorf("preview renderer: render template: %w", err)
	}
	return []byte(rendered), nil
}

type fieldView struct {
	ID          string       `json:"id"`
	ControlID   string       `json:"control_id"`
	Type        string       `json:"type"`
	Kind        string       `json:"kind"`
	InputType   string       `json:"input_type"`
	Label       string       `json:"label"`
	Required    bool         `json:"required"`
	Placeholder string       `json:"placeholder"`
	Value       string       `json:"value"`
	Min         string       `json:"min,omitempty"`
	Max         string       `json:"max,omitempty"`
	Step        string       `json:"step,omitempty"`
	MinLength   string       `json:"min_length,omitempty"`
	MaxLength   string       `json:"max_length,omitempty"`
	Options     []optionView `json:"options,omitempty"`
	Error       string       `json:"error,omitempty"`
}

type optionView struct {
	Label   string `json:"label"`
	Value   string `json:"value"`
	Checked bool   `json:"checked"`
}

func buildFieldView(field model.Field, value any, messages []string) fieldView {
	view := fieldView{
		ID:          field.ID,
		ControlID:   "fb-" + field.ID,
		Type:        string(field.Type),
		Kind:        "input",
		InputType:   inputType(field.Type),
		Label:       sanitizeLabel(field.Label),
		Required:    field.Required,
		Placeholder: field.Placeholder,
		Value:       scalarValue(value),
	}
	if len(messages) > 0 {
		view.Error = messages[0]
	}
	if field.Type.IsTextLike() {
		view.MinLength = intString(field.MinLength)
		view.MaxLength = intString(field.MaxLength)
	}

	switch field.Type {
	case model.FieldTypeText, model.FieldTypeEmail, model.FieldTypePhone:
		view.Placeholder = defaultPlaceholder(view.Placeholder, "Enter", field.Label)
	case model.FieldTypeTextarea:
		view.Kind = "textarea"
		view.Placeholder = defaultPlaceholder(view.Placeholder, "Enter", field.Label)
	case model.FieldTypeSlider:
		view.Kind = "range"
		view.Min = floatString(field.Min, 0)
		view.Max = floatString(field.Max, 100)
		view.Step = floatString(field.Step, 1)
		if view.Value == "" {
			view.Value = view.Min
		}
	case model.FieldTypeSelect, model.FieldTypeCombobox:
		view.Kind = "select"
		view.Placeholder = defaultPlaceholder(view.Placeholder, "Select", field.Label)
		view.Options = optionViews(field.Options, value)
	case model.FieldTypeRadio, model.FieldTypeCheckbox:
		view.Kind = "choice"
		view.Options = optionViews(field.Options, value)
	case model.FieldTypeLocation:
		if view.Placeholder == "" {
			view.Placeholder = "Enter location"
		}
	}
	return view
}

func defaultPlaceholder(placeholder, verb, label string) string {
	if strings.TrimSpace(placeholder) != "" {
		return placeholder
	}
	return verb + " " + strings.ToLower(label)
}

func inputType(t model.FieldType) string {
	switch t {
	case model.FieldTypeEmail:
		return "email"
	case model.FieldTypePhone:
		return "tel"
	case model.FieldTypeFile:
		return "file"
	case model.FieldTypeDatetime:
		return "datetime-local"
	case model.FieldTypeRadio:
		return "radio"
	case model.FieldTypeCheckbox:
		return "checkbox"
	default:
		return "text"
	}
}

func optionViews(options []model.Option, value any) []optionView {
	selected := selectedValues(value)
	out := make([]optionView, len(options))
	for i, opt := range options {
		_, checked := selected[opt.Value]
		out[i] = optionView{Label: opt.Label, Value: opt.Value, Checked: checked}
	}
	return out
}

func selectedValues(value any) map[string]struct{} {
	out := make(map[string]struct{})
	switch v := value.(type) {
	case nil:
	case string:
		out[v] = struct{}{}
	case []string:
		for _, item := range v {
			out[item] = struct{}{}
		}
	case []any:
		for _, item := range v {
			out[fmt.Sprint(item)] = struct{}{}
		}
	}
	return out
}

func scalarValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case *string:
		if v == nil {
			return ""
		}
		return *v
	}
	if n, ok := validation.AsNumber(value); ok {
		return validation.FormatNumber(n)
	}
	return ""
}

func intString(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func floatString(v *float64, fallback float64) string {
	if v == nil {
		return validation.FormatNumber(fallback)
	}
	return validation.FormatNumber(*v)
}

var (
	labelPolicyOnce sync.Once
	labelPolicy     *bluemonday.Policy
)

// sanitizeLabel strips markup from user-entered labels, keeping simple
// emphasis.
func sanitizeLabel(raw string) string {
	labelPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("b", "strong", "i", "em")
		labelPolicy = policy
	})
	return strings.TrimSpace(labelPolicy.Sanitize(raw))
}

type themeContext struct {
	Name         string            `json:"name,omitempty"`
	Variant      string            `json:"variant,omitempty"`
	Partials     map[string]string `json:"partials,omitempty"`
	Tokens       map[string]string `json:"tokens,omitempty"`
	CSSVarsStyle string            `json:"css_vars_style,omitempty"`
}

func buildThemeContext(cfg *theme.RendererConfig) themeContext {
	if cfg == nil {
		return themeContext{}
	}
	return themeContext{
		Name:         cfg.Theme,
		Variant:      cfg.Variant,
		Partials:     cfg.Partials,
		Tokens:       cfg.Tokens,
		CSSVarsStyle: cssVarsStyle(cfg.CSSVars),
	}
}

func themeAsset(cfg *theme.RendererConfig, key string) string {
	if cfg == nil || cfg.AssetURL == nil {
		return ""
	}
	return strings.TrimSpace(cfg.AssetURL(key))
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(".formbuilder-preview {\n")
	for _, key := range keys {
		fmt.Fprintf(&b, "  %s: %s;\n", key, vars[key])
	}
	b.WriteString("}")
	return b.String()
}
