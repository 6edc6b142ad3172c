package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/openapi"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

// Name is the registry identifier.
const Name = "tui"

const noneOption = "(none)"

// Renderer implements render.Renderer for terminal sessions: it walks the
// form's fields in order, prompts for each value and checks it with the
// validation engine before moving on.
type Renderer struct {
	driver            PromptDriver
	outputFormat      OutputFormat
	strict            bool
	submitTransformer SubmitTransformer
	theme             Theme
	logger            *slog.Logger
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) *Renderer {
	r := &Renderer{
		outputFormat: OutputFormatJSON,
		theme:        Theme{ErrorPrefix: "✗ "},
		logger:       slog.Default(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver(nil)
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return Name
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	if r.outputFormat == OutputFormatPrettyText {
		return "text/plain; charset=utf-8"
	}
	return "application/json"
}

// Render prompts for every field and serializes the collected values.
func (r *Renderer) Render(ctx context.Context, form model.Form, opts render.RenderOptions) ([]byte, error) {
	values, err := r.Fill(ctx, form, opts)
	if err != nil {
		return nil, err
	}
	if r.submitTransformer != nil {
		values, err = r.submitTransformer(values)
		if err != nil {
			return nil, fmt.Errorf("tui: submit transformer: %w", err)
		}
	}
	return r.serialize(form, values)
}

// Fill runs the prompt session and returns values keyed by field id.
// Values from opts pre-populate prompt defaults; errors from opts are shown
// before the affected prompt.
func (r *Renderer) Fill(ctx context.Context, form model.Form, opts render.RenderOptions) (map[string]any, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, ErrNoDriver
	}

	values := make(map[string]any, len(form.Fields))
	for key, value := range opts.Values {
		values[key] = value
	}
	errs := render.MapErrors(form, opts.Errors)
	for _, message := range errs.Form {
		r.error(ctx, message)
	}

	for _, field := range form.Fields {
		for _, message := range errs.For(field.ID) {
			r.error(ctx, message)
		}
		value, err := r.promptField(ctx, field, values[field.ID])
		if err != nil {
			return nil, err
		}
		values[field.ID] = value
	}

	if !r.strict {
		return values, nil
	}
	for {
		report := openapi.ValidateStrict(form.Fields, values)
		if report.Valid() {
			return values, nil
		}
		for _, field := range form.Fields {
			message := report.Message(field.ID)
			if message == "" {
				continue
			}
			r.logger.Debug("strict validation failed", "field", field.ID, "message", message)
			if field.Type == model.FieldTypeCheckbox && len(field.Options) == 0 {
				return nil, fmt.Errorf("%w: %s has no options to select", ErrUnanswerable, field.ID)
			}
			r.error(ctx, fmt.Sprintf("%s: %s", displayLabel(field), message))
			value, err := r.promptField(ctx, field, values[field.ID])
			if err != nil {
				return nil, err
			}
			values[field.ID] = value
		}
	}
}

// promptField asks until the answer passes the validation engine.
func (r *Renderer) promptField(ctx context.Context, field model.Field, current any) (any, error) {
	for {
		value, retry, err := r.ask(ctx, field, current)
		if err != nil {
			return nil, err
		}
		if retry != "" {
			r.error(ctx, retry)
			continue
		}
		if result := validation.Validate(field, value); !result.Valid {
			r.error(ctx, fmt.Sprintf("%s: %s", displayLabel(field), result.Message))
			continue
		}
		return value, nil
	}
}

// ask issues one prompt for field. A non-empty retry message means the
// answer could not be interpreted and the prompt should be repeated.
func (r *Renderer) ask(ctx context.Context, field model.Field, current any) (any, string, error) {
	label := displayLabel(field)
	help := displayHelp(field)

	switch field.Type {
	case model.FieldTypeTextarea:
		text, err := r.driver.TextArea(ctx, TextAreaConfig{
			Message: label,
			Default: stringValue(current),
			Help:    help,
		})
		return text, "", err

	case model.FieldTypeSlider:
		def := stringValue(current)
		if def == "" && field.Min != nil {
			def = validation.FormatNumber(*field.Min)
		}
		input, err := r.driver.Input(ctx, InputConfig{
			Message:   label,
			Default:   def,
			Help:      help,
			Validator: r.numberValidator(field),
		})
		if err != nil {
			return nil, "", err
		}
		if strings.TrimSpace(input) == "" {
			return nil, "", nil
		}
		n, ok := parseNumber(input)
		if !ok {
			return nil, fmt.Sprintf("%s: enter a number", label), nil
		}
		return n, "", nil

	case model.FieldTypeRadio, model.FieldTypeSelect, model.FieldTypeCombobox:
		options := optionLabels(field.Options)
		if !field.Required {
			options = append([]string{noneOption}, options...)
		}
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      label,
			Options:      options,
			DefaultIndex: indexOf(options, labelFor(field.Options, stringValue(current))),
			Help:         help,
		})
		if err != nil {
			return nil, "", err
		}
		if idx < 0 || idx >= len(options) {
			return nil, fmt.Sprintf("%s: invalid selection", label), nil
		}
		if options[idx] == noneOption && !field.Required {
			return "", "", nil
		}
		if !field.Required {
			idx--
		}
		return field.Options[idx].Value, "", nil

	case model.FieldTypeCheckbox:
		options := optionLabels(field.Options)
		indices, err := r.driver.MultiSelect(ctx, SelectConfig{
			Message:  label,
			Options:  options,
			Defaults: indicesOf(options, labelsFor(field.Options, current)),
			Help:     help,
		})
		if err != nil {
			return nil, "", err
		}
		selected := make([]string, 0, len(indices))
		for _, idx := range indices {
			if idx >= 0 && idx < len(field.Options) {
				selected = append(selected, field.Options[idx].Value)
			}
		}
		return selected, "", nil

	default:
		input, err := r.driver.Input(ctx, InputConfig{
			Message: label,
			Default: stringValue(current),
			Help:    help,
			Validator: func(s string) error {
				if result := validation.Validate(field, s); !result.Valid {
					return errors.New(result.Message)
				}
				return nil
			},
		})
		return input, "", err
	}
}

func (r *Renderer) numberValidator(field model.Field) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			if field.Required {
				return errors.New(validation.MessageRequired)
			}
			return nil
		}
		n, ok := parseNumber(s)
		if !ok {
			return errors.New("enter a number")
		}
		if result := validation.Validate(field, n); !result.Valid {
			return errors.New(result.Message)
		}
		return nil
	}
}

func (r *Renderer) error(ctx context.Context, message string) {
	if err := r.driver.Info(ctx, r.theme.ErrorPrefix+message); err != nil {
		r.logger.Debug("tui: info write failed", "error", err)
	}
}

func (r *Renderer) serialize(form model.Form, values map[string]any) ([]byte, error) {
	if r.outputFormat == OutputFormatPrettyText {
		return []byte(prettyPrint(form, values)), nil
	}
	out, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("tui: encode values: %w", err)
	}
	return out, nil
}

// prettyPrint lists values in field order. Keys that match no field are
// omitted.
func prettyPrint(form model.Form, values map[string]any) string {
	var b strings.Builder
	for _, field := range form.Fields {
		fmt.Fprintf(&b, "%s: %s\n", displayLabel(field), displayValue(field, values[field.ID]))
	}
	return b.String()
}

func displayValue(field model.Field, value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case []string:
		return strings.Join(labelsFor(field.Options, v), ", ")
	case string:
		if field.Type.IsChoice() {
			if label := labelFor(field.Options, v); label != "" {
				return label
			}
		}
		return v
	}
	if n, ok := validation.AsNumber(value); ok {
		return validation.FormatNumber(n)
	}
	return fmt.Sprint(value)
}

func displayLabel(field model.Field) string {
	if strings.TrimSpace(field.Label) != "" {
		return field.Label
	}
	return field.ID
}

func displayHelp(field model.Field) string {
	var parts []string
	if field.Placeholder != "" {
		parts = append(parts, field.Placeholder)
	}
	if field.MinLength != nil {
		parts = append(parts, fmt.Sprintf("at least %d characters", *field.MinLength))
	}
	if field.MaxLength != nil {
		parts = append(parts, fmt.Sprintf("at most %d characters", *field.MaxLength))
	}
	if field.Type == model.FieldTypeSlider {
		lo, hi := "0", "100"
		if field.Min != nil {
			lo = validation.FormatNumber(*field.Min)
		}
		if field.Max != nil {
			hi = validation.FormatNumber(*field.Max)
		}
		parts = append(parts, fmt.Sprintf("%s to %s", lo, hi))
	}
	return strings.Join(parts, "; ")
}

func optionLabels(options []model.Option) []string {
	out := make([]string, len(options))
	for i, opt := range options {
		out[i] = opt.Label
	}
	return out
}

func labelFor(options []model.Option, value string) string {
	for _, opt := range options {
		if opt.Value == value {
			return opt.Label
		}
	}
	return ""
}

func labelsFor(options []model.Option, value any) []string {
	var values []string
	switch v := value.(type) {
	case []string:
		values = v
	case []any:
		for _, item := range v {
			values = append(values, fmt.Sprint(item))
		}
	}
	var out []string
	for _, val := range values {
		if label := labelFor(options, val); label != "" {
			out = append(out, label)
		}
	}
	return out
}

func stringValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	}
	if n, ok := validation.AsNumber(value); ok {
		return validation.FormatNumber(n)
	}
	return fmt.Sprint(value)
}

func parseNumber(raw string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
