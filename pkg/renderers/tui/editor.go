package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/codegen"
	"github.com/goliatone/go-formbuilder/pkg/layout"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/store"
)

// Menu entries shown by the editor.
const (
	ActionAdd    = "Add field"
	ActionEdit   = "Edit field"
	ActionRemove = "Remove field"
	ActionMove   = "Move field"
	ActionLayout = "Change layout"
	ActionCode   = "Show code"
	ActionDone   = "Done"
)

var editorActions = []string{ActionAdd, ActionEdit, ActionRemove, ActionMove, ActionLayout, ActionCode, ActionDone}

// CodeGenerator renders component source for the editor's "Show code" action.
type CodeGenerator func(fields []model.Field, selector model.Layout) (string, error)

// EditorOption configures an Editor.
type EditorOption func(*Editor)

// WithEditorDriver overrides the prompt driver.
func WithEditorDriver(driver PromptDriver) EditorOption {
	return func(e *Editor) {
		if driver != nil {
			e.driver = driver
		}
	}
}

// WithCodeGenerator overrides the generator used by "Show code".
func WithCodeGenerator(fn CodeGenerator) EditorOption {
	return func(e *Editor) {
		if fn != nil {
			e.generate = fn
		}
	}
}

// WithEditorLogger sets the logger used for session diagnostics.
func WithEditorLogger(logger *slog.Logger) EditorOption {
	return func(e *Editor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// Editor is a terminal form builder. Every change goes through the store, so
// subscribers observe edits as they happen.
type Editor struct {
	store    *store.Store
	driver   PromptDriver
	generate CodeGenerator
	logger   *slog.Logger
}

// NewEditor binds an editor to s.
func NewEditor(s *store.Store, options ...EditorOption) *Editor {
	e := &Editor{
		store:    s,
		generate: codegen.Generate,
		logger:   slog.Default(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	if e.driver == nil {
		e.driver = NewSurveyDriver(nil)
	}
	return e
}

// Run loops over the action menu until the user picks Done and returns the
// final form.
func (e *Editor) Run(ctx context.Context) (model.Form, error) {
	if e.store == nil {
		return model.Form{}, errors.New("tui: editor store is nil")
	}
	for {
		idx, err := e.driver.Select(ctx, SelectConfig{
			Message:      e.summary(),
			Options:      editorActions,
			DefaultIndex: 0,
		})
		if err != nil {
			return model.Form{}, err
		}
		if idx < 0 || idx >= len(editorActions) {
			continue
		}

		action := editorActions[idx]
		if action == ActionDone {
			return e.store.Snapshot(), nil
		}
		if err := e.dispatch(ctx, action); err != nil {
			return model.Form{}, err
		}
	}
}

func (e *Editor) dispatch(ctx context.Context, action string) error {
	switch action {
	case ActionAdd:
		return e.add(ctx)
	case ActionEdit:
		return e.edit(ctx)
	case ActionRemove:
		return e.remove(ctx)
	case ActionMove:
		return e.move(ctx)
	case ActionLayout:
		return e.changeLayout(ctx)
	case ActionCode:
		return e.showCode(ctx)
	}
	return nil
}

func (e *Editor) summary() string {
	selector := e.store.Layout()
	return fmt.Sprintf("%d field(s), %s layout (%d columns at widest)", e.store.Len(), selector, layout.Resolve(selector).Columns())
}

func (e *Editor) add(ctx context.Context) error {
	types := model.FieldTypes()
	labels := make([]string, len(types))
	for i, t := range types {
		labels[i] = t.Title()
	}
	idx, err := e.driver.Select(ctx, SelectConfig{Message: "Field type", Options: labels, PageSize: len(labels)})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(types) {
		return nil
	}
	field, err := e.store.AddField(types[idx])
	if err != nil {
		return err
	}
	return e.driver.Info(ctx, fmt.Sprintf("Added %q (%s)", field.Label, field.ID))
}

// pickField asks for a field and returns its index, or -1 when the form is
// empty or the answer is out of range.
func (e *Editor) pickField(ctx context.Context, message string) (int, error) {
	fields := e.store.Fields()
	if len(fields) == 0 {
		return -1, e.driver.Info(ctx, "No fields yet")
	}
	idx, err := e.driver.Select(ctx, SelectConfig{Message: message, Options: fieldLabels(fields)})
	if err != nil {
		return -1, err
	}
	if idx < 0 || idx >= len(fields) {
		return -1, nil
	}
	return idx, nil
}

func (e *Editor) remove(ctx context.Context) error {
	idx, err := e.pickField(ctx, "Remove which field?")
	if err != nil || idx < 0 {
		return err
	}
	field := e.store.Fields()[idx]
	ok, err := e.driver.Confirm(ctx, ConfirmConfig{Message: fmt.Sprintf("Remove %q?", field.Label)})
	if err != nil || !ok {
		return err
	}
	e.store.RemoveField(field.ID)
	return nil
}

func (e *Editor) move(ctx context.Context) error {
	from, err := e.pickField(ctx, "Move which field?")
	if err != nil || from < 0 {
		return err
	}
	fields := e.store.Fields()
	positions := make([]string, len(fields))
	for i := range fields {
		positions[i] = strconv.Itoa(i + 1)
	}
	to, err := e.driver.Select(ctx, SelectConfig{Message: "New position", Options: positions, DefaultIndex: from})
	if err != nil {
		return err
	}
	if !e.store.Reorder(from, to) {
		return e.driver.Info(ctx, "Position out of range")
	}
	return nil
}

func (e *Editor) changeLayout(ctx context.Context) error {
	layouts := model.Layouts()
	labels := make([]string, len(layouts))
	current := -1
	for i, l := range layouts {
		labels[i] = layoutLabel(l)
		if l == e.store.Layout() {
			current = i
		}
	}
	idx, err := e.driver.Select(ctx, SelectConfig{Message: "Layout", Options: labels, DefaultIndex: current})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(layouts) {
		return nil
	}
	return e.store.SetLayout(layouts[idx])
}

func (e *Editor) showCode(ctx context.Context) error {
	form := e.store.Snapshot()
	source, err := e.generate(form.Fields, form.Layout)
	if err != nil {
		return err
	}
	return e.driver.Info(ctx, source)
}

func (e *Editor) edit(ctx context.Context) error {
	idx, err := e.pickField(ctx, "Edit which field?")
	if err != nil || idx < 0 {
		return err
	}
	field := e.store.Fields()[idx]
	e.store.SetEditingField(field.ID)
	defer e.store.ClearEditingField()

	patch, err := e.properties(ctx, field)
	if err != nil {
		return err
	}
	if patch.Empty() {
		return nil
	}
	if _, ok := e.store.UpdateField(field.ID, patch); !ok {
		e.logger.Debug("tui: edited field disappeared", "field", field.ID)
	}
	return nil
}

// properties prompts for the attributes relevant to the field's type and
// returns the resulting patch.
func (e *Editor) properties(ctx context.Context, field model.Field) (model.Patch, error) {
	var patch model.Patch

	label, err := e.driver.Input(ctx, InputConfig{Message: "Label", Default: field.Label})
	if err != nil {
		return patch, err
	}
	if label != field.Label {
		patch.Label = &label
	}

	required, err := e.driver.Confirm(ctx, ConfirmConfig{Message: "Required?", Default: field.Required})
	if err != nil {
		return patch, err
	}
	if required != field.Required {
		patch.Required = &required
	}

	if field.Type.IsTextLike() || field.Type == model.FieldTypeLocation || field.Type == model.FieldTypePhone {
		placeholder, err := e.driver.Input(ctx, InputConfig{Message: "Placeholder", Default: field.Placeholder})
		if err != nil {
			return patch, err
		}
		if placeholder != field.Placeholder {
			patch.Placeholder = &placeholder
		}
	}

	if field.Type.IsTextLike() {
		if patch.MinLength, err = e.intAttr(ctx, "Minimum length (blank for none)", field.MinLength); err != nil {
			return patch, err
		}
		if patch.MaxLength, err = e.intAttr(ctx, "Maximum length (blank for none)", field.MaxLength); err != nil {
			return patch, err
		}
	}

	if field.Type == model.FieldTypeSlider {
		if patch.Min, err = e.floatAttr(ctx, "Minimum value (blank for none)", field.Min); err != nil {
			return patch, err
		}
		if patch.Max, err = e.floatAttr(ctx, "Maximum value (blank for none)", field.Max); err != nil {
			return patch, err
		}
		if patch.Step, err = e.floatAttr(ctx, "Step (blank for default)", field.Step); err != nil {
			return patch, err
		}
	}

	if field.Type.IsChoice() {
		text, err := e.driver.TextArea(ctx, TextAreaConfig{
			Message: "Options, one per line as Label=value",
			Default: formatOptions(field.Options),
		})
		if err != nil {
			return patch, err
		}
		if options := ParseOptions(text); !sameOptions(options, field.Options) {
			patch.Options = &options
		}
	}
	return patch, nil
}

func (e *Editor) intAttr(ctx context.Context, message string, current *int) (model.NullableInt, error) {
	def := ""
	if current != nil {
		def = strconv.Itoa(*current)
	}
	for {
		raw, err := e.driver.Input(ctx, InputConfig{Message: message, Default: def})
		if err != nil {
			return model.NullableInt{}, err
		}
		raw = strings.TrimSpace(raw)
		if raw == def {
			return model.NullableInt{}, nil
		}
		if raw == "" {
			return model.Clear[int](), nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			if err := e.driver.Info(ctx, "Enter a whole number"); err != nil {
				return model.NullableInt{}, err
			}
			continue
		}
		return model.Replace(n), nil
	}
}

func (e *Editor) floatAttr(ctx context.Context, message string, current *float64) (model.NullableFloat, error) {
	def := ""
	if current != nil {
		def = strconv.FormatFloat(*current, 'f', -1, 64)
	}
	for {
		raw, err := e.driver.Input(ctx, InputConfig{Message: message, Default: def})
		if err != nil {
			return model.NullableFloat{}, err
		}
		raw = strings.TrimSpace(raw)
		if raw == def {
			return model.NullableFloat{}, nil
		}
		if raw == "" {
			return model.Clear[float64](), nil
		}
		n, ok := parseNumber(raw)
		if !ok {
			if err := e.driver.Info(ctx, "Enter a number"); err != nil {
				return model.NullableFloat{}, err
			}
			continue
		}
		return model.Replace(n), nil
	}
}

// ParseOptions reads one option per line. "Label=value" sets both parts; a
// bare line is used as label and value. Blank lines are skipped.
func ParseOptions(text string) []model.Option {
	var out []model.Option
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		label, value, found := strings.Cut(line, "=")
		label, value = strings.TrimSpace(label), strings.TrimSpace(value)
		if !found || value == "" {
			value = label
		}
		out = append(out, model.Option{Label: label, Value: value})
	}
	return out
}

func formatOptions(options []model.Option) string {
	lines := make([]string, len(options))
	for i, opt := range options {
		lines[i] = opt.Label + "=" + opt.Value
	}
	return strings.Join(lines, "\n")
}

func sameOptions(a, b []model.Option) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func fieldLabels(fields []model.Field) []string {
	out := make([]string, len(fields))
	for i, field := range fields {
		out[i] = fmt.Sprintf("%d. %s (%s)", i+1, displayLabel(field), field.Type)
	}
	return out
}

func layoutLabel(l model.Layout) string {
	if l == model.LayoutResponsive {
		return "Responsive"
	}
	n, _ := strconv.Atoi(string(l))
	if n == 1 {
		return "1 column"
	}
	return fmt.Sprintf("%d columns", n)
}
