package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/store"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

type captureRenderer struct {
	options render.RenderOptions
	form    model.Form
}

func (r *captureRenderer) Name() string        { return "capture" }
func (r *captureRenderer) ContentType() string { return "text/plain" }
func (r *captureRenderer) Render(_ context.Context, form model.Form, opts render.RenderOptions) ([]byte, error) {
	r.form = form
	r.options = opts
	return []byte(form.Layout), nil
}

type selectorCall struct {
	name    string
	variant string
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []selectorCall
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, selectorCall{name: name, variant: variant})
	return s.selection, s.err
}

func newCapture(t *testing.T, options ...Option) (*Orchestrator, *captureRenderer) {
	t.Helper()
	renderer := &captureRenderer{}
	registry, err := render.NewRegistry(renderer)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	orch, err := New(append([]Option{WithRegistry(registry), WithDefaultRenderer(renderer.Name())}, options...)...)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	return orch, renderer
}

func TestNewStartsFromDefaultSeed(t *testing.T) {
	orch, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	want := testsupport.SeedForm()
	got := orch.Snapshot()
	if len(got.Fields) != len(want.Fields) || got.Layout != model.LayoutResponsive {
		t.Fatalf("unexpected seed: %+v", got)
	}
	for _, name := range []string{"preview", "schema", "source"} {
		if !orch.Registry().Has(name) {
			t.Fatalf("expected %s renderer registered", name)
		}
	}

	out, contentType, err := orch.Generate(testsupport.Context(), Request{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(contentType, "text/plain") || !strings.Contains(string(out), "input_1684761600001") {
		t.Fatalf("expected generated source by default, got %q", contentType)
	}
}

func TestGeneratePassesRequestThrough(t *testing.T) {
	s := store.New()
	if err := s.SetLayout(model.LayoutTwoColumns); err != nil {
		t.Fatalf("set layout: %v", err)
	}
	orch, renderer := newCapture(t, WithStore(s))

	values := map[string]any{"a": "b"}
	out, _, err := orch.Generate(testsupport.Context(), Request{Values: values, Errors: map[string][]string{"a": {"bad"}}})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(out) != "2" {
		t.Fatalf("expected layout from store, got %q", out)
	}
	if renderer.options.Values["a"] != "b" || renderer.options.Errors["a"][0] != "bad" {
		t.Fatalf("options not forwarded: %+v", renderer.options)
	}
	if renderer.options.Theme != nil {
		t.Fatalf("expected no theme without selector")
	}
}

func TestGeneratePassesThemeConfigToRenderer(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens:  map[string]string{"brand": "#123456"},
	}
	selector := &stubThemeSelector{selection: &theme.Selection{Theme: "acme", Variant: "custom", Manifest: manifest}}
	orch, renderer := newCapture(t, WithThemeSelector(selector))

	if _, _, err := orch.Generate(testsupport.Context(), Request{ThemeName: "acme", ThemeVariant: "custom"}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(selector.calls) != 1 || selector.calls[0] != (selectorCall{name: "acme", variant: "custom"}) {
		t.Fatalf("unexpected selector calls: %+v", selector.calls)
	}
	cfg := renderer.options.Theme
	if cfg == nil {
		t.Fatalf("expected theme config passed to renderer")
	}
	if cfg.Theme != "acme" || cfg.Variant != "custom" {
		t.Fatalf("unexpected theme identity %s/%s", cfg.Theme, cfg.Variant)
	}
	if cfg.Partials["preview.form"] != defaultThemeFallbacks()["preview.form"] {
		t.Fatalf("partials not merged with fallbacks")
	}
	if cfg.CSSVars["--brand"] != "#123456" {
		t.Fatalf("css vars not derived from tokens")
	}
	if cfg.AssetURL == nil || cfg.AssetURL("missing") != "" {
		t.Fatalf("expected AssetURL resolver returning empty for unknown keys")
	}
}

func TestGenerateSelectorError(t *testing.T) {
	boom := errors.New("boom")
	orch, _ := newCapture(t, WithThemeSelector(&stubThemeSelector{err: boom}))
	if _, _, err := orch.Generate(testsupport.Context(), Request{}); !errors.Is(err, boom) {
		t.Fatalf("expected selector error, got %v", err)
	}
}

func TestGenerateUnknownRenderer(t *testing.T) {
	orch, _ := newCapture(t)
	if _, _, err := orch.Generate(testsupport.Context(), Request{Renderer: "nope"}); !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
}

func TestValidateLooseAndStrict(t *testing.T) {
	orch, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	values := map[string]any{
		"input-1684761600000": "Ada",
		"input-1684761600001": "not-an-email",
	}
	if report := orch.Validate(values, false); !report.Valid() {
		t.Fatalf("expected loose validation to pass, got %+v", report)
	}
	report := orch.Validate(values, true)
	if got := report.Message("input-1684761600001"); got != "Invalid email address" {
		t.Fatalf("expected strict email failure, got %q", got)
	}
}
