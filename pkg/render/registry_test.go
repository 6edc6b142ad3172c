package render

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

type stubRenderer struct {
	name string
	err  error
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(_ context.Context, form model.Form, _ RenderOptions) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []byte(s.name + ":" + string(form.Layout)), nil
}

func TestRegistry(t *testing.T) {
	registry, err := NewRegistry(stubRenderer{name: "b"}, stubRenderer{name: "a"})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, registry.List()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if err := registry.Register(stubRenderer{name: "a"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := registry.Register(stubRenderer{}); err == nil {
		t.Fatalf("expected error for unnamed renderer")
	}
	if !registry.Has("a") || registry.Has("c") {
		t.Fatalf("unexpected Has results")
	}

	out, contentType, err := registry.Render(context.Background(), "a", model.Form{Layout: model.LayoutTwoColumns}, RenderOptions{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if string(out) != "a:2" || contentType != "text/plain" {
		t.Fatalf("unexpected render result %q %q", out, contentType)
	}

	if _, _, err := registry.Render(context.Background(), "c", model.Form{}, RenderOptions{}); !errors.Is(err, ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
}

func TestRegistryWrapsRendererError(t *testing.T) {
	boom := errors.New("boom")
	registry, err := NewRegistry(stubRenderer{name: "x", err: boom})
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if _, _, err := registry.Render(context.Background(), "x", model.Form{}, RenderOptions{}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}
