package render

import theme "github.com/goliatone/go-theme"

// RenderOptions carry per-request data renderers can use without mutating the
// form being rendered.
type RenderOptions struct {
	// Values pre-populates controls, keyed by field id.
	Values map[string]any
	// Errors holds validation messages keyed by field id. Keys that match no
	// field are reported by MapErrors as form-level messages.
	Errors map[string][]string
	// Theme supplies partial overrides, tokens and CSS variables resolved by
	// go-theme. Renderers that do not emit markup ignore it.
	Theme *theme.RendererConfig
}
