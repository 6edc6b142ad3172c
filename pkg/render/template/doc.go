// Package template defines the renderer-agnostic template seam used by the
// code generator and the HTML preview, plus a pongo2 adapter in gotemplate.
package template
