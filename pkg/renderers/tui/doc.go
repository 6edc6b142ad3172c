// Package tui drives forms from a terminal. Renderer fills a form with
// prompts and checks every answer with the validation engine; Editor is an
// interactive builder that edits a store field by field.
package tui
