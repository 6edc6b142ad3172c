// Package orchestrator wires a builder session together: the form store, the
// renderer registry and an optional go-theme selector. Callers ask it for a
// rendering of the current form by renderer name and theme, or for a
// validation report over submitted values.
package orchestrator
