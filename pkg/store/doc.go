// Package store owns the editable form: the ordered field sequence, the layout
// selector and the reference to the field currently being edited. It is the
// single source of truth; renderers and the code generator read snapshots of
// it and never mutate fields directly.
//
// Every operation is atomic. Missing ids and out-of-range indices are treated
// as no-ops rather than errors, which keeps repeated UI actions idempotent.
// The editing reference is kept as an id and resolved on every read, so it can
// never drift from the canonical entry in the sequence.
package store
