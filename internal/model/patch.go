package model

import (
	"bytes"
	"encoding/json"
)

// Nullable carries a three-state update for an optional attribute: left
// untouched (Set == false), cleared (Set && Value == nil) or replaced.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

// Replace builds a Nullable that sets the attribute to v.
func Replace[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: &v}
}

// Clear builds a Nullable that removes the attribute.
func Clear[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// UnmarshalJSON marks the attribute as present; a literal null clears it.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

// MarshalJSON emits null for cleared or untouched attributes.
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

// IsZero lets encoders that honour omitempty/omitzero skip untouched attributes.
func (n Nullable[T]) IsZero() bool {
	return !n.Set
}

// Patch is a partial update for a Field. Nil pointers and unset Nullables
// leave the corresponding attribute untouched. Identity (id, type) cannot be
// patched.
type Patch struct {
	Label       *string           `json:"label,omitempty"`
	Required    *bool             `json:"required,omitempty"`
	MinLength   Nullable[int]     `json:"minLength"`
	MaxLength   Nullable[int]     `json:"maxLength"`
	Min         Nullable[float64] `json:"min"`
	Max         Nullable[float64] `json:"max"`
	Step        Nullable[float64] `json:"step"`
	Options     *[]Option         `json:"options,omitempty"`
	Placeholder *string           `json:"placeholder,omitempty"`
}

// Empty reports whether applying the patch would change nothing.
func (p Patch) Empty() bool {
	return p.Label == nil && p.Required == nil && !p.MinLength.Set && !p.MaxLength.Set &&
		!p.Min.Set && !p.Max.Set && !p.Step.Set && p.Options == nil && p.Placeholder == nil
}

// Apply merges the patch into a copy of field and returns it.
func (p Patch) Apply(field Field) Field {
	out := field.Clone()
	if p.Label != nil {
		out.Label = *p.Label
	}
	if p.Required != nil {
		out.Required = *p.Required
	}
	applyNullable(&out.MinLength, p.MinLength)
	applyNullable(&out.MaxLength, p.MaxLength)
	applyNullable(&out.Min, p.Min)
	applyNullable(&out.Max, p.Max)
	applyNullable(&out.Step, p.Step)
	if p.Options != nil {
		out.Options = append([]Option(nil), (*p.Options)...)
	}
	if p.Placeholder != nil {
		out.Placeholder = *p.Placeholder
	}
	return out
}

func applyNullable[T any](target **T, update Nullable[T]) {
	if !update.Set {
		return
	}
	*target = clonePtr(update.Value)
}

// SetLabel is shorthand for a label-only patch.
func SetLabel(label string) Patch {
	return Patch{Label: &label}
}

// SetRequired is shorthand for a required-only patch.
func SetRequired(required bool) Patch {
	return Patch{Required: &required}
}
