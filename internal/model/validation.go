package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrFieldIDMissing   = errors.New("model: field id is required")
	ErrFieldIDDuplicate = errors.New("model: duplicate field id")
	ErrFieldTypeUnknown = errors.New("model: unknown field type")
	ErrLayoutUnknown    = errors.New("model: unknown layout")
)

// ValidateForm checks the structural invariants of a form definition: every
// field has a unique, non-empty id and a known type, and the layout is known
// (an empty layout is accepted and means DefaultLayout).
func ValidateForm(form Form) error {
	if form.Layout != "" && !form.Layout.Valid() {
		return fmt.Errorf("%w: %q", ErrLayoutUnknown, form.Layout)
	}
	return ValidateFields(form.Fields)
}

// ValidateFields checks ids and types of a field sequence.
func ValidateFields(fields []Field) error {
	seen := make(map[string]struct{}, len(fields))
	for i, field := range fields {
		if err := validateField(field); err != nil {
			return fmt.Errorf("field %d: %w", i, err)
		}
		if _, exists := seen[field.ID]; exists {
			return fmt.Errorf("field %d: %w: %q", i, ErrFieldIDDuplicate, field.ID)
		}
		seen[field.ID] = struct{}{}
	}
	return nil
}

func validateField(field Field) error {
	if strings.TrimSpace(field.ID) == "" {
		return ErrFieldIDMissing
	}
	if !field.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrFieldTypeUnknown, field.Type)
	}
	return nil
}
