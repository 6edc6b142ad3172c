package model

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Title renders the type as a palette label ("Textarea", "Datetime").
func (t FieldType) Title() string {
	if t == "" {
		return ""
	}
	return titleCaser.String(string(t))
}

// DefaultLabel is the label assigned to a freshly added field.
func DefaultLabel(t FieldType) string {
	return "New " + string(t) + " input"
}

// NewField builds a field of the given type with default label and, for
// choice-based types, the two default options.
func NewField(id string, t FieldType) Field {
	field := Field{
		ID:       id,
		Type:     t,
		Label:    DefaultLabel(t),
		Required: false,
	}
	if t.IsChoice() {
		field.Options = DefaultOptions()
	}
	return field
}
