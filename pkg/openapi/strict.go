package openapi

import (
	"encoding/json"
	"reflect"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

// Messages reported by ValidateStrict when a value passes the preview rules
// but not the schema.
const (
	MessageInvalidEmail = "Invalid email address"
	MessageInvalidPhone = "Invalid phone number"
	MessageSelectOne    = "Select at least one option"
	MessageInvalidValue = "Invalid value"
)

// ValidateStrict applies the preview rules and then checks each field value
// against its schema. Empty optional values are skipped, except for
// checkboxes, which always need a selection.
func ValidateStrict(fields []model.Field, values map[string]any) validation.Report {
	var report validation.Report
	for _, field := range fields {
		value := values[field.ID]
		if result := validation.Validate(field, value); !result.Valid {
			report.Add(field.ID, result.Message)
			continue
		}
		if field.Type == model.FieldTypeCheckbox {
			if validation.IsEmpty(value) {
				value = []any{}
			}
		} else if validation.IsEmpty(value) {
			continue
		}
		if err := FieldSchema(field).VisitJSON(normalise(field, value)); err != nil {
			report.Add(field.ID, strictMessage(field))
		}
	}
	return report
}

func strictMessage(field model.Field) string {
	switch field.Type {
	case model.FieldTypeEmail:
		return MessageInvalidEmail
	case model.FieldTypePhone:
		return MessageInvalidPhone
	case model.FieldTypeCheckbox:
		return MessageSelectOne
	default:
		return MessageInvalidValue
	}
}

// normalise converts Go values into the JSON shapes VisitJSON expects.
func normalise(field model.Field, value any) any {
	if field.Type == model.FieldTypeSlider {
		if n, ok := validation.AsNumber(value); ok {
			return n
		}
	}
	switch v := value.(type) {
	case string, float64, bool, []any, map[string]any:
		return v
	case *string:
		if v == nil {
			return nil
		}
		return *v
	case json.Number:
		if n, err := v.Float64(); err == nil {
			return n
		}
		return v.String()
	}
	if n, ok := validation.AsNumber(value); ok {
		return n
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice {
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	}
	return value
}
