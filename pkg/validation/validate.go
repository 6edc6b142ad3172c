package validation

import (
	"encoding/json"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Messages used by the preview rules.
const (
	MessageRequired = "This field is required"
)

// Result is the outcome of validating one value.
type Result struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// Pass is the successful Result.
var Pass = Result{Valid: true}

// Fail builds a failed Result carrying message.
func Fail(message string) Result {
	return Result{Valid: false, Message: message}
}

// Validate evaluates field's constraints against value. Values may be nil, a
// string, any Go numeric kind, json.Number, or a slice of selections. Length
// rules only consider strings and value rules only consider numbers, so a
// constraint that does not match the value's shape is skipped.
func Validate(field model.Field, value any) Result {
	if field.Required && IsEmpty(value) {
		return Fail(MessageRequired)
	}

	if text, ok := value.(string); ok {
		length := utf8.RuneCountInString(text)
		if field.MinLength != nil && length < *field.MinLength {
			return Fail(fmt.Sprintf("Minimum length is %d", *field.MinLength))
		}
		if field.MaxLength != nil && length > *field.MaxLength {
			return Fail(fmt.Sprintf("Maximum length is %d", *field.MaxLength))
		}
	}

	if number, ok := AsNumber(value); ok {
		if field.Min != nil && number < *field.Min {
			return Fail("Minimum value is " + FormatNumber(*field.Min))
		}
		if field.Max != nil && number > *field.Max {
			return Fail("Maximum value is " + FormatNumber(*field.Max))
		}
	}

	return Pass
}

// IsEmpty reports whether value counts as absent for the required rule: nil
// or the empty string. Numbers and slices are never empty: a required slider
// at 0 passes, and so does an empty checkbox selection.
func IsEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case *string:
		return v == nil || *v == ""
	}
	return false
}

// AsNumber converts numeric values to float64. Strings are not numbers.
func AsNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// FormatNumber renders a constraint with the fewest digits that round-trip,
// so 10 prints as "10" and 2.5 as "2.5".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
