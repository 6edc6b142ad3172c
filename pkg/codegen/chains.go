package codegen

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

// PhonePattern is the E.164-style pattern emitted for phone fields.
const PhonePattern = `^\+?[1-9]\d{1,14}$`

// Messages emitted into the generated schema.
const (
	MessageRequired     = "Required"
	MessageInvalidEmail = "Invalid email address"
	MessageInvalidPhone = "Invalid phone number"
	MessageSelectOne    = "Select at least one option"
)

// SchemaChain returns the zod expression validating field. Sliders get a
// number chain, checkboxes an array chain and every other type a string chain.
func SchemaChain(field model.Field) string {
	switch field.Type {
	case model.FieldTypeSlider:
		return numberChain(field)
	case model.FieldTypeCheckbox:
		return fmt.Sprintf("z.array(z.string()).min(1, { message: %s })", jsString(MessageSelectOne))
	default:
		return stringChain(field)
	}
}

// stringChain applies rules in a fixed order: presence, minLength, maxLength,
// email, phone pattern. Optional fields end in .optional() so the preceding
// refinements stay on the string schema.
func stringChain(field model.Field) string {
	var b strings.Builder
	b.WriteString("z.string()")
	if field.Required {
		fmt.Fprintf(&b, ".min(1, { message: %s })", jsString(MessageRequired))
	}
	if field.Type.IsTextLike() {
		if field.MinLength != nil {
			fmt.Fprintf(&b, ".min(%d, { message: %s })", *field.MinLength, jsString(fmt.Sprintf("Minimum length is %d", *field.MinLength)))
		}
		if field.MaxLength != nil {
			fmt.Fprintf(&b, ".max(%d, { message: %s })", *field.MaxLength, jsString(fmt.Sprintf("Maximum length is %d", *field.MaxLength)))
		}
	}
	switch field.Type {
	case model.FieldTypeEmail:
		fmt.Fprintf(&b, ".email(%s)", jsString(MessageInvalidEmail))
	case model.FieldTypePhone:
		fmt.Fprintf(&b, ".regex(/%s/, { message: %s })", PhonePattern, jsString(MessageInvalidPhone))
	}
	if !field.Required {
		b.WriteString(".optional()")
	}
	return b.String()
}

func numberChain(field model.Field) string {
	var b strings.Builder
	b.WriteString("z.number()")
	if field.Min != nil {
		v := validation.FormatNumber(*field.Min)
		fmt.Fprintf(&b, ".min(%s, { message: %s })", v, jsString("Minimum value is "+v))
	}
	if field.Max != nil {
		v := validation.FormatNumber(*field.Max)
		fmt.Fprintf(&b, ".max(%s, { message: %s })", v, jsString("Maximum value is "+v))
	}
	return b.String()
}

// DefaultValue returns the literal used in defaultValues for field.
func DefaultValue(field model.Field) string {
	switch field.Type {
	case model.FieldTypeSlider:
		return validation.FormatNumber(sliderMin(field))
	case model.FieldTypeCheckbox:
		return "[]"
	default:
		return `""`
	}
}

func sliderMin(field model.Field) float64 {
	if field.Min != nil {
		return *field.Min
	}
	return 0
}

func sliderMax(field model.Field) float64 {
	if field.Max != nil {
		return *field.Max
	}
	return 100
}

func sliderStep(field model.Field) float64 {
	if field.Step != nil && *field.Step > 0 {
		return *field.Step
	}
	return 1
}
