package model

import internalmodel "github.com/goliatone/go-formbuilder/internal/model"

// FieldType re-exports the internal FieldType enumeration.
type FieldType = internalmodel.FieldType

const (
	FieldTypeText     = internalmodel.FieldTypeText
	FieldTypeEmail    = internalmodel.FieldTypeEmail
	FieldTypePhone    = internalmodel.FieldTypePhone
	FieldTypeTextarea = internalmodel.FieldTypeTextarea
	FieldTypeFile     = internalmodel.FieldTypeFile
	FieldTypeLocation = internalmodel.FieldTypeLocation
	FieldTypeDatetime = internalmodel.FieldTypeDatetime
	FieldTypeSlider   = internalmodel.FieldTypeSlider
	FieldTypeRadio    = internalmodel.FieldTypeRadio
	FieldTypeCheckbox = internalmodel.FieldTypeCheckbox
	FieldTypeSelect   = internalmodel.FieldTypeSelect
	FieldTypeCombobox = internalmodel.FieldTypeCombobox
)

// Layout re-exports the layout selector.
type Layout = internalmodel.Layout

const (
	LayoutOneColumn    = internalmodel.LayoutOneColumn
	LayoutTwoColumns   = internalmodel.LayoutTwoColumns
	LayoutThreeColumns = internalmodel.LayoutThreeColumns
	LayoutFourColumns  = internalmodel.LayoutFourColumns
	LayoutResponsive   = internalmodel.LayoutResponsive
	DefaultLayout      = internalmodel.DefaultLayout
)

type Option = internalmodel.Option
type Field = internalmodel.Field
type Form = internalmodel.Form
type Patch = internalmodel.Patch

// NullableInt and NullableFloat re-export the three-state optional updates
// used by Patch.
type NullableInt = internalmodel.Nullable[int]
type NullableFloat = internalmodel.Nullable[float64]

var (
	ErrFieldIDMissing   = internalmodel.ErrFieldIDMissing
	ErrFieldIDDuplicate = internalmodel.ErrFieldIDDuplicate
	ErrFieldTypeUnknown = internalmodel.ErrFieldTypeUnknown
	ErrLayoutUnknown    = internalmodel.ErrLayoutUnknown
)

// FieldTypes lists every supported field type in palette order.
func FieldTypes() []FieldType { return internalmodel.FieldTypes() }

// Layouts lists the supported layout selectors.
func Layouts() []Layout { return internalmodel.Layouts() }

// NewField builds a field with the defaults applied to freshly added inputs.
func NewField(id string, t FieldType) Field { return internalmodel.NewField(id, t) }

// DefaultLabel returns the label given to a freshly added field of type t.
func DefaultLabel(t FieldType) string { return internalmodel.DefaultLabel(t) }

// DefaultOptions returns the options seeded into new choice-based fields.
func DefaultOptions() []Option { return internalmodel.DefaultOptions() }

// CloneFields deep-copies a field slice.
func CloneFields(fields []Field) []Field { return internalmodel.CloneFields(fields) }

// ValidateForm checks ids, types and layout of a form definition.
func ValidateForm(form Form) error { return internalmodel.ValidateForm(form) }

// ValidateFields checks ids and types of a field sequence.
func ValidateFields(fields []Field) error { return internalmodel.ValidateFields(fields) }

// Replace builds a Nullable that sets an attribute to v.
func Replace[T any](v T) internalmodel.Nullable[T] { return internalmodel.Replace(v) }

// Clear builds a Nullable that removes an attribute.
func Clear[T any]() internalmodel.Nullable[T] { return internalmodel.Clear[T]() }

// SetLabel is shorthand for a label-only patch.
func SetLabel(label string) Patch { return internalmodel.SetLabel(label) }

// SetRequired is shorthand for a required-only patch.
func SetRequired(required bool) Patch { return internalmodel.SetRequired(required) }

// Int returns a pointer to v.
func Int(v int) *int { return internalmodel.Int(v) }

// Float returns a pointer to v.
func Float(v float64) *float64 { return internalmodel.Float(v) }
