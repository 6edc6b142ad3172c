package model

// FieldType enumerates the input kinds a form builder can place on a form.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeEmail    FieldType = "email"
	FieldTypePhone    FieldType = "phone"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeFile     FieldType = "file"
	FieldTypeLocation FieldType = "location"
	FieldTypeDatetime FieldType = "datetime"
	FieldTypeSlider   FieldType = "slider"
	FieldTypeRadio    FieldType = "radio"
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeSelect   FieldType = "select"
	FieldTypeCombobox FieldType = "combobox"
)

var fieldTypes = []FieldType{
	FieldTypeText,
	FieldTypeEmail,
	FieldTypePhone,
	FieldTypeTextarea,
	FieldTypeFile,
	FieldTypeLocation,
	FieldTypeDatetime,
	FieldTypeSlider,
	FieldTypeRadio,
	FieldTypeCheckbox,
	FieldTypeSelect,
	FieldTypeCombobox,
}

// FieldTypes returns every supported field type in palette order.
func FieldTypes() []FieldType {
	return append([]FieldType(nil), fieldTypes...)
}

// Valid reports whether t is one of the supported field types.
func (t FieldType) Valid() bool {
	for _, candidate := range fieldTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// IsChoice reports whether the type renders a list of options.
func (t FieldType) IsChoice() bool {
	switch t {
	case FieldTypeRadio, FieldTypeCheckbox, FieldTypeSelect, FieldTypeCombobox:
		return true
	}
	return false
}

// IsTextLike reports whether minLength/maxLength constraints apply to the type.
func (t FieldType) IsTextLike() bool {
	switch t {
	case FieldTypeText, FieldTypeTextarea, FieldTypeEmail:
		return true
	}
	return false
}

// Layout selects the column arrangement used when rendering a form.
type Layout string

const (
	LayoutOneColumn    Layout = "1"
	LayoutTwoColumns   Layout = "2"
	LayoutThreeColumns Layout = "3"
	LayoutFourColumns  Layout = "4"
	LayoutResponsive   Layout = "responsive"
)

// DefaultLayout is the selector a new form starts with.
const DefaultLayout = LayoutResponsive

// Layouts lists the supported selectors.
func Layouts() []Layout {
	return []Layout{LayoutResponsive, LayoutOneColumn, LayoutTwoColumns, LayoutThreeColumns, LayoutFourColumns}
}

// Valid reports whether l is a known selector.
func (l Layout) Valid() bool {
	for _, candidate := range Layouts() {
		if candidate == l {
			return true
		}
	}
	return false
}

// Option is a label/value pair offered by choice-based fields.
type Option struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Field describes a single configurable input. ID and Type are fixed once the
// field is created; everything else can be patched.
type Field struct {
	ID          string    `json:"id" yaml:"id"`
	Type        FieldType `json:"type" yaml:"type"`
	Label       string    `json:"label" yaml:"label"`
	Required    bool      `json:"required" yaml:"required"`
	MinLength   *int      `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength   *int      `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Min         *float64  `json:"min,omitempty" yaml:"min,omitempty"`
	Max         *float64  `json:"max,omitempty" yaml:"max,omitempty"`
	Step        *float64  `json:"step,omitempty" yaml:"step,omitempty"`
	Options     []Option  `json:"options,omitempty" yaml:"options,omitempty"`
	Placeholder string    `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

// Clone returns a deep copy so callers never share option slices or
// constraint pointers with the original.
func (f Field) Clone() Field {
	out := f
	out.MinLength = clonePtr(f.MinLength)
	out.MaxLength = clonePtr(f.MaxLength)
	out.Min = clonePtr(f.Min)
	out.Max = clonePtr(f.Max)
	out.Step = clonePtr(f.Step)
	if f.Options != nil {
		out.Options = append([]Option(nil), f.Options...)
	}
	return out
}

// Form is a point-in-time view of a form: its ordered fields, the layout
// selector and the id of the field currently being edited (empty for none).
type Form struct {
	Fields    []Field `json:"fields" yaml:"fields"`
	Layout    Layout  `json:"layout" yaml:"layout"`
	EditingID string  `json:"editingId,omitempty" yaml:"-"`
}

// Clone deep-copies the form.
func (f Form) Clone() Form {
	return Form{
		Fields:    CloneFields(f.Fields),
		Layout:    f.Layout,
		EditingID: f.EditingID,
	}
}

// CloneFields deep-copies a field slice.
func CloneFields(fields []Field) []Field {
	if fields == nil {
		return nil
	}
	out := make([]Field, len(fields))
	for i, field := range fields {
		out[i] = field.Clone()
	}
	return out
}

// DefaultOptions returns the options seeded into a new choice-based field.
func DefaultOptions() []Option {
	return []Option{
		{Label: "Option 1", Value: "option1"},
		{Label: "Option 2", Value: "option2"},
	}
}

// Int returns a pointer to v, handy for constraint literals.
func Int(v int) *int { return &v }

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
