package model

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFieldTypes(t *testing.T) {
	types := FieldTypes()
	if len(types) != 12 {
		t.Fatalf("expected 12 field types, got %d", len(types))
	}
	types[0] = "mutated"
	if FieldTypes()[0] != FieldTypeText {
		t.Fatalf("FieldTypes must return a copy")
	}
	if FieldType("signature").Valid() {
		t.Fatalf("unknown type reported valid")
	}
}

func TestFieldTypePredicates(t *testing.T) {
	choice := map[FieldType]bool{FieldTypeRadio: true, FieldTypeCheckbox: true, FieldTypeSelect: true, FieldTypeCombobox: true}
	textLike := map[FieldType]bool{FieldTypeText: true, FieldTypeTextarea: true, FieldTypeEmail: true}
	for _, ft := range FieldTypes() {
		if got := ft.IsChoice(); got != choice[ft] {
			t.Errorf("%s IsChoice = %v", ft, got)
		}
		if got := ft.IsTextLike(); got != textLike[ft] {
			t.Errorf("%s IsTextLike = %v", ft, got)
		}
	}
}

func TestTitle(t *testing.T) {
	cases := map[FieldType]string{
		FieldTypeTextarea: "Textarea",
		FieldTypeDatetime: "Datetime",
		FieldTypeEmail:    "Email",
		"":                "",
	}
	for ft, want := range cases {
		if got := ft.Title(); got != want {
			t.Errorf("%q Title() = %q, want %q", ft, got, want)
		}
	}
}

func TestNewField(t *testing.T) {
	radio := NewField("input-1", FieldTypeRadio)
	want := Field{
		ID:      "input-1",
		Type:    FieldTypeRadio,
		Label:   "New radio input",
		Options: DefaultOptions(),
	}
	if diff := cmp.Diff(want, radio); diff != "" {
		t.Fatalf("radio mismatch (-want +got):\n%s", diff)
	}

	text := NewField("input-2", FieldTypeText)
	if text.Options != nil || text.Required || text.MinLength != nil {
		t.Fatalf("text field should have no options or constraints: %+v", text)
	}
}

func TestCloneIsDeep(t *testing.T) {
	original := Field{ID: "a", Type: FieldTypeSlider, Min: Float(1), Options: []Option{{Label: "x", Value: "x"}}}
	clone := original.Clone()
	*clone.Min = 5
	clone.Options[0].Value = "y"
	if *original.Min != 1 || original.Options[0].Value != "x" {
		t.Fatalf("clone shares state with original: %+v", original)
	}

	form := Form{Fields: []Field{original}, Layout: LayoutTwoColumns, EditingID: "a"}
	copied := form.Clone()
	copied.Fields[0].Label = "changed"
	if form.Fields[0].Label != "" {
		t.Fatalf("form clone shares fields")
	}
	if copied.EditingID != "a" || copied.Layout != LayoutTwoColumns {
		t.Fatalf("form clone lost scalars: %+v", copied)
	}
	if CloneFields(nil) != nil {
		t.Fatalf("cloning nil fields should stay nil")
	}
}

func TestLayouts(t *testing.T) {
	want := []Layout{LayoutResponsive, LayoutOneColumn, LayoutTwoColumns, LayoutThreeColumns, LayoutFourColumns}
	if diff := cmp.Diff(want, Layouts()); diff != "" {
		t.Fatalf("layouts mismatch (-want +got):\n%s", diff)
	}
	if Layout("5").Valid() || Layout("").Valid() {
		t.Fatalf("unexpected valid layout")
	}
}

func TestValidateForm(t *testing.T) {
	tests := []struct {
		name string
		form Form
		want error
	}{
		{"ok", Form{Fields: []Field{{ID: "a", Type: FieldTypeText}}}, nil},
		{"missing id", Form{Fields: []Field{{ID: " ", Type: FieldTypeText}}}, ErrFieldIDMissing},
		{"duplicate id", Form{Fields: []Field{{ID: "a", Type: FieldTypeText}, {ID: "a", Type: FieldTypeEmail}}}, ErrFieldIDDuplicate},
		{"unknown type", Form{Fields: []Field{{ID: "a", Type: "signature"}}}, ErrFieldTypeUnknown},
		{"unknown layout", Form{Layout: "6"}, ErrLayoutUnknown},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateForm(tc.form)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
