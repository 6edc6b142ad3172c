package validation_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

func TestValidate(t *testing.T) {
	name := model.Field{ID: "name", Type: model.FieldTypeText, Label: "Name", Required: true}
	bounded := model.Field{ID: "bio", Type: model.FieldTypeTextarea, MinLength: model.Int(3), MaxLength: model.Int(5)}
	slider := model.Field{ID: "score", Type: model.FieldTypeSlider, Min: model.Float(0), Max: model.Float(10)}
	fractional := model.Field{ID: "ratio", Type: model.FieldTypeSlider, Min: model.Float(0.5), Max: model.Float(2.5)}
	requiredSlider := model.Field{ID: "rating", Type: model.FieldTypeSlider, Required: true, Min: model.Float(0), Max: model.Float(10)}
	checkbox := model.Field{ID: "tags", Type: model.FieldTypeCheckbox, Required: true, Options: model.DefaultOptions()}

	cases := []struct {
		name  string
		field model.Field
		value any
		want  validation.Result
	}{
		{"required empty string", name, "", validation.Fail("This field is required")},
		{"required nil", name, nil, validation.Fail("This field is required")},
		{"required satisfied", name, "Ana", validation.Pass},
		{"optional empty", bounded, "", validation.Fail("Minimum length is 3")},
		{"optional nil skips length", bounded, nil, validation.Pass},
		{"too short", bounded, "ab", validation.Fail("Minimum length is 3")},
		{"too long", bounded, "abcdef", validation.Fail("Maximum length is 5")},
		{"length counts runes", bounded, "ñañañ", validation.Pass},
		{"slider above max", slider, 15, validation.Fail("Maximum value is 10")},
		{"slider below min", slider, -1.5, validation.Fail("Minimum value is 0")},
		{"slider within range", slider, 10, validation.Pass},
		{"slider json number", slider, json.Number("11"), validation.Fail("Maximum value is 10")},
		{"fractional bounds", fractional, 3, validation.Fail("Maximum value is 2.5")},
		{"fractional min", fractional, float32(0.25), validation.Fail("Minimum value is 0.5")},
		{"string ignores value rules", slider, "15", validation.Pass},
		{"number ignores length rules", bounded, 1, validation.Pass},
		{"empty checkbox selection passes preview", checkbox, []string{}, validation.Pass},
		{"required zero is present", requiredSlider, 0, validation.Pass},
		{"required float zero is present", requiredSlider, 0.0, validation.Pass},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := validation.Validate(tc.field, tc.value)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidate_RequiredTakesPrecedence(t *testing.T) {
	field := model.Field{ID: "x", Type: model.FieldTypeText, Required: true, MinLength: model.Int(4)}
	if got := validation.Validate(field, ""); got.Message != validation.MessageRequired {
		t.Fatalf("expected required message first, got %q", got.Message)
	}
}

func TestValidate_AfterRequiredPatch(t *testing.T) {
	field := model.Field{ID: "x", Type: model.FieldTypeText, Label: "Name"}
	if got := validation.Validate(field, ""); !got.Valid {
		t.Fatalf("optional field must pass, got %+v", got)
	}
	field = model.SetRequired(true).Apply(field)
	want := validation.Fail("This field is required")
	if diff := cmp.Diff(want, validation.Validate(field, "")); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateForm(t *testing.T) {
	fields := []model.Field{
		{ID: "input-1", Type: model.FieldTypeText, Label: "Name", Required: true},
		{ID: "input-2", Type: model.FieldTypeEmail, Label: "Email", Required: true},
		{ID: "input-3", Type: model.FieldTypeSlider, Max: model.Float(10)},
	}

	report := validation.ValidateForm(fields, map[string]any{
		"input-2": "ana@example.com",
		"input-3": 12,
	})

	want := []validation.Issue{
		{Field: "input-1", Message: "This field is required"},
		{Field: "input-3", Message: "Maximum value is 10"},
	}
	if diff := cmp.Diff(want, report.Issues); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
	if report.Valid() {
		t.Fatalf("expected invalid report")
	}
	if got := report.Message("input-3"); got != "Maximum value is 10" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := report.Errors()["input-1"]; got != "This field is required" {
		t.Fatalf("unexpected errors map entry %q", got)
	}
}

func TestIsEmpty(t *testing.T) {
	blank := ""
	cases := []struct {
		value any
		want  bool
	}{
		{nil, true},
		{"", true},
		{&blank, true},
		{(*string)(nil), true},
		{" ", false},
		{0, false},
		{0.0, false},
		{false, false},
		{[]string{}, false},
	}
	for _, tc := range cases {
		if got := validation.IsEmpty(tc.value); got != tc.want {
			t.Errorf("IsEmpty(%#v) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := map[float64]string{10: "10", 2.5: "2.5", -3: "-3", 0: "0", 1e21: "1000000000000000000000"}
	for in, want := range cases {
		if got := validation.FormatNumber(in); got != want {
			t.Fatalf("FormatNumber(%v): want %q, got %q", in, want, got)
		}
	}
}
