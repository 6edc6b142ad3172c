package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

func TestMapErrors(t *testing.T) {
	form := model.Form{Fields: []model.Field{
		{ID: "input-1", Type: model.FieldTypeText},
		{ID: "input-2", Type: model.FieldTypeEmail},
	}}
	payload := map[string][]string{
		"input-1":         {" Required ", "Required"},
		"/values/input-2": {"Invalid email address"},
		"/form":           {"Submission rejected"},
		"unknown":         {"", "Try again"},
	}

	got := MapErrors(form, payload)
	want := ErrorMapping{
		Fields: map[string][]string{
			"input-1": {"Required"},
			"input-2": {"Invalid email address"},
		},
		Form: []string{"Submission rejected", "Try again"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mapping mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Required"}, got.For("input-1")); diff != "" {
		t.Fatalf("For mismatch (-want +got):\n%s", diff)
	}
}

func TestMapErrorsEmpty(t *testing.T) {
	got := MapErrors(model.Form{}, nil)
	if got.Fields != nil || got.Form != nil {
		t.Fatalf("expected empty mapping, got %+v", got)
	}
}

func TestErrorsFromReport(t *testing.T) {
	var report validation.Report
	if ErrorsFromReport(report) != nil {
		t.Fatalf("expected nil for valid report")
	}
	report.Add("input-1", "This field is required")
	want := map[string][]string{"input-1": {"This field is required"}}
	if diff := cmp.Diff(want, ErrorsFromReport(report)); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}
