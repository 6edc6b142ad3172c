package validation

import "github.com/goliatone/go-formbuilder/pkg/model"

// Issue is a failed rule attached to a field.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Report collects the outcome of validating a whole form submission. Issues
// follow field order so output is stable.
type Report struct {
	Issues []Issue `json:"issues,omitempty"`
}

// Valid reports whether no field failed.
func (r Report) Valid() bool {
	return len(r.Issues) == 0
}

// Errors maps field ids to their message, the shape renderers consume.
func (r Report) Errors() map[string]string {
	if len(r.Issues) == 0 {
		return nil
	}
	out := make(map[string]string, len(r.Issues))
	for _, issue := range r.Issues {
		out[issue.Field] = issue.Message
	}
	return out
}

// Message returns the message for a field id, or "".
func (r Report) Message(fieldID string) string {
	for _, issue := range r.Issues {
		if issue.Field == fieldID {
			return issue.Message
		}
	}
	return ""
}

// Add appends an issue.
func (r *Report) Add(fieldID, message string) {
	r.Issues = append(r.Issues, Issue{Field: fieldID, Message: message})
}

// ValidateForm validates every field against values keyed by field id, the
// way the preview does on submit. Missing keys validate as nil.
func ValidateForm(fields []model.Field, values map[string]any) Report {
	var report Report
	for _, field := range fields {
		result := Validate(field, values[field.ID])
		if !result.Valid {
			report.Add(field.ID, result.Message)
		}
	}
	return report
}
