package render

import (
	"sort"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

// ErrorMapping splits an error payload into field-level and form-level
// messages.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// For returns the messages for a field id.
func (m ErrorMapping) For(fieldID string) []string {
	return m.Fields[fieldID]
}

// ErrorsFromReport converts a validation report into the payload shape of
// RenderOptions.Errors.
func ErrorsFromReport(report validation.Report) map[string][]string {
	if report.Valid() {
		return nil
	}
	out := make(map[string][]string, len(report.Issues))
	for _, issue := range report.Issues {
		out[issue.Field] = append(out[issue.Field], issue.Message)
	}
	return out
}

// MapErrors resolves payload keys against the form's field ids. Keys may be a
// bare id or a JSON pointer such as "/values/input-1". Messages are trimmed
// and de-duplicated; unknown keys become form-level messages so nothing is
// lost.
func MapErrors(form model.Form, payload map[string][]string) ErrorMapping {
	mapping := ErrorMapping{}
	if len(payload) == 0 {
		return mapping
	}

	ids := make(map[string]struct{}, len(form.Fields))
	for _, field := range form.Fields {
		ids[field.ID] = struct{}{}
	}

	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		id := resolveKey(key, ids)
		if id == "" {
			mapping.Form = append(mapping.Form, payload[key]...)
			continue
		}
		if mapping.Fields == nil {
			mapping.Fields = make(map[string][]string)
		}
		mapping.Fields[id] = normalizeMessages(append(mapping.Fields[id], payload[key]...))
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

func resolveKey(raw string, ids map[string]struct{}) string {
	key := strings.TrimSpace(raw)
	if key == "" {
		return ""
	}
	if _, ok := ids[key]; ok {
		return key
	}
	if !strings.HasPrefix(key, "/") {
		return ""
	}
	segments := strings.Split(strings.TrimPrefix(key, "/"), "/")
	for i := len(segments) - 1; i >= 0; i-- {
		segment := strings.NewReplacer("~1", "/", "~0", "~").Replace(segments[i])
		if _, ok := ids[segment]; ok {
			return segment
		}
	}
	return ""
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}
	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
