// Package validation implements the preview validation rules applied to a
// single field value. Rules run in a fixed precedence and stop at the first
// failure: required, minimum length, maximum length, minimum value, maximum
// value. Type-specific checks (email format, phone pattern, "at least one"
// checkbox selection) are deliberately absent here; they belong to the
// generated component and to pkg/openapi's strict mode.
package validation
