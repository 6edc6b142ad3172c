// Package openapi describes a form's submission contract as an OpenAPI 3
// schema and validates submissions against it. It is the strict counterpart
// of the preview rules in pkg/validation: the schema mirrors what the
// generated component enforces, including email and phone formats and the
// checkbox minimum.
package openapi
