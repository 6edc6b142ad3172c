package openapi

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// EmailPattern approximates the email check performed by the generated
// component.
const EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`

// PhonePattern is the E.164-style pattern applied to phone fields.
const PhonePattern = `^\+?[1-9]\d{1,14}$`

// SubmissionSchemaName is the components key used by Document.
const SubmissionSchemaName = "FormSubmission"

// SchemaFor builds the object schema of a submission keyed by field id.
func SchemaFor(fields []model.Field) *openapi3.Schema {
	root := openapi3.NewObjectSchema()
	var required []string
	for _, field := range fields {
		root.WithProperty(field.ID, FieldSchema(field))
		if field.Required || field.Type == model.FieldTypeCheckbox {
			required = append(required, field.ID)
		}
	}
	root.Required = required
	return root
}

// FieldSchema returns the schema for a single field value.
func FieldSchema(field model.Field) *openapi3.Schema {
	switch field.Type {
	case model.FieldTypeSlider:
		s := openapi3.NewFloat64Schema()
		if field.Min != nil {
			s.WithMin(*field.Min)
		}
		if field.Max != nil {
			s.WithMax(*field.Max)
		}
		return s
	case model.FieldTypeCheckbox:
		return openapi3.NewArraySchema().
			WithItems(openapi3.NewStringSchema()).
			WithMinItems(1)
	}

	s := openapi3.NewStringSchema()
	if field.Required {
		s.WithMinLength(1)
	}
	if field.Type.IsTextLike() {
		if field.MinLength != nil {
			s.WithMinLength(int64(*field.MinLength))
		}
		if field.MaxLength != nil {
			s.WithMaxLength(int64(*field.MaxLength))
		}
	}
	switch field.Type {
	case model.FieldTypeEmail:
		s.WithFormat("email").WithPattern(EmailPattern)
	case model.FieldTypePhone:
		s.WithPattern(PhonePattern)
	case model.FieldTypeRadio, model.FieldTypeSelect:
		if len(field.Options) > 0 {
			enum := make([]any, len(field.Options))
			for i, opt := range field.Options {
				enum[i] = opt.Value
			}
			s.WithEnum(enum...)
		}
	}
	if label := field.Label; label != "" {
		s.Title = label
	}
	return s
}

// Document wraps the submission schema in a minimal OpenAPI 3 document so it
// can be handed to other tooling. The document is validated before return.
func Document(ctx context.Context, title string, fields []model.Field) (*openapi3.T, error) {
	if title == "" {
		title = "Generated form"
	}
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   title,
			Version: "1.0.0",
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				SubmissionSchemaName: openapi3.NewSchemaRef("", SchemaFor(fields)),
			},
		},
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("openapi: validate document: %w", err)
	}
	return doc, nil
}

// LoadDocument parses raw OpenAPI JSON or YAML, such as the output of
// Document, and returns its submission schema.
func LoadDocument(ctx context.Context, raw []byte) (*openapi3.Schema, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if doc.Components == nil {
		return nil, fmt.Errorf("openapi: document has no components")
	}
	ref, ok := doc.Components.Schemas[SubmissionSchemaName]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("openapi: document has no %s schema", SubmissionSchemaName)
	}
	return ref.Value, nil
}
