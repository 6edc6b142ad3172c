package store

import "github.com/goliatone/go-formbuilder/pkg/model"

// DefaultSeed returns the contact form a new builder session starts with:
// a required name, a required email and an optional message.
func DefaultSeed() []model.Field {
	return []model.Field{
		{ID: IDPrefix + "1684761600000", Type: model.FieldTypeText, Label: "Name", Required: true},
		{ID: IDPrefix + "1684761600001", Type: model.FieldTypeEmail, Label: "Email", Required: true},
		{ID: IDPrefix + "1684761600002", Type: model.FieldTypeTextarea, Label: "Message"},
	}
}
