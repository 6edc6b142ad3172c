package formfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

const yamlForm = `
layout: "2"
fields:
  - id: input-1
    type: text
    label: Name
    required: true
    minLength: 2
  - id: input-2
    type: radio
    label: Plan
    options:
      - {label: Free, value: free}
      - {label: Pro, value: pro}
`

func TestParseYAML(t *testing.T) {
	form, err := Parse([]byte(yamlForm), "")
	require.NoError(t, err)

	assert.Equal(t, model.LayoutTwoColumns, form.Layout)
	require.Len(t, form.Fields, 2)
	assert.Equal(t, model.FieldTypeText, form.Fields[0].Type)
	require.NotNil(t, form.Fields[0].MinLength)
	assert.Equal(t, 2, *form.Fields[0].MinLength)
	assert.Equal(t, []model.Option{{Label: "Free", Value: "free"}, {Label: "Pro", Value: "pro"}}, form.Fields[1].Options)
}

func TestParseJSONDefaultsLayout(t *testing.T) {
	form, err := Parse([]byte(`{"fields":[{"id":"a","type":"email","label":"Email"}],"editingId":"a"}`), "")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultLayout, form.Layout)
	assert.Empty(t, form.EditingID)
}

func TestParseRejectsInvalidForms(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"unknown type", `{"fields":[{"id":"a","type":"color"}]}`, model.ErrFieldTypeUnknown},
		{"duplicate id", `{"fields":[{"id":"a","type":"text"},{"id":"a","type":"text"}]}`, model.ErrFieldIDDuplicate},
		{"missing id", `{"fields":[{"type":"text"}]}`, model.ErrFieldIDMissing},
		{"unknown layout", `{"layout":"7","fields":[]}`, model.ErrLayoutUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), FormatJSON)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	_, err := Parse([]byte("{"), FormatJSON)
	assert.Error(t, err)
	_, err = Parse([]byte("x"), Format("toml"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	seed := testsupport.KitchenSinkForm()
	seed.EditingID = seed.Fields[0].ID

	for _, name := range []string{"form.json", "form.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, Save(path, seed))

			loaded, err := Load(path)
			require.NoError(t, err)

			want := seed.Clone()
			want.EditingID = ""
			assert.Equal(t, want, loaded)
		})
	}
}

func TestEncodeOmitsEditingReference(t *testing.T) {
	form := testsupport.SeedForm()
	form.EditingID = form.Fields[0].ID
	out, err := Encode(form, FormatYAML)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "editing")
	assert.Contains(t, string(out), "id: input-1684761600000")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)
	_, err = ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.Equal(t, FormatYAML, FormatFromPath("a/b.yml"))
	assert.Equal(t, FormatJSON, FormatFromPath("a/b"))
}
