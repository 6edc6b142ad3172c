// Package formfile reads and writes form definitions as JSON or YAML
// documents of the shape {layout, fields}.
package formfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Format names an encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for encodings other than JSON and YAML.
var ErrUnknownFormat = errors.New("formfile: unknown format")

// FormatFromPath infers the encoding from a file extension. Anything that is
// not .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ParseFormat validates a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Load reads and parses the form at path.
func Load(path string) (model.Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Form{}, fmt.Errorf("formfile: read %s: %w", path, err)
	}
	form, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return model.Form{}, fmt.Errorf("formfile: %s: %w", path, err)
	}
	return form, nil
}

// Parse decodes data. An empty format sniffs the payload: documents starting
// with "{" are JSON, everything else YAML. A missing layout becomes the
// default; ids, types and the layout are validated.
func Parse(data []byte, format Format) (model.Form, error) {
	if format == "" {
		format = FormatYAML
		if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
			format = FormatJSON
		}
	}

	var form model.Form
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &form); err != nil {
			return model.Form{}, fmt.Errorf("formfile: decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &form); err != nil {
			return model.Form{}, fmt.Errorf("formfile: decode yaml: %w", err)
		}
	default:
		return model.Form{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if form.Layout == "" {
		form.Layout = model.DefaultLayout
	}
	form.EditingID = ""
	if form.Fields == nil {
		form.Fields = []model.Field{}
	}
	if err := model.ValidateForm(form); err != nil {
		return model.Form{}, err
	}
	return form, nil
}

// Encode serializes form. The editing reference is session state and is not
// written.
func Encode(form model.Form, format Format) ([]byte, error) {
	form = form.Clone()
	form.EditingID = ""
	if form.Fields == nil {
		form.Fields = []model.Field{}
	}

	switch format {
	case FormatJSON, "":
		out, err := json.MarshalIndent(form, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("formfile: encode json: %w", err)
		}
		return append(out, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(form); err != nil {
			return nil, fmt.Errorf("formfile: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("formfile: encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Save encodes form in the format implied by path and writes it.
func Save(path string, form model.Form) error {
	data, err := Encode(form, FormatFromPath(path))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("formfile: write %s: %w", path, err)
	}
	return nil
}
