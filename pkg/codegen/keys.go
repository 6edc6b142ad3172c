package codegen

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// SchemaKey derives a JavaScript identifier from a field id: every character
// outside [A-Za-z0-9_$] becomes "_" and a leading digit is prefixed with "_".
// "input-1684761600000" becomes "input_1684761600000".
func SchemaKey(id string) string {
	if id == "" {
		return "_"
	}
	var b strings.Builder
	for i, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_', r == '$':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// SchemaKeys returns the key for every field in order. Ids that sanitise to
// the same key get a numeric suffix ("_2", "_3") in order of appearance.
func SchemaKeys(fields []model.Field) []string {
	keys := make([]string, len(fields))
	used := make(map[string]bool, len(fields))
	for i, field := range fields {
		base := SchemaKey(field.ID)
		key := base
		for n := 2; used[key]; n++ {
			key = base + "_" + strconv.Itoa(n)
		}
		used[key] = true
		keys[i] = key
	}
	return keys
}
