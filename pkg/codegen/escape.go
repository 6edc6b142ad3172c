package codegen

import (
	"bytes"
	"encoding/json"
	"strings"
)

var jsxReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"{", "&#123;",
	"}", "&#125;",
)

// jsxText escapes user text placed in JSX children or quoted attributes.
func jsxText(s string) string {
	return jsxReplacer.Replace(s)
}

// jsString renders s as a double-quoted JavaScript string literal.
func jsString(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return `""`
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
