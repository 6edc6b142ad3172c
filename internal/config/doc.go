// Package config loads formbuilder settings from defaults, an optional YAML
// file and FORMBUILDER_* environment variables, in that order of precedence.
package config
