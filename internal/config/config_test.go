package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

func envMap(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestNewDefaults(t *testing.T) {
	cfg := New()
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, model.LayoutResponsive, cfg.Layout)
	assert.Equal(t, IDStrategyTimestamp, cfg.IDStrategy)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "formbuilder.yaml")
	raw := `
addr: ":9000"
layout: "2"
idStrategy: uuid
log:
  level: debug
theme:
  default: acme
  manifests:
    - name: acme
      version: "1.0.0"
      tokens:
        brand: "#123456"
      assets:
        prefix: /assets/acme
        files:
          preview.stylesheet: theme.css
      variants:
        dark:
          tokens:
            brand: "#000000"
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path())
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, model.LayoutTwoColumns, cfg.Layout)
	assert.Equal(t, IDStrategyUUID, cfg.IDStrategy)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)

	require.NoError(t, cfg.ApplyEnv(envMap(map[string]string{
		"FORMBUILDER_ADDR":   ":7000",
		"FORMBUILDER_LAYOUT": "4",
		"FORMBUILDER_STRICT": "true",
	})))
	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, model.LayoutFourColumns, cfg.Layout)
	assert.True(t, cfg.Strict)
	require.NoError(t, cfg.Validate())

	manifests := cfg.ThemeManifests()
	require.Len(t, manifests, 1)
	assert.Equal(t, "acme", manifests[0].Name)
	assert.Equal(t, "/assets/acme", manifests[0].Assets.Prefix)
	assert.Equal(t, "#000000", manifests[0].Variants["dark"].Tokens["brand"])
}

func TestApplyEnvRejectsBadBool(t *testing.T) {
	cfg := New()
	err := cfg.ApplyEnv(envMap(map[string]string{"FORMBUILDER_STRICT": "maybe"}))
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"layout", func(c *Config) { c.Layout = "5" }},
		{"id strategy", func(c *Config) { c.IDStrategy = "random" }},
		{"log format", func(c *Config) { c.Log.Format = "xml" }},
		{"unnamed theme", func(c *Config) { c.Theme.Manifests = []ThemeManifest{{}} }},
		{"duplicate theme", func(c *Config) {
			c.Theme.Manifests = []ThemeManifest{{Name: "a"}, {Name: "a"}}
		}},
		{"undeclared default", func(c *Config) { c.Theme.Default = "missing" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := New()
			tc.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("addr: [unterminated"))
	assert.Error(t, err)
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	t.Setenv("FORMBUILDER_ID_STRATEGY", "UUID")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, IDStrategyUUID, cfg.IDStrategy)
}
