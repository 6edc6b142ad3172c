package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

const (
	// DefaultAddr is the default HTTP listen address.
	DefaultAddr = ":8080"
	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"
	// DefaultLogFormat is used when no format is configured.
	DefaultLogFormat = "text"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "FORMBUILDER_"
)

// IDStrategy selects how the store mints field ids.
type IDStrategy string

const (
	IDStrategyTimestamp IDStrategy = "timestamp"
	IDStrategyUUID      IDStrategy = "uuid"
)

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("config: invalid")
)

// Config holds the settings shared by the CLI and the HTTP server.
type Config struct {
	Addr       string       `yaml:"addr"`
	Layout     model.Layout `yaml:"layout"`
	IDStrategy IDStrategy   `yaml:"idStrategy"`
	Strict     bool         `yaml:"strict"`
	FormFile   string       `yaml:"formFile"`
	Log        LogConfig    `yaml:"log"`
	Theme      ThemeConfig  `yaml:"theme"`

	path string
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ThemeConfig declares the themes available to the preview renderer.
type ThemeConfig struct {
	Default   string          `yaml:"default"`
	Variant   string          `yaml:"variant"`
	Manifests []ThemeManifest `yaml:"manifests"`
}

// ThemeManifest is the YAML shape of a go-theme manifest.
type ThemeManifest struct {
	Name      string                  `yaml:"name"`
	Version   string                  `yaml:"version"`
	Tokens    map[string]string       `yaml:"tokens"`
	Templates map[string]string       `yaml:"templates"`
	Assets    ThemeAssets             `yaml:"assets"`
	Variants  map[string]ThemeVariant `yaml:"variants"`
}

// ThemeAssets maps asset keys to files under Prefix.
type ThemeAssets struct {
	Prefix string            `yaml:"prefix"`
	Files  map[string]string `yaml:"files"`
}

// ThemeVariant overrides part of a manifest.
type ThemeVariant struct {
	Tokens    map[string]string `yaml:"tokens"`
	Templates map[string]string `yaml:"templates"`
	Assets    ThemeAssets       `yaml:"assets"`
}

// New returns a Config populated with defaults.
func New() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads path when it is non-empty, then applies environment overrides
// and validates the result.
func Load(path string) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	if path == "" {
		cfg = New()
	} else if cfg, err = LoadFile(path); err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads a YAML config file and fills unset values with defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	cfg.path = path
	return cfg, nil
}

// Parse decodes YAML config data.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Path returns the file the config was loaded from, if any.
func (c *Config) Path() string {
	return c.path
}

// ApplyEnv overrides values from FORMBUILDER_* variables resolved by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		return nil
	}
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok && v != "" {
			*dst = v
		}
	}
	str("ADDR", &c.Addr)
	str("FORM_FILE", &c.FormFile)
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)
	str("THEME", &c.Theme.Default)
	str("THEME_VARIANT", &c.Theme.Variant)
	if v, ok := lookup(EnvPrefix + "LAYOUT"); ok && v != "" {
		c.Layout = model.Layout(v)
	}
	if v, ok := lookup(EnvPrefix + "ID_STRATEGY"); ok && v != "" {
		c.IDStrategy = IDStrategy(strings.ToLower(v))
	}
	if v, ok := lookup(EnvPrefix + "STRICT"); ok && v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %sSTRICT: %v", ErrInvalidConfig, EnvPrefix, err)
		}
		c.Strict = strict
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if !c.Layout.Valid() {
		return fmt.Errorf("%w: layout %q", ErrInvalidConfig, c.Layout)
	}
	switch c.IDStrategy {
	case IDStrategyTimestamp, IDStrategyUUID:
	default:
		return fmt.Errorf("%w: id strategy %q", ErrInvalidConfig, c.IDStrategy)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.Log.Format)
	}
	seen := make(map[string]bool, len(c.Theme.Manifests))
	for _, m := range c.Theme.Manifests {
		if m.Name == "" {
			return fmt.Errorf("%w: theme manifest without name", ErrInvalidConfig)
		}
		if seen[m.Name] {
			return fmt.Errorf("%w: duplicate theme %q", ErrInvalidConfig, m.Name)
		}
		seen[m.Name] = true
	}
	if c.Theme.Default != "" && !seen[c.Theme.Default] {
		return fmt.Errorf("%w: default theme %q not declared", ErrInvalidConfig, c.Theme.Default)
	}
	return nil
}

// ThemeManifests converts the declared themes to go-theme manifests.
func (c *Config) ThemeManifests() []*theme.Manifest {
	out := make([]*theme.Manifest, 0, len(c.Theme.Manifests))
	for _, m := range c.Theme.Manifests {
		manifest := &theme.Manifest{
			Name:      m.Name,
			Version:   m.Version,
			Tokens:    m.Tokens,
			Templates: m.Templates,
			Assets:    theme.Assets{Prefix: m.Assets.Prefix, Files: m.Assets.Files},
		}
		if len(m.Variants) > 0 {
			manifest.Variants = make(map[string]theme.Variant, len(m.Variants))
			for name, v := range m.Variants {
				manifest.Variants[name] = theme.Variant{
					Tokens:    v.Tokens,
					Templates: v.Templates,
					Assets:    theme.Assets{Prefix: v.Assets.Prefix, Files: v.Assets.Files},
				}
			}
		}
		out = append(out, manifest)
	}
	return out
}

func (c *Config) applyDefaults() {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.Layout == "" {
		c.Layout = model.DefaultLayout
	}
	if c.IDStrategy == "" {
		c.IDStrategy = IDStrategyTimestamp
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
}
