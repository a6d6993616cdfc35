// Package config loads build configuration files for the capability
// selector.
//
// A configuration names the target platform, the XCB opt-in and the
// resolver policy, plus optional header output settings. Files are YAML
// (.yaml, .yml) or HCL (.hcl). HCL files can refer to the machine running
// the tool through the host object:
//
//	platform    = host.platform
//	include_xcb = host.goos == "linux"
//
// Environment variables override the file: GGFEATURES_PLATFORM replaces
// the platform, and defining CAIRO_INCLUDE_XCB (to any value) turns the
// XCB opt-in on.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/features"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvPlatform   = "GGFEATURES_PLATFORM"
	EnvIncludeXCB = features.SymbolIncludeXCB
)

// Names searched by Find, in order.
var fileNames = []string{"ggfeatures.yaml", "ggfeatures.yml", "ggfeatures.hcl"}

var (
	// ErrUnsupportedFormat is returned for files that are neither YAML nor HCL.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrInvalidLang is returned for a header language other than c or go.
	ErrInvalidLang = errors.New("config: header lang must be \"c\" or \"go\"")
)

// Header holds header generation settings.
type Header struct {
	Lang        string `yaml:"lang,omitempty" hcl:"lang,optional"`
	Conditional bool   `yaml:"conditional,omitempty" hcl:"conditional,optional"`
	Package     string `yaml:"package,omitempty" hcl:"package,optional"`
	Output      string `yaml:"output,omitempty" hcl:"output,optional"`
}

// Config is a build configuration.
type Config struct {
	// Platform is a platform name or alias accepted by
	// features.ParsePlatform. Empty means the host platform.
	Platform   string `yaml:"platform,omitempty" hcl:"platform,optional"`
	IncludeXCB bool   `yaml:"include_xcb,omitempty" hcl:"include_xcb,optional"`

	Strict  bool     `yaml:"strict,omitempty" hcl:"strict,optional"`
	Require []string `yaml:"require,omitempty" hcl:"require,optional"`
	Disable []string `yaml:"disable,omitempty" hcl:"disable,optional"`

	// FontDirs replaces the platform font directories scanned by the
	// Fontconfig-style matcher.
	FontDirs []string `yaml:"font_dirs,omitempty" hcl:"font_dirs,optional"`

	Header *Header `yaml:"header,omitempty" hcl:"header,block"`

	// Source is the file the configuration was read from, if any.
	Source string `yaml:"-"`
}

// Default returns the configuration used when no file is given: the host
// target with a permissive resolver.
func Default() *Config {
	host := features.Host()
	return &Config{Platform: host.Platform.String(), IncludeXCB: host.IncludeXCB}
}

// Find looks for ggfeatures.yaml, ggfeatures.yml or ggfeatures.hcl in dir
// and returns the first one present. The bool is false when none exists.
func Find(dir string) (string, bool) {
	for _, name := range fileNames {
		p := filepath.Join(dir, name)
		if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
			return p, true
		}
	}
	return "", false
}

// Load reads the configuration at path, choosing the format by extension.
// An empty path returns Default. A missing file is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg *Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		cfg, err = ParseYAML(data)
	case ".hcl":
		cfg, err = ParseHCL(path, data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, err
	}
	cfg.Source = path

	features.Logger().Debug("config: loaded", "path", path, "platform", cfg.Platform)
	return cfg, nil
}

// ParseYAML decodes a YAML configuration.
func ParseYAML(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// EncodeYAML encodes c as a YAML document.
func (c *Config) EncodeYAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// ApplyEnv applies the environment overrides using os.LookupEnv.
func (c *Config) ApplyEnv() {
	c.ApplyLookup(os.LookupEnv)
}

// ApplyLookup applies the environment overrides read through lookup.
func (c *Config) ApplyLookup(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvPlatform); ok && strings.TrimSpace(v) != "" {
		c.Platform = v
	}
	if _, ok := lookup(EnvIncludeXCB); ok {
		c.IncludeXCB = true
	}
}

// Validate checks that every name in c parses.
func (c *Config) Validate() error {
	if c.Platform != "" {
		if _, err := features.ParsePlatform(c.Platform); err != nil {
			return fmt.Errorf("config: platform: %w", err)
		}
	}
	if _, err := features.ParseSet(c.Require); err != nil {
		return fmt.Errorf("config: require: %w", err)
	}
	if _, err := features.ParseSet(c.Disable); err != nil {
		return fmt.Errorf("config: disable: %w", err)
	}
	if c.Header != nil {
		switch c.Header.Lang {
		case "", "c", "go":
		default:
			return fmt.Errorf("%w, got %q", ErrInvalidLang, c.Header.Lang)
		}
	}
	return nil
}

// Target returns the selector input described by c. An empty platform
// means the host platform.
func (c *Config) Target() (features.Target, error) {
	if c.Platform == "" {
		return features.Target{Platform: features.Host().Platform, IncludeXCB: c.IncludeXCB}, nil
	}
	p, err := features.ParsePlatform(c.Platform)
	if err != nil {
		return features.Target{}, fmt.Errorf("config: platform: %w", err)
	}
	return features.Target{Platform: p, IncludeXCB: c.IncludeXCB}, nil
}

// Resolver builds a resolver carrying c's policy.
func (c *Config) Resolver() (*features.Resolver, error) {
	var opts []features.ResolverOption
	if c.Strict {
		opts = append(opts, features.WithStrict())
	}
	required, err := features.ParseSet(c.Require)
	if err != nil {
		return nil, fmt.Errorf("config: require: %w", err)
	}
	if !required.Empty() {
		opts = append(opts, features.WithRequired(required.List()...))
	}
	disabled, err := features.ParseSet(c.Disable)
	if err != nil {
		return nil, fmt.Errorf("config: disable: %w", err)
	}
	if !disabled.Empty() {
		opts = append(opts, features.WithDisabled(disabled.List()...))
	}
	return features.NewResolver(opts...), nil
}

// Resolve returns c's target and the capabilities its resolver selects.
func (c *Config) Resolve() (features.Target, features.Set, error) {
	t, err := c.Target()
	if err != nil {
		return features.Target{}, 0, err
	}
	r, err := c.Resolver()
	if err != nil {
		return t, 0, err
	}
	set, err := r.Resolve(t)
	return t, set, err
}
