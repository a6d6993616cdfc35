package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"testing"

	"github.com/gogpu/features"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadYAML(t *testing.T) {
	p := writeConfig(t, "ggfeatures.yaml", `
platform: linux
include_xcb: true
strict: true
require: [ft-font, CAIRO_HAS_PNG_FUNCTIONS]
disable: [script-surface]
font_dirs: [/opt/fonts]
header:
  lang: go
  package: cairo
  output: features_gen.go
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Source != p {
		t.Errorf("Source = %q, want %q", cfg.Source, p)
	}
	if !slices.Equal(cfg.FontDirs, []string{"/opt/fonts"}) {
		t.Errorf("FontDirs = %v", cfg.FontDirs)
	}
	if cfg.Header == nil || cfg.Header.Lang != "go" || cfg.Header.Package != "cairo" {
		t.Errorf("Header = %+v", cfg.Header)
	}

	target, set, err := cfg.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if want := (features.Target{Platform: features.PlatformLinux, IncludeXCB: true}); target != want {
		t.Errorf("target = %v, want %v", target, want)
	}
	want := features.Select(target).Without(features.ScriptSurface)
	if set != want {
		t.Errorf("set = %v, want %v", set, want)
	}
}

func TestLoadHCL(t *testing.T) {
	p := writeConfig(t, "ggfeatures.hcl", `
platform    = lower("WINDOWS")
include_xcb = host.goos == "linux"
require     = ["win32-surface"]

header {
  lang        = "c"
  conditional = true
}
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Platform != "windows" {
		t.Errorf("Platform = %q, want windows", cfg.Platform)
	}
	if cfg.IncludeXCB != (runtime.GOOS == "linux") {
		t.Errorf("IncludeXCB = %v on %s", cfg.IncludeXCB, runtime.GOOS)
	}
	if cfg.Header == nil || !cfg.Header.Conditional {
		t.Errorf("Header = %+v", cfg.Header)
	}
	_, set, err := cfg.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if !set.Has(features.Win32Surface) || set.Has(features.XCBSurface) {
		t.Errorf("set = %v", set)
	}
}

func TestLoadHCLHostPlatform(t *testing.T) {
	cfg, err := ParseHCL("host.hcl", []byte(`platform = host.platform`))
	if err != nil {
		t.Fatal(err)
	}
	target, err := cfg.Target()
	if err != nil {
		t.Fatal(err)
	}
	if target.Platform != features.Host().Platform {
		t.Errorf("platform = %v, want %v", target.Platform, features.Host().Platform)
	}
	if cfg.Header != nil {
		t.Errorf("Header = %+v, want nil without a header block", cfg.Header)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantIs  error
	}{
		{"unknown platform", "a.yaml", "platform: beos\n", features.ErrUnknownPlatform},
		{"unknown capability", "a.yaml", "require: [gl-surface]\n", features.ErrUnknownCapability},
		{"bad lang", "a.yml", "header:\n  lang: rust\n", ErrInvalidLang},
		{"bad format", "a.toml", "platform = \"linux\"\n", ErrUnsupportedFormat},
		{"hcl syntax", "a.hcl", "platform = \n", nil},
		{"hcl unknown attribute", "a.hcl", "colour = \"red\"\n", nil},
		{"hcl unknown variable", "a.hcl", "platform = target.os\n", nil},
		{"yaml syntax", "a.yaml", "platform: [\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.file, tt.content))
			if err == nil {
				t.Fatal("Load succeeded")
			}
			if tt.wantIs != nil && !errors.Is(err, tt.wantIs) {
				t.Errorf("err = %v, want %v", err, tt.wantIs)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want os.ErrNotExist", err)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	target, err := cfg.Target()
	if err != nil {
		t.Fatal(err)
	}
	if target != features.Host() {
		t.Errorf("target = %v, want host %v", target, features.Host())
	}
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	if _, ok := Find(dir); ok {
		t.Fatal("Find reported a file in an empty dir")
	}
	for _, name := range []string{"ggfeatures.hcl", "ggfeatures.yaml"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	got, ok := Find(dir)
	if !ok || filepath.Base(got) != "ggfeatures.yaml" {
		t.Errorf("Find = %q, %v; want ggfeatures.yaml", got, ok)
	}
}

func TestApplyLookup(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		start   Config
		wantP   string
		wantXCB bool
	}{
		{"none", nil, Config{Platform: "apple"}, "apple", false},
		{"platform", map[string]string{EnvPlatform: "linux"}, Config{Platform: "apple"}, "linux", false},
		{"blank platform ignored", map[string]string{EnvPlatform: " "}, Config{Platform: "apple"}, "apple", false},
		{"xcb defined empty", map[string]string{EnvIncludeXCB: ""}, Config{Platform: "linux"}, "linux", true},
		{"xcb defined zero", map[string]string{EnvIncludeXCB: "0"}, Config{Platform: "linux"}, "linux", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.start
			cfg.ApplyLookup(func(k string) (string, bool) {
				v, ok := tt.env[k]
				return v, ok
			})
			if cfg.Platform != tt.wantP || cfg.IncludeXCB != tt.wantXCB {
				t.Errorf("got platform %q xcb %v, want %q %v", cfg.Platform, cfg.IncludeXCB, tt.wantP, tt.wantXCB)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvPlatform, "darwin")
	t.Setenv(EnvIncludeXCB, "1")

	cfg := &Config{Platform: "windows"}
	cfg.ApplyEnv()
	target, err := cfg.Target()
	if err != nil {
		t.Fatal(err)
	}
	if want := (features.Target{Platform: features.PlatformApple, IncludeXCB: true}); target != want {
		t.Errorf("target = %v, want %v", target, want)
	}
	// XCB is requested but has no effect outside Linux.
	if features.Select(target).Has(features.XCBSurface) {
		t.Error("XCB enabled on Apple")
	}
}

func TestResolveMissingRequirement(t *testing.T) {
	cfg := &Config{Platform: "apple", Require: []string{"fc-font"}}
	_, _, err := cfg.Resolve()
	var mce *features.MissingCapabilityError
	if !errors.As(err, &mce) || !mce.Missing.Has(features.FCFont) {
		t.Errorf("err = %v, want missing fc-font", err)
	}
}

func TestResolveStrictOther(t *testing.T) {
	cfg := &Config{Platform: "freebsd", Strict: true}
	if _, _, err := cfg.Resolve(); !errors.Is(err, features.ErrUnknownPlatform) {
		t.Errorf("err = %v, want ErrUnknownPlatform", err)
	}

	cfg.Strict = false
	_, set, err := cfg.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if set != features.CommonSet() {
		t.Errorf("set = %v, want common set", set)
	}
}

func TestEncodeYAMLRoundTrip(t *testing.T) {
	in := &Config{
		Platform: "linux",
		Require:  []string{"ft-font"},
		Header:   &Header{Lang: "c", Output: "cairo-features.h"},
		Source:   "ignored.yaml",
	}
	data, err := in.EncodeYAML()
	if err != nil {
		t.Fatal(err)
	}
	out, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML: %v\n%s", err, data)
	}
	if out.Platform != in.Platform || !slices.Equal(out.Require, in.Require) || *out.Header != *in.Header {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
	if out.Source != "" {
		t.Errorf("Source leaked into YAML: %q", out.Source)
	}
}
