package features

import (
	"errors"
	"strings"
	"testing"
)

func TestResolverDefaultMatchesSelect(t *testing.T) {
	r := NewResolver()
	for _, p := range Platforms {
		for _, xcb := range []bool{false, true} {
			target := Target{Platform: p, IncludeXCB: xcb}
			got, err := r.Resolve(target)
			if err != nil {
				t.Fatalf("Resolve(%v) error: %v", target, err)
			}
			if got != Select(target) {
				t.Errorf("Resolve(%v) = %v, want %v", target, got, Select(target))
			}
		}
	}
}

func TestResolverZeroValue(t *testing.T) {
	var r Resolver
	got, err := r.Resolve(Target{Platform: PlatformOther})
	if err != nil || got != CommonSet() {
		t.Errorf("zero Resolver = %v, %v", got, err)
	}
}

func TestResolverStrict(t *testing.T) {
	r := NewResolver(WithStrict())
	if !r.Strict() {
		t.Fatal("Strict() = false")
	}
	_, err := r.Resolve(Target{Platform: PlatformOther})
	if !errors.Is(err, ErrUnknownPlatform) {
		t.Errorf("err = %v, want ErrUnknownPlatform", err)
	}
	if _, err := r.Resolve(Target{Platform: PlatformApple}); err != nil {
		t.Errorf("apple: unexpected error %v", err)
	}
}

func TestResolverRequired(t *testing.T) {
	r := NewResolver(WithRequired(XCBSurface, PDFSurface))

	got, err := r.Resolve(Target{Platform: PlatformLinux})
	var mce *MissingCapabilityError
	if !errors.As(err, &mce) {
		t.Fatalf("err = %v, want *MissingCapabilityError", err)
	}
	if mce.Missing != NewSet(XCBSurface) {
		t.Errorf("Missing = %v", mce.Missing)
	}
	if !strings.Contains(err.Error(), "CAIRO_HAS_XCB_SURFACE") || !strings.Contains(err.Error(), "linux") {
		t.Errorf("message = %q", err.Error())
	}
	if got != Select(Target{Platform: PlatformLinux}) {
		t.Errorf("set returned with error = %v", got)
	}

	if _, err := r.Resolve(Target{Platform: PlatformLinux, IncludeXCB: true}); err != nil {
		t.Errorf("linux+xcb: %v", err)
	}
}

func TestResolverDisabled(t *testing.T) {
	r := NewResolver(WithDisabled(GObjectFunctions, Win32Font))
	got, err := r.Resolve(Target{Platform: PlatformLinux})
	if err != nil {
		t.Fatal(err)
	}
	if got.Has(GObjectFunctions) {
		t.Error("GObjectFunctions still enabled")
	}
	if !got.Has(FTFont) {
		t.Error("FTFont lost")
	}
}

func TestResolveSymbolsAppleAndLinux(t *testing.T) {
	r := NewResolver(WithRequired(FTFont))
	got, err := r.ResolveSymbols(NewSymbols(SymbolApple, SymbolLinux))
	if err != nil {
		t.Fatal(err)
	}
	if !got.HasAll(QuartzFont, FTFont) {
		t.Errorf("got %v, want quartz and ft fonts", got)
	}
}

func TestRequire(t *testing.T) {
	s := Select(Target{Platform: PlatformWindows})
	if err := Require(s, Win32Surface, PDFSurface); err != nil {
		t.Errorf("Require() = %v", err)
	}
	err := Require(s, QuartzFont)
	var mce *MissingCapabilityError
	if !errors.As(err, &mce) || mce.Missing != NewSet(QuartzFont) || mce.Target != nil {
		t.Errorf("Require(quartz) = %v", err)
	}
}
