package features

import (
	"encoding/json"
	"errors"
	"slices"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestSetOperations(t *testing.T) {
	a := NewSet(ImageSurface, PDFSurface, FTFont)
	b := NewSet(PDFSurface, QuartzFont)

	if got := a.Union(b); got != NewSet(ImageSurface, PDFSurface, FTFont, QuartzFont) {
		t.Errorf("Union = %v", got)
	}
	if got := a.Intersect(b); got != NewSet(PDFSurface) {
		t.Errorf("Intersect = %v", got)
	}
	if got := a.Difference(b); got != NewSet(ImageSurface, FTFont) {
		t.Errorf("Difference = %v", got)
	}
	if got := a.Without(PDFSurface); got.Has(PDFSurface) || got.Len() != 2 {
		t.Errorf("Without = %v", got)
	}
	if !a.HasAll(ImageSurface, FTFont) || a.HasAll(ImageSurface, QuartzFont) {
		t.Error("HasAll mismatch")
	}
	if !Set(0).Empty() || a.Empty() {
		t.Error("Empty mismatch")
	}
}

func TestSetIgnoresInvalidCapability(t *testing.T) {
	s := NewSet(ImageSurface, Capability(200))
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
	if s.Has(Capability(200)) {
		t.Error("Has(invalid) = true")
	}
	if s.Without(Capability(200)) != s {
		t.Error("Without(invalid) changed the set")
	}
}

func TestSetListOrder(t *testing.T) {
	s := NewSet(XMLSurface, Win32Surface, ImageSurface)
	want := []Capability{Win32Surface, ImageSurface, XMLSurface}
	if got := s.List(); !slices.Equal(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
	if got := s.String(); got != "{win32-surface image-surface xml-surface}" {
		t.Errorf("String() = %q", got)
	}
	wantSyms := []string{"CAIRO_HAS_WIN32_SURFACE", "CAIRO_HAS_IMAGE_SURFACE", "CAIRO_HAS_XML_SURFACE"}
	if got := s.Symbols(); !slices.Equal(got, wantSyms) {
		t.Errorf("Symbols() = %v, want %v", got, wantSyms)
	}
}

func TestSetJSON(t *testing.T) {
	s := NewSet(PNGFunctions, FCFont)
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `["fc-font","png-functions"]` {
		t.Errorf("json = %s", data)
	}

	var got Set
	if err := json.Unmarshal([]byte(`["CAIRO_HAS_FC_FONT","png_functions"]`), &got); err != nil {
		t.Fatal(err)
	}
	if got != s {
		t.Errorf("decoded %v, want %v", got, s)
	}

	err = json.Unmarshal([]byte(`["bogus"]`), &got)
	if !errors.Is(err, ErrUnknownCapability) {
		t.Errorf("err = %v, want ErrUnknownCapability", err)
	}
}

func TestSetYAML(t *testing.T) {
	type doc struct {
		Caps Set `yaml:"caps"`
	}
	in := doc{Caps: NewSet(SVGSurface, Win32Font)}
	data, err := yaml.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	var out doc
	if err := yaml.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal %s: %v", data, err)
	}
	if out.Caps != in.Caps {
		t.Errorf("round trip = %v, want %v", out.Caps, in.Caps)
	}
}
