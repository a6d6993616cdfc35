// Package header renders capability sets as C headers and Go source, and
// reads resolved C headers back.
package header

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strings"
	"text/template"

	"github.com/gogpu/features"
)

// Guard is the include guard of generated C headers.
const Guard = "CAIRO_FEATURES_H"

// WriteResolved writes a C header that defines exactly the symbols in set.
// target is only used for the leading comment.
func WriteResolved(w io.Writer, target string, set features.Set) error {
	var platform, common []string
	for _, c := range set.List() {
		if c.Common() {
			common = append(common, c.Symbol())
		} else {
			platform = append(platform, c.Symbol())
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Generated by ggfeatures for target %s. DO NOT EDIT.\n", target)
	fmt.Fprintf(&buf, "#ifndef %s\n#define %s\n", Guard, Guard)
	if len(platform) > 0 {
		buf.WriteString("\n")
		for _, sym := range platform {
			fmt.Fprintf(&buf, "#define %s 1\n", sym)
		}
	}
	buf.WriteString("\n// Common\n")
	for _, sym := range common {
		fmt.Fprintf(&buf, "#define %s 1\n", sym)
	}
	fmt.Fprintf(&buf, "// End Common\n\n#endif//%s\n", Guard)

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("header: write resolved: %w", err)
	}
	features.Logger().Info("header: resolved header written", "target", target, "symbols", set.Len())
	return nil
}

type conditionalData struct {
	Guard      string
	Win32, W64 string
	Apple      string
	Linux      string
	IncludeXCB string
	Windows    []string
	AppleSet   []string
	LinuxSet   []string
	XCBSet     []string
	Common     []string
}

var conditionalTmpl = template.Must(template.New("conditional").Parse(`// Generated by ggfeatures. DO NOT EDIT.
//
// Windows: Win32 surface and font. Apple: Quartz font.
// Linux: Fontconfig, FreeType and GObject; XCB when {{.IncludeXCB}} is defined.
// Common surfaces are enabled everywhere.
#ifndef {{.Guard}}
#define {{.Guard}}

#if defined {{.Win32}} || defined {{.W64}}
{{- range .Windows}}
#	define {{.}} 1
{{- end}}
#else
#	if defined {{.Apple}}
{{- range .AppleSet}}
#		define {{.}} 1
{{- end}}
#	endif//{{.Apple}}
#	if defined {{.Linux}}
{{- range .LinuxSet}}
#		define {{.}} 1
{{- end}}
#		if defined {{.IncludeXCB}}
{{- range .XCBSet}}
#			define {{.}} 1
{{- end}}
#		endif//{{.IncludeXCB}}
#	endif//{{.Linux}}
#endif

// Common
{{range .Common}}#define {{.}} 1
{{end -}}
// End Common

#endif//{{.Guard}}
`))

// WriteConditional writes the portable header: the full platform decision
// chain, evaluated by the C preprocessor of whoever includes it.
func WriteConditional(w io.Writer) error {
	data := conditionalData{
		Guard:      Guard,
		Win32:      features.SymbolWin32,
		W64:        features.SymbolWin64,
		Apple:      features.SymbolApple,
		Linux:      features.SymbolLinux,
		IncludeXCB: features.SymbolIncludeXCB,
		Windows:    features.PlatformSet(features.Target{Platform: features.PlatformWindows}).Symbols(),
		AppleSet:   features.PlatformSet(features.Target{Platform: features.PlatformApple}).Symbols(),
		LinuxSet:   features.PlatformSet(features.Target{Platform: features.PlatformLinux}).Symbols(),
		Common:     features.CommonSet().Symbols(),
	}
	linux := features.PlatformSet(features.Target{Platform: features.PlatformLinux})
	data.XCBSet = features.PlatformSet(features.Target{Platform: features.PlatformLinux, IncludeXCB: true}).
		Difference(linux).Symbols()

	if err := conditionalTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("header: write conditional: %w", err)
	}
	return nil
}

// WriteGo writes gofmt'ed Go source declaring one boolean constant per
// capability, named like the Has* constants of the features package
// (CAIRO_HAS_PDF_SURFACE becomes HasPDFSurface).
func WriteGo(w io.Writer, pkg, target string, set features.Set) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by ggfeatures for target %s. DO NOT EDIT.\n\n", target)
	fmt.Fprintf(&buf, "package %s\n\nconst (\n", pkg)
	for _, c := range features.AllCapabilities() {
		fmt.Fprintf(&buf, "%s = %t\n", GoName(c), set.Has(c))
	}
	buf.WriteString(")\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("header: format go source: %w", err)
	}
	if _, err := w.Write(src); err != nil {
		return fmt.Errorf("header: write go source: %w", err)
	}
	return nil
}

// goWords overrides the default capitalization of symbol words.
var goWords = map[string]string{
	"FC": "FC", "FT": "FT", "PDF": "PDF", "PNG": "PNG", "PS": "PS",
	"SHM": "SHM", "SVG": "SVG", "XCB": "XCB", "XML": "XML",
	"GOBJECT": "GObject",
}

// GoName converts a capability symbol to an exported Go identifier.
func GoName(c features.Capability) string {
	words := strings.Split(strings.TrimPrefix(c.Symbol(), "CAIRO_"), "_")
	var sb strings.Builder
	for _, w := range words {
		if v, ok := goWords[w]; ok {
			sb.WriteString(v)
			continue
		}
		sb.WriteString(w[:1])
		sb.WriteString(strings.ToLower(w[1:]))
	}
	return sb.String()
}
