// Package fonts provides font backends whose availability is gated by the
// build's capability set.
//
// Three backends are built in:
//
//   - "user" (features.UserFont): faces defined by callbacks
//   - "ft" (features.FTFont): TrueType/OpenType files parsed with
//     golang.org/x/image and shaped with go-text/typesetting
//   - "fc" (features.FCFont): family matching over font directories,
//     loading matches through the "ft" backend
//
// Platform font systems (Win32, Quartz) have capabilities but no backend
// here; asking for them yields *BackendNotFoundError when the capability
// is enabled and *CapabilityDisabledError when it is not.
package fonts

// Face is a loaded font at no particular size. Sizes are passed per call,
// in pixels per em.
type Face interface {
	// Family returns the font family name, or "" if unknown.
	Family() string

	// NumGlyphs returns the number of glyphs in the font.
	NumGlyphs() int

	// GlyphIndex returns the glyph index for r, or 0 if the font has none.
	GlyphIndex(r rune) uint16

	// Metrics returns the font metrics at the given size.
	Metrics(size float64) Metrics

	// Measure returns the advance width of text at the given size.
	Measure(text string, size float64) float64
}

// Metrics holds font-level metrics at a specific size.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font (positive).
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64
}

// Height returns the total line height.
func (m Metrics) Height() float64 {
	return m.Ascent + m.Descent + m.LineGap
}
