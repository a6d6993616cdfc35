package fonts

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/gogpu/features"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FTBackend loads TrueType and OpenType data. Outlines and metrics come
// from golang.org/x/image/font/opentype; Measure shapes text with the
// HarfBuzz port in go-text/typesetting so kerning and ligatures count.
type FTBackend struct {
	// shaperPool pools HarfbuzzShaper instances, which are not safe for
	// concurrent use.
	shaperPool sync.Pool
}

// NewFTBackend creates the "ft" backend.
func NewFTBackend() *FTBackend {
	return &FTBackend{
		shaperPool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
	}
}

func (b *FTBackend) Name() string                    { return "ft" }
func (b *FTBackend) Capability() features.Capability { return features.FTFont }

// Load parses data. The data slice is retained and must not be modified.
func (b *FTBackend) Load(data []byte) (Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &ftFace{backend: b, data: data, font: f}, nil
}

type ftFace struct {
	backend *FTBackend
	data    []byte
	font    *opentype.Font

	// shaped is parsed lazily on the first Measure call.
	once    sync.Once
	shaped  *gotext.Font
	shapErr error
}

func (f *ftFace) Family() string {
	if name, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

func (f *ftFace) NumGlyphs() int { return f.font.NumGlyphs() }

func (f *ftFace) GlyphIndex(r rune) uint16 {
	idx, err := f.font.GlyphIndex(nil, r)
	if err != nil {
		return 0
	}
	return uint16(idx)
}

func (f *ftFace) Metrics(size float64) Metrics {
	var buf sfnt.Buffer
	m, err := f.font.Metrics(&buf, floatToFixed(size), xfont.HintingNone)
	if err != nil {
		return Metrics{}
	}
	ascent, descent := fixedToFloat(m.Ascent), fixedToFloat(m.Descent)
	return Metrics{
		Ascent:  ascent,
		Descent: descent,
		LineGap: fixedToFloat(m.Height) - ascent - descent,
	}
}

// Measure returns the shaped advance of text. If the font cannot be
// shaped it falls back to summing per-glyph advances.
func (f *ftFace) Measure(text string, size float64) float64 {
	if text == "" {
		return 0
	}
	gf, err := f.shapingFont()
	if err != nil {
		features.Logger().Warn("fonts: shaping unavailable, using glyph advances", "family", f.Family(), "err", err)
		return f.sumAdvances(text, size)
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gotext.NewFace(gf),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := f.backend.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	f.backend.shaperPool.Put(hb)

	return fixedToFloat(out.Advance)
}

func (f *ftFace) shapingFont() (*gotext.Font, error) {
	f.once.Do(func() {
		face, err := gotext.ParseTTF(bytes.NewReader(f.data))
		if err != nil {
			f.shapErr = err
			return
		}
		f.shaped = face.Font
	})
	return f.shaped, f.shapErr
}

func (f *ftFace) sumAdvances(text string, size float64) float64 {
	var buf sfnt.Buffer
	ppem := floatToFixed(size)
	var w fixed.Int26_6
	for _, r := range text {
		idx, err := f.font.GlyphIndex(&buf, r)
		if err != nil {
			continue
		}
		adv, err := f.font.GlyphAdvance(&buf, idx, ppem, xfont.HintingNone)
		if err != nil {
			continue
		}
		w += adv
	}
	return fixedToFloat(w)
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func floatToFixed(v float64) fixed.Int26_6 { return fixed.Int26_6(v * 64) }

func fixedToFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }
