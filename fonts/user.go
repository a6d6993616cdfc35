package fonts

import (
	"errors"

	"github.com/gogpu/features"
)

const userBackendName = "user"

// ErrNoGlyphFunc is returned when a UserFaceConfig has no Glyph callback.
var ErrNoGlyphFunc = errors.New("fonts: user face needs a Glyph function")

// UserFaceConfig defines a font through callbacks. All lengths are in em
// units and scaled by the size passed to Face methods.
type UserFaceConfig struct {
	Family string

	// Glyph maps a rune to a glyph index and its advance. ok is false for
	// runes the font does not cover.
	Glyph func(r rune) (index uint16, advance float64, ok bool)

	// NumGlyphs is reported by Face.NumGlyphs.
	NumGlyphs int

	Ascent  float64
	Descent float64
	LineGap float64
}

// UserBackend creates callback-defined faces.
type UserBackend struct{}

func (UserBackend) Name() string                    { return userBackendName }
func (UserBackend) Capability() features.Capability { return features.UserFont }

// NewFace validates cfg and returns a face backed by it.
func (UserBackend) NewFace(cfg UserFaceConfig) (Face, error) {
	if cfg.Glyph == nil {
		return nil, ErrNoGlyphFunc
	}
	return &userFace{cfg: cfg}, nil
}

type userFace struct {
	cfg UserFaceConfig
}

func (f *userFace) Family() string { return f.cfg.Family }
func (f *userFace) NumGlyphs() int { return f.cfg.NumGlyphs }

func (f *userFace) GlyphIndex(r rune) uint16 {
	idx, _, ok := f.cfg.Glyph(r)
	if !ok {
		return 0
	}
	return idx
}

func (f *userFace) Metrics(size float64) Metrics {
	return Metrics{
		Ascent:  f.cfg.Ascent * size,
		Descent: f.cfg.Descent * size,
		LineGap: f.cfg.LineGap * size,
	}
}

// Measure sums the advances of covered runes. Uncovered runes add nothing.
func (f *userFace) Measure(text string, size float64) float64 {
	var w float64
	for _, r := range text {
		if _, adv, ok := f.cfg.Glyph(r); ok {
			w += adv
		}
	}
	return w * size
}
