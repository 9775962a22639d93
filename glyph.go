package svgpath

import (
	"fmt"
	"math"
)

// DefaultGlyphBox is the side of the square Glyph.Path fits glyphs into.
const DefaultGlyphBox = 44

// Glyph is an icon font glyph: its outline as path data in font units,
// plus the metrics needed to place it. Font units are y-up with the
// baseline at 0, so Descent is normally negative.
type Glyph struct {
	Name              string
	Unicode           string
	PathData          string
	HorizontalAdvance float64 // falls back to UnitsPerEM when zero
	UnitsPerEM        float64
	Ascent            float64
	Descent           float64
}

func (g Glyph) advance() float64 {
	if g.HorizontalAdvance > 0 {
		return g.HorizontalAdvance
	}
	return g.UnitsPerEM
}

// FitTransform maps glyph space into the rectangle (x, y, w, h) in y-down
// space, scaling uniformly and centering the glyph's advance by ascent
// minus descent box.
func (g Glyph) FitTransform(x, y, w, h float64) (Matrix, error) {
	adv, height := g.advance(), g.Ascent-g.Descent
	if adv <= 0 || height <= 0 {
		return Identity, fmt.Errorf("svgpath: glyph %q: advance %g and height %g must be positive", g.Name, adv, height)
	}
	s := math.Min(w/adv, h/height)
	ox := x + (w-s*adv)/2
	oy := y + (h-s*height)/2
	return Matrix{A: s, D: -s, E: ox, F: oy + s*g.Ascent}, nil
}

// Path returns the glyph fitted into a DefaultGlyphBox square at the
// origin.
func (g Glyph) Path() (*Path, error) {
	return g.PathInRect(0, 0, DefaultGlyphBox, DefaultGlyphBox)
}

// PathInRect returns the glyph fitted into the rectangle (x, y, w, h).
func (g Glyph) PathInRect(x, y, w, h float64) (*Path, error) {
	m, err := g.FitTransform(x, y, w, h)
	if err != nil {
		return nil, err
	}
	p, err := ParseTransformed(g.PathData, m)
	if err != nil {
		return nil, fmt.Errorf("svgpath: glyph %q: %w", g.Name, err)
	}
	return p, nil
}
