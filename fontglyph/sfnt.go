package fontglyph

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"honnef.co/go/outline"
)

// LoadSFNT parses a TrueType or OpenType font.
func LoadSFNT(data []byte) (*sfnt.Font, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	return f, nil
}

// SFNTGlyph loads the outline of the glyph that f maps r to.
func SFNTGlyph(f *sfnt.Font, r rune) (*Glyph, error) {
	var buf sfnt.Buffer
	gid, err := f.GlyphIndex(&buf, r)
	if err != nil {
		return nil, fmt.Errorf("looking up %q: %w", r, err)
	}
	if gid == 0 {
		return nil, fmt.Errorf("%w %q", ErrNoGlyph, r)
	}

	// Loading at one pixel per font unit yields font units in 26.6 fixed
	// point.
	upem := int(f.UnitsPerEm())
	ppem := fixed.I(upem)
	segs, err := f.LoadGlyph(&buf, gid, ppem, nil)
	if err != nil {
		return nil, fmt.Errorf("loading glyph %d: %w", gid, err)
	}
	adv, err := f.GlyphAdvance(&buf, gid, ppem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("loading advance of glyph %d: %w", gid, err)
	}

	var bp outline.BezPath
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			bp.MoveTo(fromFixed(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			bp.LineTo(fromFixed(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			bp.QuadTo(fromFixed(seg.Args[0]), fromFixed(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			bp.CubicTo(fromFixed(seg.Args[0]), fromFixed(seg.Args[1]), fromFixed(seg.Args[2]))
		}
	}
	return newGlyph(r, uint16(gid), float64(adv)/64, upem, bp), nil
}

// fromFixed converts a y-down point in 26.6 fixed point to a y-up vector.
func fromFixed(p fixed.Point26_6) outline.Vec2 {
	return outline.Vec(float64(p.X)/64, -float64(p.Y)/64)
}
